package sysmon

// EducationalContext returns the static concept explanations served at
// /api/education.
func EducationalContext() map[string]string {
	return map[string]string{
		"cpu_usage": "CPU usage shows how busy your processor is. High usage (>80%) for extended " +
			"periods may indicate the need for optimization or hardware upgrades.",
		"memory_usage": "Memory (RAM) usage shows how much working space your programs are using. " +
			"When memory is full, the system uses slower disk swap.",
		"disk_usage": "Disk usage shows storage consumption. Full disks can cause system failures, " +
			"so monitoring and cleanup are essential.",
		"processes": "Processes are running programs. Monitoring top processes helps identify " +
			"what's using your system resources.",
		"load_average": "Load average shows system demand over 1, 5, and 15 minutes. Values above " +
			"your CPU core count indicate high demand.",
		"uptime": "Uptime shows how long the system has been running since last reboot. Long " +
			"uptimes indicate system stability.",
		"monitoring_importance": "Regular monitoring helps predict issues, optimize performance, " +
			"and maintain homelab reliability.",
	}
}
