package models

import "time"

// CPUInfo is a point-in-time CPU sample with educational annotations.
type CPUInfo struct {
	UsagePercent     float64   `json:"usage_percent"`
	UsageExplanation string    `json:"usage_explanation"`
	Cores            CoreInfo  `json:"cores"`
	Frequency        *CPUFreq  `json:"frequency,omitempty"`
	PerCoreUsage     []float64 `json:"per_core_usage"`
	Timestamp        time.Time `json:"timestamp"`
}

type CoreInfo struct {
	Logical     int    `json:"logical"`
	Physical    int    `json:"physical"`
	Explanation string `json:"explanation"`
}

type CPUFreq struct {
	CurrentMhz  float64 `json:"current_mhz"`
	MaxMhz      float64 `json:"max_mhz"`
	Explanation string  `json:"explanation"`
}

// MemoryInfo is a point-in-time memory sample.
type MemoryInfo struct {
	TotalGB      float64   `json:"total_gb"`
	UsedGB       float64   `json:"used_gb"`
	AvailableGB  float64   `json:"available_gb"`
	UsagePercent float64   `json:"usage_percent"`
	Status       string    `json:"status"`
	Explanation  string    `json:"explanation"`
	Swap         SwapInfo  `json:"swap"`
	Timestamp    time.Time `json:"timestamp"`
}

type SwapInfo struct {
	TotalGB     float64 `json:"total_gb"`
	UsedGB      float64 `json:"used_gb"`
	Percent     float64 `json:"percent"`
	Explanation string  `json:"explanation"`
}

// PartitionInfo describes usage of one mounted filesystem. Err is set
// when the mount point could not be statted; such partitions are
// reported rather than dropped.
type PartitionInfo struct {
	Device       string  `json:"device"`
	Filesystem   string  `json:"filesystem"`
	TotalGB      float64 `json:"total_gb,omitempty"`
	UsedGB       float64 `json:"used_gb,omitempty"`
	FreeGB       float64 `json:"free_gb,omitempty"`
	UsagePercent float64 `json:"usage_percent,omitempty"`
	Status       string  `json:"status,omitempty"`
	Explanation  string  `json:"explanation"`
	Err          string  `json:"error,omitempty"`
}

type DiskInfo struct {
	Partitions map[string]PartitionInfo `json:"partitions"`
	Timestamp  time.Time                `json:"timestamp"`
}

// ProcessInfo is one process sampled from the host.
type ProcessInfo struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	Username      string  `json:"username,omitempty"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float32 `json:"memory_percent"`
	MemoryMB      float64 `json:"memory_mb"`
}

type ProcessReport struct {
	TopCPU          []ProcessInfo `json:"top_cpu"`
	TopMemory       []ProcessInfo `json:"top_memory"`
	TotalProcesses  int           `json:"total_processes"`
	Explanation     string        `json:"explanation"`
	EducationalNote string        `json:"educational_note"`
	Timestamp       time.Time     `json:"timestamp"`
}

// Overview combines all sysmon samples into one response.
type Overview struct {
	Hostname      string         `json:"hostname"`
	BootTime      time.Time      `json:"boot_time"`
	Uptime        UptimeInfo     `json:"uptime"`
	LoadAverage   *LoadInfo      `json:"load_average,omitempty"`
	CPU           *CPUInfo       `json:"cpu,omitempty"`
	Memory        *MemoryInfo    `json:"memory,omitempty"`
	Disk          *DiskInfo      `json:"disk,omitempty"`
	Processes     *ProcessReport `json:"processes,omitempty"`
	HealthSummary string         `json:"health_summary"`
	Timestamp     time.Time      `json:"timestamp"`
}

type UptimeInfo struct {
	Days        int    `json:"days"`
	Hours       int    `json:"hours"`
	Minutes     int    `json:"minutes"`
	Explanation string `json:"explanation"`
}

type LoadInfo struct {
	Load1       float64 `json:"1min"`
	Load5       float64 `json:"5min"`
	Load15      float64 `json:"15min"`
	Explanation string  `json:"explanation"`
}
