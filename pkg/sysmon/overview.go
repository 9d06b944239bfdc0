package sysmon

import (
	"context"
	"fmt"
	"time"

	"github.com/homelab-edu/homelab/pkg/models"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
	overviewTopN     = 5
)

// Overview combines all samples into one response. Individual sample
// failures degrade that section to nil instead of failing the whole
// overview; only boot-time failure is fatal since uptime anchors the view.
func (s *Service) Overview(ctx context.Context) (*models.Overview, error) {
	bootSecs, err := s.bootTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading boot time: %w", err)
	}

	bootAt := time.Unix(int64(bootSecs), 0).UTC()
	uptime := time.Since(bootAt)

	days := int(uptime.Seconds()) / secondsPerDay
	hours := (int(uptime.Seconds()) % secondsPerDay) / secondsPerHour
	minutes := (int(uptime.Seconds()) % secondsPerHour) / secondsPerMinute

	overview := &models.Overview{
		BootTime: bootAt,
		Uptime: models.UptimeInfo{
			Days:    days,
			Hours:   hours,
			Minutes: minutes,
			Explanation: fmt.Sprintf(
				"System has been running for %d days, %d hours, %d minutes since last reboot",
				days, hours, minutes),
		},
		HealthSummary: "System monitoring active - use individual metrics for detailed analysis",
		Timestamp:     time.Now().UTC(),
	}

	if hostname, err := s.hostname(); err == nil {
		overview.Hostname = hostname
	} else {
		overview.Hostname = "unknown"
	}

	if avg, err := s.loadAvg(ctx); err == nil && avg != nil {
		cores, countErr := s.cpuCounts(ctx, true)
		if countErr != nil {
			cores = 1
		}

		overview.LoadAverage = &models.LoadInfo{
			Load1:  round2(avg.Load1),
			Load5:  round2(avg.Load5),
			Load15: round2(avg.Load15),
			Explanation: fmt.Sprintf(
				"Load average shows system demand over time. Values above %d indicate high demand.", cores),
		}
	}

	if cpuInfo, err := s.CPUInfo(ctx); err == nil {
		overview.CPU = cpuInfo
	} else {
		s.log.Warn().Err(err).Msg("cpu sample failed for overview")
	}

	if memInfo, err := s.MemoryInfo(ctx); err == nil {
		overview.Memory = memInfo
	} else {
		s.log.Warn().Err(err).Msg("memory sample failed for overview")
	}

	if diskInfo, err := s.DiskInfo(ctx); err == nil {
		overview.Disk = diskInfo
	} else {
		s.log.Warn().Err(err).Msg("disk sample failed for overview")
	}

	if procs, err := s.TopProcesses(ctx, overviewTopN); err == nil {
		overview.Processes = procs
	} else {
		s.log.Warn().Err(err).Msg("process sample failed for overview")
	}

	return overview, nil
}
