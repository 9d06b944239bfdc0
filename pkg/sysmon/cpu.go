package sysmon

import (
	"context"
	"fmt"
	"time"

	"github.com/homelab-edu/homelab/pkg/models"
)

// CPUInfo samples overall and per-core CPU usage plus topology and
// frequency details.
func (s *Service) CPUInfo(ctx context.Context) (*models.CPUInfo, error) {
	overall, err := s.cpuPercent(ctx, s.sampleInterval, false)
	if err != nil {
		return nil, fmt.Errorf("sampling cpu usage: %w", err)
	}

	usage := 0.0
	if len(overall) > 0 {
		usage = round2(overall[0])
	}

	perCore, err := s.cpuPercent(ctx, s.sampleInterval/10, true)
	if err != nil {
		s.log.Warn().Err(err).Msg("per-core cpu sampling failed")

		perCore = nil
	}

	logical, err := s.cpuCounts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("counting logical cores: %w", err)
	}

	physical, err := s.cpuCounts(ctx, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("physical core count unavailable")

		physical = logical
	}

	info := &models.CPUInfo{
		UsagePercent:     usage,
		UsageExplanation: cpuUsageExplanation(usage),
		Cores: models.CoreInfo{
			Logical:  logical,
			Physical: physical,
			Explanation: fmt.Sprintf(
				"Your system has %d physical cores with %d threads (hyperthreading: %s)",
				physical, logical, enabledWord(logical > physical)),
		},
		PerCoreUsage: perCore,
		Timestamp:    time.Now().UTC(),
	}

	if stats, err := s.cpuInfo(ctx); err == nil && len(stats) > 0 && stats[0].Mhz > 0 {
		info.Frequency = &models.CPUFreq{
			CurrentMhz:  round2(stats[0].Mhz),
			Explanation: fmt.Sprintf("Running at %.1fMHz", stats[0].Mhz),
		}
	}

	return info, nil
}

func cpuUsageExplanation(usage float64) string {
	base := fmt.Sprintf("CPU is %.1f%% busy. ", usage)

	switch {
	case usage > 80:
		return base + "High usage (>80%) may slow down other processes."
	case usage < 50:
		return base + "Normal usage level."
	default:
		return base + "Moderate usage - monitor if sustained."
	}
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
