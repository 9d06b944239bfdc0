package sysmon

import (
	"context"
	"fmt"
	"time"

	"github.com/homelab-edu/homelab/pkg/models"
)

// MemoryInfo samples virtual memory and swap.
func (s *Service) MemoryInfo(ctx context.Context) (*models.MemoryInfo, error) {
	vm, err := s.virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("sampling virtual memory: %w", err)
	}

	status := memoryStatus(vm.UsedPercent)

	info := &models.MemoryInfo{
		TotalGB:      toGB(vm.Total),
		UsedGB:       toGB(vm.Used),
		AvailableGB:  toGB(vm.Available),
		UsagePercent: round2(vm.UsedPercent),
		Status:       status,
		Explanation: fmt.Sprintf("Using %.2fGB of %.2fGB RAM (%.1f%%). %s.",
			toGB(vm.Used), toGB(vm.Total), vm.UsedPercent, status),
		Timestamp: time.Now().UTC(),
	}

	swap, err := s.swapMemory(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("swap sampling failed")
		info.Swap.Explanation = "Swap data not available on this system"

		return info, nil
	}

	info.Swap = models.SwapInfo{
		TotalGB:     toGB(swap.Total),
		UsedGB:      toGB(swap.Used),
		Percent:     round2(swap.UsedPercent),
		Explanation: swapExplanation(swap.UsedPercent),
	}

	return info, nil
}

func memoryStatus(percent float64) string {
	switch {
	case percent > 90:
		return "Critical - consider closing applications or adding RAM"
	case percent > 80:
		return "High - monitor closely"
	case percent > 60:
		return "Moderate - normal for an active homelab"
	default:
		return "Good - plenty of available memory"
	}
}

func swapExplanation(percent float64) string {
	if percent > 10 {
		return fmt.Sprintf("Swap usage: %.1f%% (actively swapping - may impact performance)", percent)
	}

	return fmt.Sprintf("Swap usage: %.1f%% (minimal swap usage - good)", percent)
}
