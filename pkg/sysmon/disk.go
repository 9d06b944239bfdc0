package sysmon

import (
	"context"
	"fmt"
	"time"

	"github.com/homelab-edu/homelab/pkg/models"
)

var mountExplanations = map[string]string{
	"/":     "Root filesystem - contains system files and programs",
	"/home": "User data and personal files",
	"/var":  "Variable data - logs, databases, cache",
	"/tmp":  "Temporary files - cleaned on reboot",
	"/boot": "Boot files - kernel and bootloader",
}

// DiskInfo reports usage for every mounted filesystem. Partitions that
// cannot be statted are reported with an error note rather than dropped.
func (s *Service) DiskInfo(ctx context.Context) (*models.DiskInfo, error) {
	parts, err := s.partitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	info := &models.DiskInfo{
		Partitions: make(map[string]models.PartitionInfo, len(parts)),
		Timestamp:  time.Now().UTC(),
	}

	for _, part := range parts {
		usage, err := s.diskUsage(ctx, part.Mountpoint)
		if err != nil {
			s.log.Debug().Err(err).Str("mountpoint", part.Mountpoint).Msg("disk usage unavailable")

			info.Partitions[part.Mountpoint] = models.PartitionInfo{
				Device:      part.Device,
				Filesystem:  part.Fstype,
				Err:         err.Error(),
				Explanation: fmt.Sprintf("Cannot access %s - may require elevated permissions", part.Mountpoint),
			}

			continue
		}

		status := diskStatus(usage.UsedPercent)

		info.Partitions[part.Mountpoint] = models.PartitionInfo{
			Device:       part.Device,
			Filesystem:   part.Fstype,
			TotalGB:      toGB(usage.Total),
			UsedGB:       toGB(usage.Used),
			FreeGB:       toGB(usage.Free),
			UsagePercent: round2(usage.UsedPercent),
			Status:       status,
			Explanation: fmt.Sprintf("%s. Using %.2fGB of %.2fGB (%.1f%%). %s.",
				mountExplanation(part.Mountpoint), toGB(usage.Used), toGB(usage.Total),
				usage.UsedPercent, status),
		}
	}

	return info, nil
}

func mountExplanation(mountpoint string) string {
	if explanation, ok := mountExplanations[mountpoint]; ok {
		return explanation
	}

	return fmt.Sprintf("Mounted storage at %s", mountpoint)
}

func diskStatus(percent float64) string {
	switch {
	case percent > 95:
		return "Critical - cleanup needed immediately"
	case percent > 85:
		return "High - cleanup recommended"
	case percent > 70:
		return "Moderate - monitor growth"
	default:
		return "Good - sufficient space"
	}
}
