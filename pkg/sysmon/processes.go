package sysmon

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/homelab-edu/homelab/pkg/models"
)

const bytesPerMB = 1024 * 1024

// TopProcesses reports the top-N processes by CPU and by memory usage.
func (s *Service) TopProcesses(ctx context.Context, limit int) (*models.ProcessReport, error) {
	procs, err := s.processList(ctx)
	if err != nil {
		return nil, fmt.Errorf("sampling processes: %w", err)
	}

	byCPU := make([]models.ProcessInfo, len(procs))
	copy(byCPU, procs)
	sort.SliceStable(byCPU, func(i, j int) bool { return byCPU[i].CPUPercent > byCPU[j].CPUPercent })

	byMem := make([]models.ProcessInfo, len(procs))
	copy(byMem, procs)
	sort.SliceStable(byMem, func(i, j int) bool { return byMem[i].MemoryPercent > byMem[j].MemoryPercent })

	if limit > 0 && limit < len(byCPU) {
		byCPU = byCPU[:limit]
		byMem = byMem[:limit]
	}

	return &models.ProcessReport{
		TopCPU:         byCPU,
		TopMemory:      byMem,
		TotalProcesses: len(procs),
		Explanation: fmt.Sprintf(
			"Monitoring %d active processes. Top processes show what's currently using your system resources.",
			len(procs)),
		EducationalNote: "High CPU processes might be doing intensive work. High memory processes are keeping " +
			"lots of data in RAM. Both are normal for active homelab services.",
		Timestamp: time.Now().UTC(),
	}, nil
}

// sampleProcesses walks the live process table. Processes that exit or
// deny access mid-walk are skipped.
func sampleProcesses(ctx context.Context) ([]models.ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]models.ProcessInfo, 0, len(procs))

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		info := models.ProcessInfo{PID: p.Pid, Name: name}

		if username, err := p.UsernameWithContext(ctx); err == nil {
			info.Username = username
		}

		if cpuPct, err := p.CPUPercentWithContext(ctx); err == nil {
			info.CPUPercent = round2(cpuPct)
		}

		if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
			info.MemoryPercent = memPct
		}

		if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			info.MemoryMB = round2(float64(memInfo.RSS) / bytesPerMB)
		}

		infos = append(infos, info)
	}

	return infos, nil
}
