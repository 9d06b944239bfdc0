// Package sysmon samples host CPU, memory, disk, and process state via
// gopsutil, annotating every result with educational context for the
// dashboard.
package sysmon

import (
	"context"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/models"
)

const bytesPerGB = 1024 * 1024 * 1024

// Service samples host metrics on demand. Collector funcs are fields so
// tests substitute them without touching a live host.
type Service struct {
	log            logger.Logger
	sampleInterval time.Duration

	cpuPercent    func(context.Context, time.Duration, bool) ([]float64, error)
	cpuCounts     func(context.Context, bool) (int, error)
	cpuInfo       func(context.Context) ([]cpu.InfoStat, error)
	virtualMemory func(context.Context) (*mem.VirtualMemoryStat, error)
	swapMemory    func(context.Context) (*mem.SwapMemoryStat, error)
	partitions    func(context.Context, bool) ([]disk.PartitionStat, error)
	diskUsage     func(context.Context, string) (*disk.UsageStat, error)
	processList   func(context.Context) ([]models.ProcessInfo, error)
	bootTime      func(context.Context) (uint64, error)
	loadAvg       func(context.Context) (*load.AvgStat, error)
	hostname      func() (string, error)
}

func NewService(log logger.Logger, sampleInterval time.Duration) *Service {
	return &Service{
		log:            log,
		sampleInterval: sampleInterval,
		cpuPercent:     cpu.PercentWithContext,
		cpuCounts:      cpu.CountsWithContext,
		cpuInfo:        cpu.InfoWithContext,
		virtualMemory:  mem.VirtualMemoryWithContext,
		swapMemory:     mem.SwapMemoryWithContext,
		partitions:     disk.PartitionsWithContext,
		diskUsage:      disk.UsageWithContext,
		processList:    sampleProcesses,
		bootTime:       host.BootTimeWithContext,
		loadAvg:        load.AvgWithContext,
		hostname:       os.Hostname,
	}
}

func toGB(bytes uint64) float64 {
	return round2(float64(bytes) / bytesPerGB)
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
