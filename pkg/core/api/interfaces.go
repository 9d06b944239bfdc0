package api

import (
	"context"

	"github.com/homelab-edu/homelab/pkg/models"
)

// ServiceDiscovery is the discovery facade consumed by the HTTP layer.
type ServiceDiscovery interface {
	GetAllServices(ctx context.Context) ([]models.EnrichedUnit, error)
	GetServicesByCategory(ctx context.Context) (map[models.CategoryLabel][]models.EnrichedUnit, error)
	GetCriticalServices(ctx context.Context) (models.CriticalServices, error)
}

// SystemMonitor samples host resource state.
type SystemMonitor interface {
	CPUInfo(ctx context.Context) (*models.CPUInfo, error)
	MemoryInfo(ctx context.Context) (*models.MemoryInfo, error)
	DiskInfo(ctx context.Context) (*models.DiskInfo, error)
	TopProcesses(ctx context.Context, limit int) (*models.ProcessReport, error)
	Overview(ctx context.Context) (*models.Overview, error)
}
