package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelab-edu/homelab/pkg/models"
)

// Allow-list ["nginx.service", "plex.service"] against a host that only
// runs nginx: both entries appear, in order, with plex at unknown.
func TestResolveCriticalMissingUnit(t *testing.T) {
	t.Parallel()

	r := NewCriticalResolver([]CriticalServiceDef{
		{Name: "nginx.service", Importance: "front door", Troubleshooting: "nginx -t"},
		{Name: "plex.service", Importance: "media server", Troubleshooting: "check mounts"},
	})

	live := []models.ServiceUnit{
		{Name: "nginx.service", Status: models.UnitStatusActive, SubState: "running"},
	}

	entries := r.ResolveCritical(live)
	require.Len(t, entries, 2)

	assert.Equal(t, "nginx.service", entries[0].Name)
	assert.Equal(t, models.UnitStatusActive, entries[0].Status)
	assert.Equal(t, "running", entries[0].SubState)
	assert.Equal(t, "front door", entries[0].Importance)

	assert.Equal(t, "plex.service", entries[1].Name)
	assert.Equal(t, models.UnitStatusUnknown, entries[1].Status)
	assert.Contains(t, entries[1].Troubleshooting, "not found on this host")
	assert.Equal(t, "media server", entries[1].Importance)
}

func TestResolveCriticalPreservesOrder(t *testing.T) {
	t.Parallel()

	defs := DefaultCriticalServices()
	r := NewCriticalResolver(nil)

	entries := r.ResolveCritical(nil)
	require.Len(t, entries, len(defs))

	for i, def := range defs {
		assert.Equal(t, def.Name, entries[i].Name)
		assert.Equal(t, models.UnitStatusUnknown, entries[i].Status)
	}
}

func TestResolveCriticalExactNameMatch(t *testing.T) {
	t.Parallel()

	r := NewCriticalResolver([]CriticalServiceDef{
		{Name: "nginx.service", Importance: "x", Troubleshooting: "y"},
	})

	// A prefix-sharing unit must not satisfy the match.
	live := []models.ServiceUnit{
		{Name: "nginx-config-reload.service", Status: models.UnitStatusActive},
	}

	entries := r.ResolveCritical(live)
	require.Len(t, entries, 1)
	assert.Equal(t, models.UnitStatusUnknown, entries[0].Status)
}

func TestResolveCriticalFailedUnit(t *testing.T) {
	t.Parallel()

	r := NewCriticalResolver([]CriticalServiceDef{
		{Name: "plex.service", Importance: "media", Troubleshooting: "check mounts"},
	})

	live := []models.ServiceUnit{
		{Name: "plex.service", Status: models.UnitStatusFailed, SubState: "exit-code"},
	}

	entries := r.ResolveCritical(live)
	require.Len(t, entries, 1)
	assert.Equal(t, models.UnitStatusFailed, entries[0].Status)
	assert.Equal(t, "exit-code", entries[0].SubState)
	assert.Equal(t, "check mounts", entries[0].Troubleshooting)
}
