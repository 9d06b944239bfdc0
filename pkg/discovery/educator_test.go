package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelab-edu/homelab/pkg/models"
)

func TestEducatorTotalCoverage(t *testing.T) {
	t.Parallel()

	e := NewEducator(nil, nil)
	c := NewClassifier(nil)

	names := []string{
		"NetworkManager.service", "plex.service", "fail2ban.service",
		"docker.service", "xyz-custom-daemon.service", "tmp.mount",
		"user@1000.service", "bluetooth.service",
	}

	for _, name := range names {
		unit := models.ServiceUnit{Name: name}
		ctx := e.Enrich(unit, c.Classify(unit))

		assert.NotEmpty(t, ctx.Description, "description for %q", name)
		assert.NotEmpty(t, ctx.Importance, "importance for %q", name)
		assert.NotEmpty(t, ctx.Troubleshooting, "troubleshooting for %q", name)
	}
}

// A unit with no override but a known category gets the category
// template, not the generic one.
func TestEducatorCategoryFallback(t *testing.T) {
	t.Parallel()

	e := NewEducator(nil, nil)

	unit := models.ServiceUnit{Name: "fail2ban.service"}
	ctx := e.Enrich(unit, models.CategorySecurity)

	want := DefaultCategoryNotes()[models.CategorySecurity]
	assert.Equal(t, want, ctx)
}

// A unit matching neither overrides nor a known category gets the
// terminal generic template.
func TestEducatorGenericFallback(t *testing.T) {
	t.Parallel()

	e := NewEducator(nil, nil)

	unit := models.ServiceUnit{Name: "xyz-custom-daemon.service"}
	ctx := e.Enrich(unit, models.CategoryOther)

	assert.Equal(t, "System service - purpose not yet documented.", ctx.Description)
	assert.NotEmpty(t, ctx.Importance)
	assert.NotEmpty(t, ctx.Troubleshooting)
}

func TestEducatorUnitOverride(t *testing.T) {
	t.Parallel()

	e := NewEducator(nil, nil)

	// Lookup key strips the type suffix and lowercases, so the
	// canonical systemd name resolves the override.
	unit := models.ServiceUnit{Name: "NetworkManager.service"}
	ctx := e.Enrich(unit, models.CategoryNetworking)

	want, ok := DefaultUnitNotes()["networkmanager"]
	require.True(t, ok)
	assert.Equal(t, want, ctx)
}

func TestEducatorFailedUnitTroubleshooting(t *testing.T) {
	t.Parallel()

	e := NewEducator(nil, nil)

	unit := models.ServiceUnit{
		Name:     "nginx.service",
		Status:   models.UnitStatusFailed,
		SubState: "exit-code",
	}

	ctx := e.Enrich(unit, models.CategoryNetworking)
	assert.Contains(t, ctx.Troubleshooting, "exit-code")
}

func TestEducatorCustomTables(t *testing.T) {
	t.Parallel()

	overrides := map[string]models.EducationalContext{
		"mydaemon": {
			Description:     "test daemon",
			Importance:      "test importance",
			Troubleshooting: "test troubleshooting",
		},
	}

	e := NewEducator(overrides, map[models.CategoryLabel]models.EducationalContext{})

	ctx := e.Enrich(models.ServiceUnit{Name: "mydaemon.service"}, models.CategoryOther)
	assert.Equal(t, "test daemon", ctx.Description)

	// Empty category table degrades straight to generic.
	ctx = e.Enrich(models.ServiceUnit{Name: "other.service"}, models.CategoryNetworking)
	assert.NotEmpty(t, ctx.Description)
}
