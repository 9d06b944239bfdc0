package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The critical map must serialize its keys in allow-list order.
func TestCriticalServicesMarshalOrder(t *testing.T) {
	t.Parallel()

	entries := CriticalServices{
		{Name: "nginx.service", Status: UnitStatusActive, Importance: "a", Troubleshooting: "b"},
		{Name: "plex.service", Status: UnitStatusUnknown, Importance: "c", Troubleshooting: "d"},
		{Name: "dbus.service", Status: UnitStatusActive, Importance: "e", Troubleshooting: "f"},
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.Index(s, "nginx.service") < strings.Index(s, "plex.service"))
	assert.True(t, strings.Index(s, "plex.service") < strings.Index(s, "dbus.service"))

	var decoded map[string]struct {
		Status          UnitStatus `json:"status"`
		Importance      string     `json:"importance"`
		Troubleshooting string     `json:"troubleshooting"`
	}

	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, UnitStatusUnknown, decoded["plex.service"].Status)
	assert.Equal(t, "c", decoded["plex.service"].Importance)
}

func TestCriticalServicesMarshalEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(CriticalServices{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestParseUnitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want UnitStatus
	}{
		{"active", UnitStatusActive},
		{"inactive", UnitStatusInactive},
		{"failed", UnitStatusFailed},
		{"activating", UnitStatusActivating},
		{"deactivating", UnitStatusDeactivating},
		{"reloading", UnitStatusUnknown},
		{"", UnitStatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseUnitStatus(tt.in), tt.in)
	}
}
