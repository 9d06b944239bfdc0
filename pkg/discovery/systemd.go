/*
 * Copyright 2025 The homelab authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/models"
)

// systemdUnit mirrors one record of `systemctl list-units --output=json`.
type systemdUnit struct {
	Unit        string `json:"unit"`
	Load        string `json:"load"`
	Active      string `json:"active"`
	Sub         string `json:"sub"`
	Description string `json:"description"`
}

// SystemdManager queries the local systemd instance through systemctl.
type SystemdManager struct {
	log logger.Logger

	// runner is swapped out in tests to avoid shelling out.
	runner func(ctx context.Context) ([]byte, error)
}

func NewSystemdManager(log logger.Logger) *SystemdManager {
	return &SystemdManager{
		log:    log,
		runner: runSystemctlListUnits,
	}
}

func runSystemctlListUnits(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "systemctl", "list-units", "--all", "--output=json", "--no-pager")

	return cmd.Output()
}

// ListUnits enumerates every unit known to systemd. Enumeration failure
// wraps ErrDiscoveryUnavailable; a unit whose fields cannot be parsed is
// still returned with status unknown rather than dropped.
func (m *SystemdManager) ListUnits(ctx context.Context) ([]models.ServiceUnit, error) {
	output, err := m.runner(ctx)
	if err != nil {
		m.log.Error().Err(err).Msg("systemctl list-units failed")
		return nil, fmt.Errorf("%w: %w", ErrDiscoveryUnavailable, err)
	}

	var raw []systemdUnit

	if err := json.Unmarshal(output, &raw); err != nil {
		m.log.Error().Err(err).Msg("failed to decode systemctl output")
		return nil, fmt.Errorf("%w: decoding systemctl output: %w", ErrDiscoveryUnavailable, err)
	}

	units := make([]models.ServiceUnit, 0, len(raw))

	for i := range raw {
		r := &raw[i]
		if r.Unit == "" {
			// A record without a unit name cannot be addressed at all.
			m.log.Debug().Int("index", i).Msg("skipping unnamed unit record")
			continue
		}

		units = append(units, models.ServiceUnit{
			Name:        r.Unit,
			Status:      models.ParseUnitStatus(r.Active),
			UnitType:    unitTypeFromName(r.Unit),
			Description: r.Description,
			LoadState:   r.Load,
			ActiveState: r.Active,
			SubState:    r.Sub,
		})
	}

	m.log.Debug().Int("units", len(units)).Msg("enumerated systemd units")

	return units, nil
}

func unitTypeFromName(name string) models.UnitType {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return models.UnitTypeOther
	}

	switch name[idx+1:] {
	case "service":
		return models.UnitTypeService
	case "socket":
		return models.UnitTypeSocket
	case "timer":
		return models.UnitTypeTimer
	case "mount", "automount":
		return models.UnitTypeMount
	case "target":
		return models.UnitTypeTarget
	default:
		return models.UnitTypeOther
	}
}
