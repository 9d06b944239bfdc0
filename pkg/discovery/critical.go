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
	"fmt"

	"github.com/homelab-edu/homelab/pkg/models"
)

// CriticalServiceDef is one operator-curated allow-list entry. The
// declaration order of the allow-list is significant and preserved all
// the way to the API response.
type CriticalServiceDef struct {
	Name            string `json:"name"`
	Importance      string `json:"importance"`
	Troubleshooting string `json:"troubleshooting"`
}

// CriticalResolver joins the static allow-list with live enumeration
// results.
type CriticalResolver struct {
	allowList []CriticalServiceDef
}

func NewCriticalResolver(allowList []CriticalServiceDef) *CriticalResolver {
	if len(allowList) == 0 {
		allowList = DefaultCriticalServices()
	}

	return &CriticalResolver{allowList: allowList}
}

// ResolveCritical produces one entry per allow-list name, in allow-list
// order. Entries without a matching live unit are surfaced with status
// unknown rather than dropped: a missing critical unit is itself the
// signal.
func (r *CriticalResolver) ResolveCritical(allUnits []models.ServiceUnit) models.CriticalServices {
	byName := make(map[string]*models.ServiceUnit, len(allUnits))
	for i := range allUnits {
		byName[allUnits[i].Name] = &allUnits[i]
	}

	entries := make(models.CriticalServices, 0, len(r.allowList))

	for _, def := range r.allowList {
		entry := models.CriticalServiceEntry{
			Name:            def.Name,
			Importance:      def.Importance,
			Troubleshooting: def.Troubleshooting,
		}

		if unit, ok := byName[def.Name]; ok {
			entry.Status = unit.Status
			entry.SubState = unit.SubState
		} else {
			entry.Status = models.UnitStatusUnknown
			entry.Troubleshooting = fmt.Sprintf(
				"Unit %s was not found on this host. Install it or remove it from the critical list. %s",
				def.Name, def.Troubleshooting)
		}

		entries = append(entries, entry)
	}

	return entries
}

// DefaultCriticalServices is the shipped allow-list, ordered by blast
// radius for external users: reverse proxy first, then the media stack,
// then name resolution and the substrate they all sit on.
func DefaultCriticalServices() []CriticalServiceDef {
	return []CriticalServiceDef{
		{
			Name:            "nginx.service",
			Importance:      "Reverse proxy fronting every externally reachable service. If it is down, everything looks down.",
			Troubleshooting: "Run 'nginx -t' to validate configuration, then 'systemctl status nginx' for the failure reason.",
		},
		{
			Name:            "plex.service",
			Importance:      "Media server streamed by external users. Its failure is immediately user-visible.",
			Troubleshooting: "Check that the media storage mount is present before restarting Plex.",
		},
		{
			Name:            "systemd-resolved.service",
			Importance:      "DNS resolution for the host. Most other services fail in confusing ways without it.",
			Troubleshooting: "Check /etc/systemd/resolved.conf and 'resolvectl status'.",
		},
		{
			Name:            "NetworkManager.service",
			Importance:      "Manages all network connections. No connectivity at all without it.",
			Troubleshooting: "Try 'systemctl restart NetworkManager' and check 'nmcli device status'.",
		},
		{
			Name:            "dbus.service",
			Importance:      "Inter-process communication bus that most system services depend on.",
			Troubleshooting: "If failed, the system is severely degraded. Check system logs and consider a reboot.",
		},
		{
			Name:            "systemd-logind.service",
			Importance:      "User session and power management. Console and SSH logins degrade without it.",
			Troubleshooting: "Check for conflicting display managers or permission issues.",
		},
		{
			Name:            "systemd-timesyncd.service",
			Importance:      "Accurate clocks keep TLS certificates valid and logs correlatable.",
			Troubleshooting: "Check network connectivity and configured NTP servers with 'timedatectl'.",
		},
	}
}
