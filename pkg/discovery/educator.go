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
	"strings"

	"github.com/homelab-edu/homelab/pkg/models"
)

// Educator attaches explanatory text to units through an ordered lookup:
// unit-specific override, then category template, then a terminal
// generic template. Every unit therefore always receives text.
type Educator struct {
	unitNotes     map[string]models.EducationalContext
	categoryNotes map[models.CategoryLabel]models.EducationalContext
	generic       models.EducationalContext
}

func NewEducator(unitNotes map[string]models.EducationalContext,
	categoryNotes map[models.CategoryLabel]models.EducationalContext) *Educator {
	if unitNotes == nil {
		unitNotes = DefaultUnitNotes()
	}

	if categoryNotes == nil {
		categoryNotes = DefaultCategoryNotes()
	}

	return &Educator{
		unitNotes:     unitNotes,
		categoryNotes: categoryNotes,
		generic: models.EducationalContext{
			Description:     "System service - purpose not yet documented.",
			Importance:      "Important system service that provides specific functionality.",
			Troubleshooting: "Check service logs with 'journalctl -u <unit>' for error details.",
		},
	}
}

// Enrich resolves educational context for a unit. Lookup keys are the
// lowercased unit name with its type suffix stripped, so
// "NetworkManager.service" resolves the "networkmanager" override.
func (e *Educator) Enrich(unit models.ServiceUnit, category models.CategoryLabel) models.EducationalContext {
	ctx, ok := e.unitNotes[unitKey(unit.Name)]
	if !ok {
		ctx, ok = e.categoryNotes[category]
		if !ok {
			ctx = e.generic
		}
	}

	if unit.Status == models.UnitStatusFailed && unit.SubState != "" {
		ctx.Troubleshooting = fmt.Sprintf("Unit is failing (sub-state: %s). %s",
			unit.SubState, ctx.Troubleshooting)
	}

	return ctx
}

func unitKey(name string) string {
	name = strings.ToLower(name)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	return name
}

// DefaultUnitNotes covers well-known services with specific text.
func DefaultUnitNotes() map[string]models.EducationalContext {
	return map[string]models.EducationalContext{
		"networkmanager": {
			Description:     "Manages network connections including WiFi, Ethernet, and VPN.",
			Importance:      "Manages all network connections. No internet or network access without it.",
			Troubleshooting: "Check network configuration and try 'systemctl status NetworkManager'.",
		},
		"systemd-resolved": {
			Description:     "Provides network name resolution (DNS), converting domain names to IP addresses.",
			Importance:      "DNS resolution service. Websites won't load without proper name resolution.",
			Troubleshooting: "If DNS is broken, check /etc/systemd/resolved.conf configuration.",
		},
		"systemd-timesyncd": {
			Description:     "Keeps the system clock synchronized with network time servers (NTP).",
			Importance:      "Keeps system time accurate. Important for security certificates and logs.",
			Troubleshooting: "If time sync is broken, check network connectivity and NTP servers.",
		},
		"systemd-logind": {
			Description:     "Handles user logins, sessions, and power management events.",
			Importance:      "Manages user sessions and power events. Logins break without it.",
			Troubleshooting: "Check for conflicting display managers or permission issues.",
		},
		"dbus": {
			Description:     "Desktop Bus - enables communication between applications and system services.",
			Importance:      "Inter-process communication system. Many applications won't work without it.",
			Troubleshooting: "If failed, the system may be severely broken. Check system logs and consider a reboot.",
		},
		"bluetooth": {
			Description:     "Manages Bluetooth devices like wireless headphones, mice, and keyboards.",
			Importance:      "Bluetooth device management. Wireless peripherals won't work without it.",
			Troubleshooting: "Restart it, or check whether Bluetooth hardware is enabled in firmware.",
		},
		"cups": {
			Description:     "Common Unix Printing System - manages printers and print jobs.",
			Importance:      "Printing subsystem. Print jobs queue and fail without it.",
			Troubleshooting: "Check printer connectivity and the CUPS web interface on port 631.",
		},
		"firewalld": {
			Description:     "Dynamic firewall management tool that controls network traffic.",
			Importance:      "Controls which network traffic reaches the host. A key security layer.",
			Troubleshooting: "Inspect active zones with 'firewall-cmd --list-all'.",
		},
		"nginx": {
			Description:     "High-performance web server and reverse proxy.",
			Importance:      "Front door for web traffic. Externally reachable services go dark without it.",
			Troubleshooting: "Validate configuration with 'nginx -t' before restarting.",
		},
		"docker": {
			Description:     "Container runtime daemon managing container lifecycles.",
			Importance:      "Containerized services cannot start or restart without it.",
			Troubleshooting: "Check 'docker info' and daemon logs for storage or networking errors.",
		},
	}
}

// DefaultCategoryNotes provides the per-category fallback templates.
func DefaultCategoryNotes() map[models.CategoryLabel]models.EducationalContext {
	return map[models.CategoryLabel]models.EducationalContext{
		models.CategorySystemCore: {
			Description:     "Essential low-level service that provides basic system functionality.",
			Importance:      "Core system plumbing. Problems here affect the whole host.",
			Troubleshooting: "Core services rarely fail alone. Review 'journalctl -b' for the wider picture.",
		},
		models.CategoryNetworking: {
			Description:     "A networking service that helps your system communicate with other machines.",
			Importance:      "Network connectivity depends on services in this category.",
			Troubleshooting: "Check link state and addresses with 'ip addr' before restarting the service.",
		},
		models.CategoryMedia: {
			Description:     "A media service that serves or manages your media library.",
			Importance:      "Part of the media stack that external users stream from.",
			Troubleshooting: "Verify the service port is reachable and storage mounts are present.",
		},
		models.CategorySecurity: {
			Description:     "A security service that protects the system or manages authentication.",
			Importance:      "Keeps unauthorized access out. Failures here widen the attack surface.",
			Troubleshooting: "Review recent auth logs alongside the service's own journal.",
		},
		models.CategoryDevelopment: {
			Description:     "A development service supporting builds, containers, or source hosting.",
			Importance:      "Development workflows and container workloads rely on it.",
			Troubleshooting: "Check resource usage first; dev services commonly fail under disk pressure.",
		},
		models.CategoryMonitoring: {
			Description:     "A monitoring service that collects or visualizes system metrics.",
			Importance:      "Your visibility into host health comes from services like this one.",
			Troubleshooting: "A down monitor means blind spots, not broken workloads. Restart and check scrape targets.",
		},
		models.CategoryStorage: {
			Description:     "A storage service managing disks, shares, or filesystems.",
			Importance:      "Data availability depends on it. Shares and mounts disappear when it stops.",
			Troubleshooting: "Check 'df -h' and kernel logs for underlying disk errors before restarting.",
		},
	}
}
