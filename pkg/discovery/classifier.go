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
	"strings"

	"github.com/homelab-edu/homelab/pkg/models"
)

// ClassificationRule maps a name substring onto a category. Rules are
// evaluated in declaration order and the first match wins, so more
// specific patterns must precede generic ones.
type ClassificationRule struct {
	Pattern  string               `json:"pattern"`
	Category models.CategoryLabel `json:"category"`
}

// Classifier assigns a category to a unit from its name. It is a pure
// function of the rule table and safe for concurrent use.
type Classifier struct {
	rules []ClassificationRule
}

func NewClassifier(rules []ClassificationRule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultClassificationRules()
	}

	return &Classifier{rules: rules}
}

// Classify returns exactly one label from the closed category set.
// Units matching no rule classify as other, never an error.
func (c *Classifier) Classify(unit models.ServiceUnit) models.CategoryLabel {
	name := strings.ToLower(unit.Name)

	for _, rule := range c.rules {
		if strings.Contains(name, rule.Pattern) {
			return rule.Category
		}
	}

	return models.CategoryOther
}

// DefaultClassificationRules is the compiled-in rule table. Specific
// systemd-* patterns come first so the generic "systemd" rule does not
// shadow them.
func DefaultClassificationRules() []ClassificationRule {
	return []ClassificationRule{
		// Networking units that a bare "systemd" rule would swallow.
		{Pattern: "systemd-resolved", Category: models.CategoryNetworking},
		{Pattern: "systemd-networkd", Category: models.CategoryNetworking},
		{Pattern: "systemd-timesyncd", Category: models.CategoryNetworking},

		// Media stack.
		{Pattern: "plex", Category: models.CategoryMedia},
		{Pattern: "jellyfin", Category: models.CategoryMedia},
		{Pattern: "emby", Category: models.CategoryMedia},
		{Pattern: "sonarr", Category: models.CategoryMedia},
		{Pattern: "radarr", Category: models.CategoryMedia},
		{Pattern: "lidarr", Category: models.CategoryMedia},
		{Pattern: "prowlarr", Category: models.CategoryMedia},
		{Pattern: "bazarr", Category: models.CategoryMedia},
		{Pattern: "tautulli", Category: models.CategoryMedia},
		{Pattern: "overseerr", Category: models.CategoryMedia},
		{Pattern: "transmission", Category: models.CategoryMedia},
		{Pattern: "qbittorrent", Category: models.CategoryMedia},
		{Pattern: "sabnzbd", Category: models.CategoryMedia},

		// Security and authentication.
		{Pattern: "fail2ban", Category: models.CategorySecurity},
		{Pattern: "ufw", Category: models.CategorySecurity},
		{Pattern: "firewall", Category: models.CategorySecurity},
		{Pattern: "apparmor", Category: models.CategorySecurity},
		{Pattern: "ssh", Category: models.CategorySecurity},
		{Pattern: "auth", Category: models.CategorySecurity},
		{Pattern: "keyring", Category: models.CategorySecurity},

		// Monitoring.
		{Pattern: "prometheus", Category: models.CategoryMonitoring},
		{Pattern: "grafana", Category: models.CategoryMonitoring},
		{Pattern: "node_exporter", Category: models.CategoryMonitoring},
		{Pattern: "node-exporter", Category: models.CategoryMonitoring},
		{Pattern: "telegraf", Category: models.CategoryMonitoring},
		{Pattern: "netdata", Category: models.CategoryMonitoring},
		{Pattern: "zabbix", Category: models.CategoryMonitoring},

		// Storage.
		{Pattern: "samba", Category: models.CategoryStorage},
		{Pattern: "smbd", Category: models.CategoryStorage},
		{Pattern: "nmbd", Category: models.CategoryStorage},
		{Pattern: "nfs", Category: models.CategoryStorage},
		{Pattern: "zfs", Category: models.CategoryStorage},
		{Pattern: "smartd", Category: models.CategoryStorage},
		{Pattern: "smartmontools", Category: models.CategoryStorage},
		{Pattern: "mdmonitor", Category: models.CategoryStorage},
		{Pattern: "iscsi", Category: models.CategoryStorage},
		{Pattern: "lvm", Category: models.CategoryStorage},
		{Pattern: "udisks", Category: models.CategoryStorage},

		// Development and containers.
		{Pattern: "docker", Category: models.CategoryDevelopment},
		{Pattern: "podman", Category: models.CategoryDevelopment},
		{Pattern: "containerd", Category: models.CategoryDevelopment},
		{Pattern: "gitea", Category: models.CategoryDevelopment},
		{Pattern: "jenkins", Category: models.CategoryDevelopment},

		// Networking, general.
		{Pattern: "network", Category: models.CategoryNetworking},
		{Pattern: "dhcp", Category: models.CategoryNetworking},
		{Pattern: "dnsmasq", Category: models.CategoryNetworking},
		{Pattern: "dns", Category: models.CategoryNetworking},
		{Pattern: "avahi", Category: models.CategoryNetworking},
		{Pattern: "wpa_supplicant", Category: models.CategoryNetworking},
		{Pattern: "bluetooth", Category: models.CategoryNetworking},
		{Pattern: "tailscale", Category: models.CategoryNetworking},
		{Pattern: "wireguard", Category: models.CategoryNetworking},
		{Pattern: "vpn", Category: models.CategoryNetworking},
		{Pattern: "nginx", Category: models.CategoryNetworking},
		{Pattern: "caddy", Category: models.CategoryNetworking},
		{Pattern: "haproxy", Category: models.CategoryNetworking},

		// System core, last so it cannot shadow anything above.
		{Pattern: "systemd", Category: models.CategorySystemCore},
		{Pattern: "dbus", Category: models.CategorySystemCore},
		{Pattern: "udev", Category: models.CategorySystemCore},
		{Pattern: "kernel", Category: models.CategorySystemCore},
		{Pattern: "polkit", Category: models.CategorySystemCore},
		{Pattern: "cron", Category: models.CategorySystemCore},
	}
}
