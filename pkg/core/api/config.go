package api

import (
	"errors"
	"os"

	"github.com/homelab-edu/homelab/pkg/discovery"
	"github.com/homelab-edu/homelab/pkg/logger"
)

var errListenAddrRequired = errors.New("listen_addr is required")

const defaultListenAddr = ":5000"

// ServerConfig is the top-level service configuration. The discovery
// tables it carries are loaded once at startup and injected read-only.
type ServerConfig struct {
	ListenAddr string            `json:"listen_addr"`
	Logging    *logger.Config    `json:"logging,omitempty"`
	Discovery  *discovery.Config `json:"discovery,omitempty"`
}

// DefaultServerConfig returns the configuration used when no config
// file is present. PORT overrides the listen address for parity with
// container deployments.
func DefaultServerConfig() *ServerConfig {
	addr := defaultListenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	return &ServerConfig{
		ListenAddr: addr,
		Logging:    logger.DefaultConfig(),
	}
}

func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	return nil
}
