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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/homelab-edu/homelab/pkg/config"
	"github.com/homelab-edu/homelab/pkg/core/api"
	"github.com/homelab-edu/homelab/pkg/discovery"
	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/sysmon"
)

const (
	defaultSampleInterval = time.Second
	shutdownTimeout       = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/homelab/homelab.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg := api.DefaultServerConfig()

	if _, err := os.Stat(*configPath); err == nil {
		cfgLoader := config.NewConfig(nil)
		if err := cfgLoader.LoadAndValidate(ctx, *configPath, cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		log.Printf("Config file %s not found, using defaults", *configPath)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLog, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	manager := discovery.NewSystemdManager(appLog)
	discoverySvc := discovery.NewService(manager, cfg.Discovery, appLog)
	monitor := sysmon.NewService(appLog, defaultSampleInterval)

	server := api.NewAPIServer(
		api.WithDiscoveryService(discoverySvc),
		api.WithSystemMonitor(monitor),
		api.WithLogger(appLog),
	)

	appLog.Info().Str("listen_addr", cfg.ListenAddr).Msg("Starting homelab API server")

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	case sig := <-sigCh:
		appLog.Info().Str("signal", sig.String()).Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}

		return nil
	}
}
