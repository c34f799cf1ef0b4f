// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MalteKiefer/Status/pkg/collector"
	"github.com/MalteKiefer/Status/pkg/config"
	"github.com/MalteKiefer/Status/pkg/logging"
	"github.com/MalteKiefer/Status/pkg/server"
	"github.com/MalteKiefer/Status/pkg/snapshotter"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

const (
	name           = "statusd"
	versionDefault = "dev"

	// EnvConfigFile names an explicit config file for the daemon.
	EnvConfigFile = "STATUS_CONFIG"

	// SnapshotPath is the route serving snapshots.
	SnapshotPath = "/v1/snapshot"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/MalteKiefer/Status/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the snapshot routes for cfg.
func Routes(cfg *config.Config, ver string) map[string]http.HandlerFunc {
	resolver := vfs.New(cfg.RootPath)

	ns := &snapshotter.NodeSnapshotter{
		Version: ver,
		Factory: collector.NewDefaultFactory(
			collector.WithResolver(resolver),
			collector.WithDockerEnabled(cfg.DockerEnabled),
			collector.WithCPUSampleInterval(cfg.CPUSampleInterval),
			collector.WithNetworkInclude(cfg.NetworkInclude),
		),
		RootPath: resolver.Root(),
	}

	return map[string]http.HandlerFunc{
		SnapshotPath: ns.HandleSnapshot,
	}
}

// NewServer builds the HTTP server for cfg without starting it.
func NewServer(cfg *config.Config, ver string) *server.Server {
	return server.New(
		server.WithName(name),
		server.WithVersion(ver),
		server.WithAddress(cfg.Server.Address),
		server.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
		server.WithSystemdNotify(cfg.Server.SystemdNotify),
		server.WithHandler(Routes(cfg, ver)),
	)
}

// Serve loads configuration, starts the API server and blocks until SIGINT
// or SIGTERM, then shuts down gracefully.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(os.Getenv(EnvConfigFile))
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	if err := NewServer(cfg, version).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
