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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/MalteKiefer/Status/pkg/collector"
	"github.com/MalteKiefer/Status/pkg/config"
	"github.com/MalteKiefer/Status/pkg/logging"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

const (
	name           = "status"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "config file (default is $HOME/.status.yaml or ./.status.yaml)",
		Sources: cli.EnvVars(config.EnvPrefix + "_CONFIG"),
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvVarLogLevel),
	}
	rootPathFlag = &cli.StringFlag{
		Name:  "root-path",
		Usage: "alternate root holding the host's /proc, /sys and /etc (e.g. /host)",
	}
	dockerEnabledFlag = &cli.BoolFlag{
		Name:  "docker-enabled",
		Value: true,
		Usage: "collect Docker container statistics",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "json",
		Usage:   "output format (json, yaml, table)",
	}
)

// Execute runs the status CLI and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "status - machine telemetry snapshots",
		Version: version,
		Description: fmt.Sprintf(`Reads CPU, memory, storage, network, host and Docker state
from /proc, /sys and the docker CLI and renders it as one snapshot.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			rootPathFlag,
			dockerEnabledFlag,
		},
		Before: initLogger,
		Commands: []*cli.Command{
			snapshotCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String(logLevelFlag.Name)
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

// loadConfig reads the config file and environment, then applies any
// explicitly set global flags on top.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlag.Name))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(rootPathFlag.Name) {
		cfg.RootPath = cmd.String(rootPathFlag.Name)
	}
	if cmd.IsSet(dockerEnabledFlag.Name) {
		cfg.DockerEnabled = cmd.Bool(dockerEnabledFlag.Name)
	}

	return cfg, nil
}

func newFactory(cfg *config.Config, resolver *vfs.Resolver) *collector.DefaultFactory {
	return collector.NewDefaultFactory(
		collector.WithResolver(resolver),
		collector.WithDockerEnabled(cfg.DockerEnabled),
		collector.WithCPUSampleInterval(cfg.CPUSampleInterval),
		collector.WithNetworkInclude(cfg.NetworkInclude),
	)
}
