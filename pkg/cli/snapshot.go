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

	"github.com/urfave/cli/v3"

	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/serializer"
	"github.com/MalteKiefer/Status/pkg/snapshotter"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a machine telemetry snapshot",
		Description: `Capture one snapshot of the machine:
  - CPU model, topology, usage, load, frequency and temperature
  - Memory and swap
  - Physical disks and mounted filesystems
  - Network interfaces and counters
  - Host identity, OS release, kernel and uptime
  - Running Docker containers (unless disabled)

Any category that cannot be read is rendered as null.

# Examples

  status snapshot
  status snapshot --format yaml --output node.yaml
  status --root-path /host --docker-enabled=false snapshot --format table`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "sample-interval",
				Usage: "gap between the two CPU usage samples (overrides config)",
				Value: defaults.CPUSampleInterval,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("sample-interval") {
				cfg.CPUSampleInterval = cmd.Duration("sample-interval")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ser, err := serializer.NewFileWriter(outFormat, cmd.String(outputFlag.Name))
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
			defer cancel()

			resolver := vfs.New(cfg.RootPath)
			ns := snapshotter.NodeSnapshotter{
				Version:    version,
				Factory:    newFactory(cfg, resolver),
				Serializer: ser,
				RootPath:   resolver.Root(),
			}

			if err := ns.Measure(ctx); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			return nil
		},
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f, err := serializer.ParseFormat(cmd.String(formatFlag.Name))
	if err != nil {
		return "", fmt.Errorf("invalid --format: %w", err)
	}
	return f, nil
}
