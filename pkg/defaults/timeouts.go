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

package defaults

import "time"

const (
	// CollectorTimeout bounds a single pseudo-file collector.
	// Collectors respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second

	// CPUSampleInterval is the gap between the two /proc/stat samples
	// used to derive CPU utilization.
	CPUSampleInterval = 250 * time.Millisecond
)

const (
	// DockerInfoTimeout bounds the `docker info` availability check.
	DockerInfoTimeout = 5 * time.Second

	// DockerListTimeout bounds the `docker ps -a` listing.
	DockerListTimeout = 10 * time.Second

	// DockerStatsTimeout bounds the `docker stats --no-stream` call.
	DockerStatsTimeout = 15 * time.Second

	// DockerCollectorTimeout bounds the whole Docker collector. It covers
	// the three sequential invocations above.
	DockerCollectorTimeout = DockerInfoTimeout + DockerListTimeout + DockerStatsTimeout + 5*time.Second
)

const (
	// SnapshotHandlerTimeout is the timeout for snapshot requests served over HTTP.
	// Longer than DockerCollectorTimeout so a slow runtime degrades to an absent field.
	SnapshotHandlerTimeout = 45 * time.Second

	// CLISnapshotTimeout is the default timeout for snapshot operations run from the CLI.
	CLISnapshotTimeout = 2 * time.Minute
)

const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
