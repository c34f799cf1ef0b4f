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

// Package snapshotter assembles a point-in-time Snapshot of the current host.
//
// # Core Types
//
//	type Snapshot struct {
//	    header.Header
//	    CPU     *measurement.CPU
//	    Memory  *measurement.Memory
//	    Storage *measurement.Storage
//	    Network *measurement.Network
//	    Host    *measurement.Host
//	    Docker  *measurement.Docker
//	}
//
// A nil field means the category is absent: its collector failed, panicked,
// timed out, or (for docker) is disabled or cannot reach the daemon. Absent
// fields serialize as null so consumers always see the same six keys.
//
// # Usage
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version: version,
//	    Factory: collector.NewDefaultFactory(collector.WithResolver(vfs.New("/host"))),
//	}
//	snap := s.Snapshot(ctx)
//
// Measure takes a snapshot and writes it with the configured serializer
// (JSON on stdout by default). HandleSnapshot serves the same document over
// HTTP, one fresh snapshot per request.
//
// # Parallel Collection
//
// All six collectors run concurrently. Each gets its own deadline derived
// from the caller's context: defaults.CollectorTimeout, or
// defaults.DockerCollectorTimeout for docker, which bounds three sequential
// CLI invocations. One collector never cancels another.
//
// # Snapshot Structure
//
//	kind: Snapshot
//	apiVersion: status.maltekiefer.dev/v1
//	metadata:
//	  id: 0b6f1a3e-5a0c-4a53-9a54-0c8ad2f4b1a7
//	  source-host: node-1
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v0.3.0
//	cpu:
//	  model: AMD Ryzen 7 5800X 8-Core Processor
//	  cores: 8
//	  threads: 16
//	memory: ...
//	docker: null
//
// # Observability
//
// Prometheus metrics:
//   - status_snapshot_collection_duration_seconds
//   - status_snapshot_collection_total{status="complete|partial"}
//   - status_snapshot_collector_duration_seconds{collector}
//   - status_snapshot_collector_failures_total{collector}
//   - status_snapshot_populated_fields
package snapshotter
