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

// Package collector defines the Collector interface and the factory that
// wires the per-category collectors.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context) (measurement.Summary, error)
//	}
//
// A collector returns a typed summary, an error, or (nil, nil) when the
// category does not apply to this host (docker disabled or unreachable).
//
// # Available Collectors
//
//   - cpu: model, utilization, load, frequency, temperature
//   - memory: /proc/meminfo totals and swap
//   - storage: block devices and mounted filesystems
//   - network: interfaces and counters from /sys/class/net
//   - host: hostname, kernel, os-release, uptime
//   - docker: containers and live stats from the docker CLI
//
// # Factory
//
// DefaultFactory passes one vfs.Resolver to every filesystem-backed collector
// so that a whole snapshot can be taken from a mounted host root:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithResolver(vfs.New("/host")),
//	    collector.WithDockerEnabled(false),
//	)
//	summary, err := factory.CreateMemoryCollector().Collect(ctx)
package collector
