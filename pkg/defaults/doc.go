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

// Package defaults provides centralized timing constants.
//
// Timeouts are grouped by component:
//
//   - Collector timeouts: pseudo-file reads and the CPU sampling window
//   - Docker timeouts: one per CLI invocation plus an overall bound
//   - Handler timeouts: snapshot requests over HTTP and from the CLI
//   - Server timeouts: HTTP server configuration
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.DockerInfoTimeout)
//	defer cancel()
package defaults
