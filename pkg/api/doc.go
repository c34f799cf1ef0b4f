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

// Package api wires the snapshot handler into the HTTP server for the
// statusd daemon.
//
// # Endpoints
//
//	GET /v1/snapshot[?format=json|yaml|table]   fresh machine snapshot
//	GET /health                                 liveness
//	GET /ready                                  readiness
//	GET /metrics                                Prometheus metrics
//	GET /                                       service info and routes
//
// # Configuration
//
// Settings are loaded through pkg/config. STATUS_CONFIG names an explicit
// config file; otherwise ~/.status.yaml and ./.status.yaml are tried. Every
// key can be overridden by a STATUS_* environment variable.
//
// # Lifecycle
//
// Serve blocks until SIGINT or SIGTERM. Readiness and systemd notification
// are handled by pkg/server.
package api
