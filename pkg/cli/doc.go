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

// Package cli implements the status command-line interface.
//
// # Commands
//
// snapshot - Capture one machine snapshot:
//
//	status snapshot [--output FILE] [--format json|yaml|table] [--sample-interval 250ms]
//
// serve - Serve snapshots over HTTP:
//
//	status serve [--address :8080]
//
// version - Print build information:
//
//	status version
//
// # Global Flags
//
//	--config FILE          config file (default: $HOME/.status.yaml, ./.status.yaml)
//	--log-level LEVEL      debug, info, warn, error (default: info, env LOG_LEVEL)
//	--root-path DIR        alternate root for /proc, /sys and /etc
//	--docker-enabled BOOL  collect Docker statistics (default: true)
//
// Flags override values from the config file and STATUS_* environment
// variables. See pkg/config for the full list of keys.
//
// Logs go to stderr as JSON so snapshot output on stdout stays clean.
package cli
