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

// Package config loads runtime settings for the status binaries.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and STATUS_* environment variables. Nested keys map to
// environment names by replacing "." with "_", so server.address is read from
// STATUS_SERVER_ADDRESS. The alternate root is also accepted as
// STATUS_CUSTOM_ROOT_PATH.
//
// Example file (~/.status.yaml):
//
//	root_path: /host
//	docker:
//	  enabled: false
//	cpu:
//	  sample_interval: 500ms
//	server:
//	  address: ":9090"
//	  rate_limit: 5
//	  rate_burst: 10
//
// Command-line flags are applied on top of the loaded Config by pkg/cli.
package config
