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

// Package logging provides structured logging setup for the status binaries.
//
// # Overview
//
// The package wraps log/slog with the defaults used across the project:
// JSON records on stderr, module and version attributes on every record,
// and source locations when running at debug level.
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
// The level is taken from the --log-level flag when set, otherwise from LOG_LEVEL.
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("status", version)
//	    slog.Info("collecting snapshot")
//	}
//
// Explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("statusd", version, "debug")
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "collector failed, field omitted",
//	    "module": "status",
//	    "version": "v0.3.0",
//	    "collector": "docker"
//	}
package logging
