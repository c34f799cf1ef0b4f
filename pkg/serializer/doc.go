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

// Package serializer writes snapshots and API responses as JSON, YAML or a
// flattened table.
//
// # Supported Formats
//
// JSON:
//   - Indented, the default for files and the HTTP API
//   - encoding/json
//
// YAML:
//   - Same field names as JSON
//   - gopkg.in/yaml.v3
//
// Table:
//   - One FIELD/VALUE row per leaf, keys are dotted JSON paths
//     (cpu.load.load1, docker.containers.[0].name)
//   - Absent values render as null
//
// # Usage
//
// Writing to a file or stdout:
//
//	w, err := serializer.NewFileWriter(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//	    return err
//	}
//
// HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, snap)
//	serializer.Respond(w, http.StatusOK, serializer.FormatYAML, snap)
//
// Responses are fully encoded before the status line is written, so an
// encoding failure produces a 500 rather than a truncated body.
package serializer
