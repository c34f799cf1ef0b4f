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

// Package measurement defines the typed summaries produced by collectors.
//
// # Types
//
// Each collector returns a Summary whose Type names its snapshot field:
//
//	cpu, memory, storage, network, host, docker
//
// The concrete summaries are plain structs with JSON and YAML tags (CPU,
// Memory, Storage, Network, Host, Docker). A nil summary is the absence
// marker for a category that could not be collected.
//
// # Filtering
//
// FilterOut and FilterIn select slice elements by wildcard patterns applied
// to a key function. Collectors use them to drop virtual devices:
//
//	disks = measurement.FilterOut(disks, func(d Disk) string { return d.Name },
//	    []string{"loop*", "ram*", "zram*"})
//
// Supported patterns: "exact", "prefix*", "*suffix", "*contains*" and
// combinations like "a*b*c".
package measurement
