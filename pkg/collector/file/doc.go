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

// Package file provides parsing helpers for kernel pseudo-files.
//
// # Parser
//
// Parser reads a file through a vfs.Resolver and splits it into lines or
// key/value pairs:
//
//	p := file.NewParser(
//	    file.WithResolver(resolver),
//	    file.WithVTrimChars(`"`),
//	)
//	release, err := p.GetMap("/etc/os-release")
//
// Files larger than the configured maximum (1MB by default) and files that
// are not valid UTF-8 are rejected.
//
// # Text helpers
//
// Grep extracts the digits of the first line containing a keyword, which is
// how /proc/meminfo style "Key:   1234 kB" lines are read:
//
//	kb, ok := file.Grep(meminfo, "MemTotal:") // "16318444", true
//
// TempVal and ParseTemperature normalize hwmon and thermal-zone readings that
// may be reported in degrees or millidegrees.
package file
