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

// Package vfs resolves reads of kernel pseudo-files against an optional
// alternate root.
//
// When the agent runs inside a container with the host filesystem mounted at,
// say, /host, a Resolver created with New("/host") serves /proc/meminfo from
// /host/proc/meminfo whenever that shadow copy exists, and from the container's
// own /proc otherwise. The root is validated once; an invalid root is ignored
// rather than reported.
//
// All accessors are total: missing or unreadable files produce the caller's
// fallback (Get, GetInt) or an empty slice (Ls, LsGlob), never an error.
//
//	r := vfs.New(cfg.RootPath)
//	model := r.Get("/sys/block/nvme0n1/device/model", "unknown")
//	for _, dev := range r.Ls("/sys/block") {
//	    size := r.GetInt(dev+"/size", 0)
//	}
package vfs
