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

// Package header provides the common document header.
//
// Every document written by the status binaries starts with the same three
// fields, embedded inline:
//
//	kind: Snapshot
//	apiVersion: status.maltekiefer.dev/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v0.3.0
//	  source-host: worker-01
//
// Usage:
//
//	var h header.Header
//	h.Init(header.KindSnapshot, "status.maltekiefer.dev/v1", version)
//	h.SetMetadata(header.MetadataSourceHost, hostname)
package header
