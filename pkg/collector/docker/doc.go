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

// Package docker collects container runtime state through the docker CLI.
//
// The collector performs three bounded invocations:
//
//	docker info                                      (availability check, 5s)
//	docker ps -a --format "{{json .}}"               (listing, 10s)
//	docker stats --no-stream --format "{{json .}}"   (live statistics, 15s)
//
// Listing and statistics output is newline-delimited JSON. Every line is
// decoded on its own and lines that fail to decode are skipped, so one
// truncated record never hides the rest. Statistics are joined onto the
// listing by container name; containers without statistics (typically
// stopped ones) keep only their listing fields.
//
// Size strings such as "12.5MiB / 1.944GiB" are additionally parsed into
// bytes with github.com/docker/go-units, and image references are split into
// repository and tag with github.com/distribution/reference.
//
// The collector returns a nil summary, not an error, when it is disabled or
// when the availability check fails.
package docker
