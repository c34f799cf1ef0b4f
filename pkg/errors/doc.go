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

// Package errors provides structured errors with codes.
//
// Collectors wrap failures of their primary source so the snapshot
// aggregator can log them with a stable classification:
//
//	b, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, errors.Wrap(errors.ErrCodeNotFound, "meminfo unavailable", err)
//	}
//
// StructuredError implements Unwrap, so errors.Is and errors.As from the
// standard library work through it. CodeOf extracts the code from any chain.
package errors
