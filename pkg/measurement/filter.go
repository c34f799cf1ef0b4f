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

package measurement

import "strings"

// FilterOut returns the items whose key does not match any of the patterns.
// Supports wildcard patterns:
//   - "prefix*" matches keys starting with "prefix"
//   - "*suffix" matches keys ending with "suffix"
//   - "*contains*" matches keys containing "contains"
//   - "exact" matches keys exactly
func FilterOut[T any](items []T, key func(T) string, patterns []string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if !MatchesAny(key(item), patterns) {
			result = append(result, item)
		}
	}
	return result
}

// FilterIn returns the items whose key matches at least one pattern.
// This is the complement of FilterOut.
func FilterIn[T any](items []T, key func(T) string, patterns []string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesAny(key(item), patterns) {
			result = append(result, item)
		}
	}
	return result
}

// MatchesAny reports whether key matches at least one of the patterns.
func MatchesAny(key string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(key, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a key matches a wildcard pattern.
// Supports multiple wildcard segments, e.g., "a*b*c" matches "aXbYc".
func matchesPattern(key, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	segments := strings.Split(pattern, "*")
	last := len(segments) - 1

	// Anchored prefix.
	if !strings.HasPrefix(key, segments[0]) {
		return false
	}
	pos := len(segments[0])

	// Anchored suffix.
	if len(key)-pos < len(segments[last]) || !strings.HasSuffix(key, segments[last]) {
		return false
	}
	end := len(key) - len(segments[last])

	for _, segment := range segments[1:last] {
		if segment == "" {
			continue
		}
		idx := strings.Index(key[pos:end], segment)
		if idx == -1 {
			return false
		}
		pos += idx + len(segment)
	}

	return true
}
