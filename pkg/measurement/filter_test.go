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

import (
	"slices"
	"testing"
)

func identity(s string) string { return s }

func TestFilterOut(t *testing.T) {
	interfaces := []string{"lo", "eth0", "eno1", "docker0", "veth12ab", "br-5f2e", "wlan0", "virbr0"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "exact match",
			patterns: []string{"lo"},
			want:     []string{"eth0", "eno1", "docker0", "veth12ab", "br-5f2e", "wlan0", "virbr0"},
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"veth*", "docker*"},
			want:     []string{"lo", "eth0", "eno1", "br-5f2e", "wlan0", "virbr0"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*0"},
			want:     []string{"lo", "eno1", "veth12ab", "br-5f2e"},
		},
		{
			name:     "contains wildcard",
			patterns: []string{"*br*"},
			want:     []string{"lo", "eth0", "eno1", "docker0", "veth12ab", "wlan0"},
		},
		{
			name:     "no patterns",
			patterns: nil,
			want:     interfaces,
		},
		{
			name:     "match everything",
			patterns: []string{"*"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOut(interfaces, identity, tt.patterns)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterOut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterIn(t *testing.T) {
	type mount struct{ path string }
	mounts := []mount{{"/"}, {"/boot"}, {"/snap/core/123"}, {"/var/lib/docker/overlay2/x"}}

	got := FilterIn(mounts, func(m mount) string { return m.path }, []string{"/snap/*", "/var/lib/docker/*"})
	if len(got) != 2 || got[0].path != "/snap/core/123" || got[1].path != "/var/lib/docker/overlay2/x" {
		t.Errorf("FilterIn() = %v", got)
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		key     string
		pattern string
		want    bool
	}{
		{"loop0", "loop*", true},
		{"nvme0n1", "loop*", false},
		{"dm-0", "dm-*", true},
		{"aXbYc", "a*b*c", true},
		{"abc", "a*b*c", true},
		{"ac", "a*b*c", false},
		{"aba", "ab*ba", false},
		{"abba", "ab*ba", true},
		{"sda", "sda", true},
		{"sda1", "sda", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"_"+tt.pattern, func(t *testing.T) {
			if got := matchesPattern(tt.key, tt.pattern); got != tt.want {
				t.Errorf("matchesPattern(%q, %q) = %v, want %v", tt.key, tt.pattern, got, tt.want)
			}
		})
	}
}
