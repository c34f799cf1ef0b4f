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

// Package version parses kernel releases such as "6.8.0-45-generic" into
// numeric Major.Minor.Patch triples.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyVersion = errors.New("version string is empty")
	ErrNonNumeric   = errors.New("version component is not numeric")
)

// Version is a numeric Major.Minor.Patch triple. Precision records how many
// components were present in the parsed input; Extras keeps the suffix
// starting at the first '-' or '+' (e.g. "-45-generic").
type Version struct {
	Major     int    `json:"major" yaml:"major"`
	Minor     int    `json:"minor" yaml:"minor"`
	Patch     int    `json:"patch" yaml:"patch"`
	Precision int    `json:"-" yaml:"-"`
	Extras    string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String renders the version up to its precision. Extras are not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseKernelRelease parses a kernel release string as found in
// /proc/sys/kernel/osrelease. A fourth numeric component
// (WSL: "5.15.167.4-microsoft-standard-WSL2") is moved into Extras together
// with the usual suffix.
func ParseKernelRelease(release string) (Version, error) {
	release = strings.TrimSpace(release)
	if release == "" {
		return Version{}, ErrEmptyVersion
	}

	main, extras := splitExtras(release)
	parts := strings.Split(main, ".")
	if len(parts) > 3 {
		extras = "." + strings.Join(parts[3:], ".") + extras
		parts = parts[:3]
	}

	v := Version{Extras: extras, Precision: len(parts)}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, err
		}
		v.set(i, n)
	}
	return v, nil
}

func (v *Version) set(i, n int) {
	switch i {
	case 0:
		v.Major = n
	case 1:
		v.Minor = n
	case 2:
		v.Patch = n
	}
}

// splitExtras cuts s at the first '-' or '+' that follows a digit.
func splitExtras(s string) (string, string) {
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrNonNumeric)
	}
	n, err := strconv.Atoi(part)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
	}
	return n, nil
}
