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

package file

import (
	"math"
	"strings"
)

// Grep returns the first line of contents that contains keyword, with every
// character that is not an ASCII digit removed. The boolean is false when no
// line matches.
//
//	Grep("Tctl: +45.0°C", "Tctl") // "450", true
func Grep(contents, keyword string) (string, bool) {
	for _, line := range strings.Split(contents, "\n") {
		if !strings.Contains(line, keyword) {
			continue
		}
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, line), true
	}
	return "", false
}

// TempVal normalizes a raw temperature reading. Sensors report either whole
// degrees (45) or millidegrees (45000); values whose integer part has four or
// more digits are treated as millidegrees.
func TempVal(raw float64) float64 {
	if digits(raw) >= 4 {
		return raw / 1000
	}
	return raw
}

// ParseTemperature converts a millidegree reading to degrees when divide is
// set. Zero means "no reading" and is returned unchanged.
func ParseTemperature(raw float64, divide bool) float64 {
	if raw == 0 || !divide {
		return raw
	}
	return raw / 1000
}

// Basename returns the last slash-separated element of p.
func Basename(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

func digits(v float64) int {
	n := int64(math.Abs(math.Trunc(v)))
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
