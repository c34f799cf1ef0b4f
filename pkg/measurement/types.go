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
	"fmt"
)

// Type identifies the telemetry category a Summary belongs to.
// Its value is also the field name of the category in a snapshot.
type Type string

// String returns the string representation of the measurement Type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeCPU     Type = "cpu"
	TypeMemory  Type = "memory"
	TypeStorage Type = "storage"
	TypeNetwork Type = "network"
	TypeHost    Type = "host"
	TypeDocker  Type = "docker"
)

// Types lists all categories in snapshot field order.
var Types = []Type{
	TypeCPU,
	TypeMemory,
	TypeStorage,
	TypeNetwork,
	TypeHost,
	TypeDocker,
}

// ParseType parses a string into a measurement Type.
func ParseType(s string) (Type, error) {
	for _, mt := range Types {
		if string(mt) == s {
			return mt, nil
		}
	}
	return "", fmt.Errorf("unknown measurement type %q", s)
}

// Summary is the result of one collector run.
type Summary interface {
	Type() Type
}
