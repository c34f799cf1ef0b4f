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

package snapshotter

import (
	"context"

	"github.com/MalteKiefer/Status/pkg/header"
	"github.com/MalteKiefer/Status/pkg/measurement"
)

// FullAPIVersion is stamped into the header of every snapshot.
const FullAPIVersion = "status.maltekiefer.dev/v1"

// Snapshotter defines the interface for taking and emitting a snapshot.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot returns an empty snapshot with every category absent.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Snapshot is the telemetry of one host at one instant. Each category is nil
// when its collector failed or does not apply, and serializes as null.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	CPU     *measurement.CPU     `json:"cpu" yaml:"cpu"`
	Memory  *measurement.Memory  `json:"memory" yaml:"memory"`
	Storage *measurement.Storage `json:"storage" yaml:"storage"`
	Network *measurement.Network `json:"network" yaml:"network"`
	Host    *measurement.Host    `json:"host" yaml:"host"`
	Docker  *measurement.Docker  `json:"docker" yaml:"docker"`
}

// set stores s in the field matching its concrete type.
func (s *Snapshot) set(summary measurement.Summary) {
	switch v := summary.(type) {
	case *measurement.CPU:
		s.CPU = v
	case *measurement.Memory:
		s.Memory = v
	case *measurement.Storage:
		s.Storage = v
	case *measurement.Network:
		s.Network = v
	case *measurement.Host:
		s.Host = v
	case *measurement.Docker:
		s.Docker = v
	}
}

// Populated returns the number of non-nil categories.
func (s *Snapshot) Populated() int {
	n := 0
	for _, present := range []bool{
		s.CPU != nil, s.Memory != nil, s.Storage != nil,
		s.Network != nil, s.Host != nil, s.Docker != nil,
	} {
		if present {
			n++
		}
	}
	return n
}
