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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseType(t *testing.T) {
	for _, mt := range Types {
		got, err := ParseType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, got)
	}

	_, err := ParseType("gpu")
	assert.Error(t, err)
}

func TestSummaryTypes(t *testing.T) {
	summaries := []Summary{&CPU{}, &Memory{}, &Storage{}, &Network{}, &Host{}, &Docker{}}
	for i, s := range summaries {
		assert.Equal(t, Types[i], s.Type())
	}
}

func TestContainerJSONFlattensStats(t *testing.T) {
	withStats := Container{
		Name:  "web",
		State: "running",
		ContainerStats: &ContainerStats{
			CPU:     "1.50%",
			NetIO:   "1.2kB / 3.4kB",
			BlockIO: "0B / 0B",
		},
	}
	b, err := json.Marshal(withStats)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "1.50%", m["cpu"])
	assert.Equal(t, "1.2kB / 3.4kB", m["net_io"])
	assert.True(t, withStats.HasStats())

	without := Container{Name: "db", State: "exited"}
	b, err = json.Marshal(without)
	require.NoError(t, err)

	m = nil
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "cpu")
	assert.NotContains(t, m, "memory")
	assert.False(t, without.HasStats())
}

func TestContainerYAMLFlattensStats(t *testing.T) {
	c := Container{Name: "web", ContainerStats: &ContainerStats{MemoryPercent: "0.40%"}}
	b, err := yaml.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(b, &m))
	assert.Equal(t, "0.40%", m["memory_percent"])

	b, err = yaml.Marshal(Container{Name: "db"})
	require.NoError(t, err)
	m = nil
	require.NoError(t, yaml.Unmarshal(b, &m))
	assert.NotContains(t, m, "memory_percent")
}
