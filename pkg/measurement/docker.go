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

// Docker summarizes the container runtime. A nil *Docker in a snapshot means
// the runtime was disabled or unavailable; a present one always has
// Available set.
type Docker struct {
	Available  bool        `json:"available" yaml:"available"`
	Running    int         `json:"running" yaml:"running"`
	Stopped    int         `json:"stopped" yaml:"stopped"`
	Total      int         `json:"total" yaml:"total"`
	Containers []Container `json:"containers" yaml:"containers"`
}

func (*Docker) Type() Type { return TypeDocker }

// Container is one entry of the container listing. Name is its identity.
// The live-stats block is present only when `docker stats` reported a
// container with the same name.
type Container struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Image   string `json:"image" yaml:"image"`
	Status  string `json:"status" yaml:"status"`
	State   string `json:"state" yaml:"state"`
	Ports   string `json:"ports" yaml:"ports"`
	Created string `json:"created" yaml:"created"`

	ImageRepository string `json:"image_repository,omitempty" yaml:"image_repository,omitempty"`
	ImageTag        string `json:"image_tag,omitempty" yaml:"image_tag,omitempty"`

	*ContainerStats `json:",inline,omitempty" yaml:",inline,omitempty"`
}

// ContainerStats holds the raw strings reported by the runtime plus their
// parsed numeric forms. Parsed fields are zero when the raw value was not
// understood.
type ContainerStats struct {
	CPU           string `json:"cpu" yaml:"cpu"`
	Memory        string `json:"memory" yaml:"memory"`
	MemoryPercent string `json:"memory_percent" yaml:"memory_percent"`
	NetIO         string `json:"net_io" yaml:"net_io"`
	BlockIO       string `json:"block_io" yaml:"block_io"`

	CPUPercent       float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemoryUsageBytes int64   `json:"memory_usage_bytes" yaml:"memory_usage_bytes"`
	MemoryLimitBytes int64   `json:"memory_limit_bytes" yaml:"memory_limit_bytes"`
	NetRxBytes       int64   `json:"net_rx_bytes" yaml:"net_rx_bytes"`
	NetTxBytes       int64   `json:"net_tx_bytes" yaml:"net_tx_bytes"`
	BlockReadBytes   int64   `json:"block_read_bytes" yaml:"block_read_bytes"`
	BlockWriteBytes  int64   `json:"block_write_bytes" yaml:"block_write_bytes"`
}

// HasStats reports whether live statistics were merged into the container.
func (c Container) HasStats() bool {
	return c.ContainerStats != nil
}
