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
	"time"

	"github.com/MalteKiefer/Status/pkg/version"
)

// CPU describes the processor and its current load.
type CPU struct {
	Model        string      `json:"model" yaml:"model"`
	Vendor       string      `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Cores        int         `json:"cores" yaml:"cores"`
	Threads      int         `json:"threads" yaml:"threads"`
	UsagePercent float64     `json:"usage_percent" yaml:"usage_percent"`
	Load         LoadAverage `json:"load" yaml:"load"`

	// Temperature is in degrees Celsius; nil when no sensor could be read.
	Temperature *float64   `json:"temperature" yaml:"temperature"`
	Frequency   *Frequency `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

func (*CPU) Type() Type { return TypeCPU }

type LoadAverage struct {
	Load1  float64 `json:"load1" yaml:"load1"`
	Load5  float64 `json:"load5" yaml:"load5"`
	Load15 float64 `json:"load15" yaml:"load15"`
}

// Frequency values are in MHz. Current holds one entry per logical CPU.
type Frequency struct {
	Min     float64   `json:"min_mhz" yaml:"min_mhz"`
	Max     float64   `json:"max_mhz" yaml:"max_mhz"`
	Current []float64 `json:"current_mhz" yaml:"current_mhz"`
}

// Memory values are in bytes.
type Memory struct {
	Total       uint64  `json:"total" yaml:"total"`
	Available   uint64  `json:"available" yaml:"available"`
	Used        uint64  `json:"used" yaml:"used"`
	Free        uint64  `json:"free" yaml:"free"`
	Buffers     uint64  `json:"buffers" yaml:"buffers"`
	Cached      uint64  `json:"cached" yaml:"cached"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
	Swap        Swap    `json:"swap" yaml:"swap"`
}

func (*Memory) Type() Type { return TypeMemory }

type Swap struct {
	Total       uint64  `json:"total" yaml:"total"`
	Free        uint64  `json:"free" yaml:"free"`
	Used        uint64  `json:"used" yaml:"used"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
}

// Storage lists physical block devices and mounted filesystems.
type Storage struct {
	Disks       []Disk       `json:"disks" yaml:"disks"`
	Filesystems []Filesystem `json:"filesystems" yaml:"filesystems"`
}

func (*Storage) Type() Type { return TypeStorage }

type Disk struct {
	Name       string `json:"name" yaml:"name"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	Size       uint64 `json:"size" yaml:"size"`
	Rotational bool   `json:"rotational" yaml:"rotational"`
	Removable  bool   `json:"removable" yaml:"removable"`
}

type Filesystem struct {
	Device      string  `json:"device" yaml:"device"`
	Mountpoint  string  `json:"mountpoint" yaml:"mountpoint"`
	FSType      string  `json:"fstype" yaml:"fstype"`
	Total       uint64  `json:"total" yaml:"total"`
	Used        uint64  `json:"used" yaml:"used"`
	Free        uint64  `json:"free" yaml:"free"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
}

// Network lists interfaces with their counters. RxBytes and TxBytes are
// totals across the listed interfaces.
type Network struct {
	Interfaces []Interface `json:"interfaces" yaml:"interfaces"`
	RxBytes    uint64      `json:"rx_bytes" yaml:"rx_bytes"`
	TxBytes    uint64      `json:"tx_bytes" yaml:"tx_bytes"`
}

func (*Network) Type() Type { return TypeNetwork }

type Interface struct {
	Name      string `json:"name" yaml:"name"`
	MAC       string `json:"mac,omitempty" yaml:"mac,omitempty"`
	State     string `json:"state" yaml:"state"`
	MTU       int64  `json:"mtu" yaml:"mtu"`
	SpeedMbps int64  `json:"speed_mbps" yaml:"speed_mbps"`
	RxBytes   uint64 `json:"rx_bytes" yaml:"rx_bytes"`
	TxBytes   uint64 `json:"tx_bytes" yaml:"tx_bytes"`
	RxPackets uint64 `json:"rx_packets" yaml:"rx_packets"`
	TxPackets uint64 `json:"tx_packets" yaml:"tx_packets"`
	RxErrors  uint64 `json:"rx_errors" yaml:"rx_errors"`
	TxErrors  uint64 `json:"tx_errors" yaml:"tx_errors"`
	RxDropped uint64 `json:"rx_dropped" yaml:"rx_dropped"`
	TxDropped uint64 `json:"tx_dropped" yaml:"tx_dropped"`
}

// Host identifies the machine and its operating system.
type Host struct {
	Hostname           string           `json:"hostname" yaml:"hostname"`
	Kernel             string           `json:"kernel" yaml:"kernel"`
	KernelVersion      *version.Version `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	OS                 OSRelease        `json:"os" yaml:"os"`
	Architecture       string           `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Uptime             uint64           `json:"uptime" yaml:"uptime"`
	BootTime           *time.Time       `json:"boot_time,omitempty" yaml:"boot_time,omitempty"`
	Processes          uint64           `json:"processes,omitempty" yaml:"processes,omitempty"`
	Virtualization     string           `json:"virtualization,omitempty" yaml:"virtualization,omitempty"`
	VirtualizationRole string           `json:"virtualization_role,omitempty" yaml:"virtualization_role,omitempty"`
}

func (*Host) Type() Type { return TypeHost }

// OSRelease mirrors the identifying fields of os-release(5).
type OSRelease struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	VersionID  string `json:"version_id,omitempty" yaml:"version_id,omitempty"`
	PrettyName string `json:"pretty_name,omitempty" yaml:"pretty_name,omitempty"`
}
