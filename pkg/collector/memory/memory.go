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

// Package memory collects RAM and swap usage from /proc/meminfo.
package memory

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/MalteKiefer/Status/pkg/collector/file"
	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

const meminfoPath = "/proc/meminfo"

// Collector reads memory usage from /proc/meminfo.
type Collector struct {
	Resolver *vfs.Resolver

	path string
}

// Collect parses /proc/meminfo. It fails only when the file is missing or empty.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "memory collection canceled", err)
	}

	path := c.path
	if path == "" {
		path = meminfoPath
	}

	contents := c.Resolver.Get(path, "")
	if contents == "" {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound, "meminfo unavailable",
			map[string]any{"path": path})
	}

	m := &measurement.Memory{
		Total:     kb(contents, "MemTotal:"),
		Free:      kb(contents, "MemFree:"),
		Available: kb(contents, "MemAvailable:"),
		Buffers:   kb(contents, "Buffers:"),
		Cached:    kb(contents, "Cached:"),
	}

	// Kernels before 3.14 have no MemAvailable.
	if m.Available == 0 {
		m.Available = m.Free + m.Buffers + m.Cached
	}
	if m.Total >= m.Available {
		m.Used = m.Total - m.Available
	}
	m.UsedPercent = percent(m.Used, m.Total)

	m.Swap.Total = kb(contents, "SwapTotal:")
	m.Swap.Free = kb(contents, "SwapFree:")
	if m.Swap.Total >= m.Swap.Free {
		m.Swap.Used = m.Swap.Total - m.Swap.Free
	}
	m.Swap.UsedPercent = percent(m.Swap.Used, m.Swap.Total)

	slog.Debug("collected memory", slog.Uint64("total", m.Total), slog.Float64("used_percent", m.UsedPercent))
	return m, nil
}

// kb returns the value of a "Key:   1234 kB" line in bytes, or 0.
func kb(contents, key string) uint64 {
	s, ok := file.Grep(contents, key)
	if !ok || s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v * 1024
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(int(float64(part)/float64(total)*10000)) / 100
}
