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

package cpu

import (
	"context"
	"log/slog"
	"time"

	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/vfs"

	"github.com/prometheus/procfs"
	"golang.org/x/sync/errgroup"
)

// Collector gathers processor identity, utilization, load, frequency and
// temperature. The sub-reads are independent and run concurrently.
type Collector struct {
	Resolver *vfs.Resolver

	// SampleInterval separates the two /proc/stat samples used for
	// utilization. Zero reports 0% without waiting.
	SampleInterval time.Duration
}

type info struct {
	model   string
	vendor  string
	cores   int
	threads int
	mhz     []float64
}

// Collect fails only when /proc/stat cannot be read.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "cpu collection canceled", err)
	}

	fs, err := procfs.NewFS(c.Resolver.Path("/proc"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, "procfs unavailable", err)
	}

	var (
		id    info
		usage float64
		load  measurement.LoadAverage
		freq  *measurement.Frequency
		temp  *float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		id = c.readInfo(fs)
		return nil
	})

	g.Go(func() error {
		u, err := c.readUsage(gctx, fs)
		if err != nil {
			return err
		}
		usage = u
		return nil
	})

	g.Go(func() error {
		if la, err := fs.LoadAvg(); err == nil {
			load = measurement.LoadAverage{Load1: la.Load1, Load5: la.Load5, Load15: la.Load15}
		} else {
			slog.Debug("load average unavailable", slog.String("error", err.Error()))
		}
		return nil
	})

	g.Go(func() error {
		freq = c.readFrequency()
		return nil
	})

	g.Go(func() error {
		temp = c.readTemperature()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Without cpufreq, fall back to the per-processor MHz of /proc/cpuinfo.
	if freq == nil && len(id.mhz) > 0 {
		freq = &measurement.Frequency{Current: id.mhz}
	}

	cpu := &measurement.CPU{
		Model:        id.model,
		Vendor:       id.vendor,
		Cores:        id.cores,
		Threads:      id.threads,
		UsagePercent: usage,
		Load:         load,
		Temperature:  temp,
		Frequency:    freq,
	}

	slog.Debug("collected cpu", slog.String("model", cpu.Model), slog.Float64("usage", cpu.UsagePercent))
	return cpu, nil
}

// readInfo summarizes /proc/cpuinfo. Cores counts distinct (physical id,
// core id) pairs; on platforms without those fields every processor counts.
func (c *Collector) readInfo(fs procfs.FS) info {
	var id info

	infos, err := fs.CPUInfo()
	if err != nil || len(infos) == 0 {
		slog.Debug("cpuinfo unavailable", slog.Any("error", err))
		id.model = "unknown"
		id.threads = len(c.Resolver.LsGlob("/sys/devices/system/cpu", "cpu[0-9]*"))
		id.cores = id.threads
		return id
	}

	id.model = infos[0].ModelName
	if id.model == "" {
		id.model = "unknown"
	}
	id.vendor = infos[0].VendorID
	id.threads = len(infos)

	cores := make(map[[2]string]struct{}, len(infos))
	for _, ci := range infos {
		if ci.CoreID != "" {
			cores[[2]string{ci.PhysicalID, ci.CoreID}] = struct{}{}
		}
		if ci.CPUMHz > 0 {
			id.mhz = append(id.mhz, ci.CPUMHz)
		}
	}
	id.cores = len(cores)
	if id.cores == 0 {
		id.cores = id.threads
	}
	return id
}

// readUsage samples /proc/stat twice and returns busy time as a percentage.
func (c *Collector) readUsage(ctx context.Context, fs procfs.FS) (float64, error) {
	first, err := fs.Stat()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeNotFound, "failed to read /proc/stat", err)
	}
	if c.SampleInterval <= 0 {
		return 0, nil
	}

	select {
	case <-ctx.Done():
		return 0, errors.Wrap(errors.ErrCodeTimeout, "cpu sampling interrupted", ctx.Err())
	case <-time.After(c.SampleInterval):
	}

	second, err := fs.Stat()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeNotFound, "failed to read /proc/stat", err)
	}
	return usagePercent(first.CPUTotal, second.CPUTotal), nil
}

func usagePercent(a, b procfs.CPUStat) float64 {
	idle := (b.Idle + b.Iowait) - (a.Idle + a.Iowait)
	total := cpuTotal(b) - cpuTotal(a)
	if total <= 0 {
		return 0
	}
	pct := (total - idle) / total * 100
	if pct < 0 {
		return 0
	}
	return float64(int(pct*100)) / 100
}

// cpuTotal excludes guest time, which the kernel already accounts in user and nice.
func cpuTotal(s procfs.CPUStat) float64 {
	return s.User + s.Nice + s.System + s.Idle + s.Iowait + s.IRQ + s.SoftIRQ + s.Steal
}
