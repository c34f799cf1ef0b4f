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

// Package host collects machine identity: hostname, kernel, OS release and uptime.
package host

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/version"
	"github.com/MalteKiefer/Status/pkg/vfs"

	gohost "github.com/shirou/gopsutil/v4/host"
)

const (
	hostnamePath  = "/proc/sys/kernel/hostname"
	osReleasePath = "/proc/sys/kernel/osrelease"
	uptimePath    = "/proc/uptime"
)

// Collector reads host identity from procfs and os-release, and enriches it
// with architecture, boot time, process count and virtualization from gopsutil.
type Collector struct {
	Resolver *vfs.Resolver
}

// Collect fails only when neither the hostname nor os-release can be read.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "host collection canceled", err)
	}

	h := &measurement.Host{
		Hostname: c.Resolver.Get(hostnamePath, ""),
		Kernel:   c.Resolver.Get(osReleasePath, ""),
		Uptime:   c.uptime(),
	}

	if h.Kernel != "" {
		if v, err := version.ParseKernelRelease(h.Kernel); err == nil {
			h.KernelVersion = &v
		} else {
			slog.Debug("unparseable kernel release", slog.String("release", h.Kernel), slog.String("error", err.Error()))
		}
	}

	release, relErr := c.readRelease()
	if relErr != nil {
		slog.Debug("os release unavailable", slog.String("error", relErr.Error()))
	}
	h.OS = release

	c.enrich(ctx, h)

	if h.Hostname == "" && relErr != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, "neither hostname nor os-release available", relErr)
	}

	return h, nil
}

// uptime returns whole seconds from the first field of /proc/uptime.
func (c *Collector) uptime() uint64 {
	fields := strings.Fields(c.Resolver.Get(uptimePath, ""))
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || v < 0 {
		return 0
	}
	return uint64(v)
}

// enrich fills fields procfs does not expose directly. gopsutil failures are
// not fatal; whatever it returned is used.
func (c *Collector) enrich(ctx context.Context, h *measurement.Host) {
	info, err := gohost.InfoWithContext(c.Resolver.HostEnv(ctx))
	if err != nil {
		slog.Debug("host info partially unavailable", slog.String("error", err.Error()))
	}
	if info == nil {
		return
	}

	if h.Hostname == "" {
		h.Hostname = info.Hostname
	}
	if h.Uptime == 0 {
		h.Uptime = info.Uptime
	}
	h.Architecture = info.KernelArch
	h.Processes = info.Procs
	h.Virtualization = info.VirtualizationSystem
	h.VirtualizationRole = info.VirtualizationRole
	if info.BootTime > 0 {
		bt := time.Unix(int64(info.BootTime), 0).UTC()
		h.BootTime = &bt
	}
}
