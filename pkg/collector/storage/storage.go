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

// Package storage collects block devices from /sys/block and mounted
// filesystem usage through gopsutil.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/MalteKiefer/Status/pkg/collector/file"
	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/vfs"

	"github.com/shirou/gopsutil/v4/disk"
)

const (
	blockPath  = "/sys/block"
	sectorSize = 512
)

var (
	// DefaultDiskExclusions drops loop, ram, compressed swap, device-mapper
	// and optical devices.
	DefaultDiskExclusions = []string{"loop*", "ram*", "zram*", "dm-*", "sr*"}

	// DefaultMountExclusions drops snap squashfs mounts, container layers
	// and runtime state.
	DefaultMountExclusions = []string{"/snap/*", "/var/lib/docker/*", "/run/*"}
)

type (
	partitionsFunc func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usageFunc      func(ctx context.Context, path string) (*disk.UsageStat, error)
)

// Collector lists disks and filesystems. It never fails: unreadable sources
// produce empty lists.
type Collector struct {
	Resolver *vfs.Resolver

	// DiskExclude and MountExclude override the default patterns when non-nil.
	DiskExclude  []string
	MountExclude []string

	partitions partitionsFunc
	usage      usageFunc
}

// Collect lists block devices and mounted filesystems. It never fails on
// unreadable sources; those yield empty lists.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "storage collection canceled", err)
	}

	s := &measurement.Storage{
		Disks:       c.readDisks(),
		Filesystems: c.readFilesystems(ctx),
	}

	slog.Debug("collected storage",
		slog.Int("disks", len(s.Disks)),
		slog.Int("filesystems", len(s.Filesystems)))
	return s, nil
}

func (c *Collector) readDisks() []measurement.Disk {
	exclude := c.DiskExclude
	if exclude == nil {
		exclude = DefaultDiskExclusions
	}

	r := c.Resolver
	paths := measurement.FilterOut(r.Ls(blockPath), file.Basename, exclude)

	disks := make([]measurement.Disk, 0, len(paths))
	for _, p := range paths {
		sectors := r.GetInt(p+"/size", 0)
		if sectors < 0 {
			sectors = 0
		}
		disks = append(disks, measurement.Disk{
			Name:       file.Basename(p),
			Model:      strings.TrimSpace(r.Get(p+"/device/model", "")),
			Size:       uint64(sectors) * sectorSize,
			Rotational: r.GetInt(p+"/queue/rotational", 0) == 1,
			Removable:  r.GetInt(p+"/removable", 0) == 1,
		})
	}
	return disks
}

// readFilesystems lists physical mounts once per device. Mountpoints are
// reported as the host sees them; usage is measured under the alternate
// root when one is configured.
func (c *Collector) readFilesystems(ctx context.Context) []measurement.Filesystem {
	partitions, usage := c.partitions, c.usage
	if partitions == nil {
		partitions = disk.PartitionsWithContext
	}
	if usage == nil {
		usage = disk.UsageWithContext
	}
	exclude := c.MountExclude
	if exclude == nil {
		exclude = DefaultMountExclusions
	}

	hctx := c.Resolver.HostEnv(ctx)

	parts, err := partitions(hctx, false)
	if err != nil {
		slog.Debug("failed to list partitions", slog.String("error", err.Error()))
		return []measurement.Filesystem{}
	}
	parts = measurement.FilterOut(parts, func(p disk.PartitionStat) string { return p.Mountpoint }, exclude)

	seen := make(map[string]struct{}, len(parts))
	out := make([]measurement.Filesystem, 0, len(parts))
	for _, p := range parts {
		if _, dup := seen[p.Device]; dup {
			continue
		}

		u, err := usage(hctx, c.Resolver.Path(p.Mountpoint))
		if err != nil {
			slog.Debug("failed to stat filesystem",
				slog.String("mountpoint", p.Mountpoint),
				slog.String("error", err.Error()))
			continue
		}
		seen[p.Device] = struct{}{}

		out = append(out, measurement.Filesystem{
			Device:      p.Device,
			Mountpoint:  p.Mountpoint,
			FSType:      p.Fstype,
			Total:       u.Total,
			Used:        u.Used,
			Free:        u.Free,
			UsedPercent: u.UsedPercent,
		})
	}
	return out
}
