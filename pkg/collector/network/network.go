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

// Package network collects interface state from /sys/class/net and traffic
// counters from /proc/net/dev.
package network

import (
	"context"
	"log/slog"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"

	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

// DefaultExclusions drops loopback and the virtual links created by
// container runtimes and libvirt.
var DefaultExclusions = []string{"lo", "veth*", "docker*", "br-*", "virbr*"}

// Collector enumerates network interfaces.
type Collector struct {
	Resolver *vfs.Resolver

	// Include restricts collection to matching interface names. Nil means all.
	Include []string

	// Exclude lists interface name patterns to skip. Nil means DefaultExclusions.
	Exclude []string

	sysPath  string
	procPath string
}

// Collect reads every selected interface. It fails only when the interface
// class directory itself cannot be listed. Missing counters read as zero.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "network collection canceled", err)
	}

	sysPath := c.sysPath
	if sysPath == "" {
		sysPath = c.Resolver.Path("/sys")
	}

	sfs, err := sysfs.NewFS(sysPath)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "sysfs unavailable", err,
			map[string]any{"path": sysPath})
	}
	devices, err := sfs.NetClassDevices()
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "network class directory unavailable", err,
			map[string]any{"path": sysPath})
	}

	exclude := c.Exclude
	if exclude == nil {
		exclude = DefaultExclusions
	}
	devices = measurement.FilterOut(devices, identity, exclude)
	if c.Include != nil {
		devices = measurement.FilterIn(devices, identity, c.Include)
	}

	counters := c.counters()

	n := &measurement.Network{Interfaces: make([]measurement.Interface, 0, len(devices))}
	for _, name := range devices {
		iface := measurement.Interface{Name: name, State: "unknown"}

		class, err := sfs.NetClassByIface(name)
		if err != nil {
			slog.Debug("skipping unreadable interface attributes",
				slog.String("interface", name),
				slog.String("error", err.Error()))
		} else {
			applyClass(&iface, class)
		}

		if line, ok := counters[name]; ok {
			applyCounters(&iface, line)
		}

		n.RxBytes += iface.RxBytes
		n.TxBytes += iface.TxBytes
		n.Interfaces = append(n.Interfaces, iface)
	}

	slog.Debug("collected network interfaces", slog.Int("count", len(n.Interfaces)))
	return n, nil
}

// counters reads PID 1's net/dev so a host /proc mounted into a container
// reports the host namespace. It falls back to /proc/net/dev.
func (c *Collector) counters() procfs.NetDev {
	procPath := c.procPath
	if procPath == "" {
		procPath = c.Resolver.Path("/proc")
	}

	pfs, err := procfs.NewFS(procPath)
	if err != nil {
		slog.Debug("procfs unavailable, interface counters omitted", slog.String("error", err.Error()))
		return nil
	}

	if p, err := pfs.Proc(1); err == nil {
		if nd, err := p.NetDev(); err == nil {
			return nd
		}
	}

	nd, err := pfs.NetDev()
	if err != nil {
		slog.Debug("net/dev unavailable, interface counters omitted", slog.String("error", err.Error()))
		return nil
	}
	return nd
}

func applyClass(iface *measurement.Interface, class *sysfs.NetClassIface) {
	iface.MAC = class.Address
	if class.OperState != "" {
		iface.State = class.OperState
	}
	iface.MTU = deref(class.MTU)
	iface.SpeedMbps = max(deref(class.Speed), 0)
}

func applyCounters(iface *measurement.Interface, line procfs.NetDevLine) {
	iface.RxBytes = line.RxBytes
	iface.TxBytes = line.TxBytes
	iface.RxPackets = line.RxPackets
	iface.TxPackets = line.TxPackets
	iface.RxErrors = line.RxErrors
	iface.TxErrors = line.TxErrors
	iface.RxDropped = line.RxDropped
	iface.TxDropped = line.TxDropped
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func identity(s string) string { return s }
