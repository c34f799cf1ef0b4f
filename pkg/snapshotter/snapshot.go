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
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/MalteKiefer/Status/pkg/collector"
	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/header"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/serializer"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NodeSnapshotter collects telemetry from the current host.
// Collectors run in parallel; a failing collector leaves its field nil
// without affecting the others.
type NodeSnapshotter struct {
	// Version is the producing binary's version.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is used by Measure. If nil, JSON is written to stdout.
	Serializer serializer.Serializer

	// RootPath is recorded in the snapshot metadata when set.
	RootPath string
}

type job struct {
	kind    measurement.Type
	c       collector.Collector
	timeout time.Duration
}

// Measure takes a snapshot and serializes it.
// Only serialization failures are returned.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap := n.Snapshot(ctx)

	out := n.Serializer
	if out == nil {
		out = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := out.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}
	return nil
}

// Snapshot runs every collector and assembles the result. It always returns
// a snapshot; collectors that fail, panic or time out leave their field nil.
// It is safe for concurrent use.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) *Snapshot {
	factory := n.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, FullAPIVersion, n.Version)
	snap.SetMetadata(header.MetadataID, uuid.NewString())
	snap.SetMetadata(header.MetadataRootPath, n.RootPath)

	jobs := []job{
		{measurement.TypeCPU, factory.CreateCPUCollector(), defaults.CollectorTimeout},
		{measurement.TypeMemory, factory.CreateMemoryCollector(), defaults.CollectorTimeout},
		{measurement.TypeStorage, factory.CreateStorageCollector(), defaults.CollectorTimeout},
		{measurement.TypeNetwork, factory.CreateNetworkCollector(), defaults.CollectorTimeout},
		{measurement.TypeHost, factory.CreateHostCollector(), defaults.CollectorTimeout},
		{measurement.TypeDocker, factory.CreateDockerCollector(), defaults.DockerCollectorTimeout},
	}

	slog.Debug("starting snapshot", slog.Int("collectors", len(jobs)))

	var mu sync.Mutex
	// A plain Group: no goroutine returns an error, so nothing cancels its siblings.
	var g errgroup.Group
	for _, j := range jobs {
		g.Go(func() error {
			s := run(ctx, j)
			if s == nil {
				return nil
			}
			mu.Lock()
			snap.set(s)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	snap.SetMetadata(header.MetadataSourceHost, sourceHost(snap))

	populated := snap.Populated()
	snapshotPopulatedFields.Set(float64(populated))
	if populated == len(jobs) {
		snapshotCollectionTotal.WithLabelValues("complete").Inc()
	} else {
		snapshotCollectionTotal.WithLabelValues("partial").Inc()
	}

	slog.Debug("snapshot complete",
		slog.Int("populated", populated),
		slog.Duration("duration", time.Since(start)))
	return snap
}

type result struct {
	summary  measurement.Summary
	err      error
	panicked bool
}

// run executes one collector under its own deadline and converts errors,
// panics and overruns into an absent result. Collect runs on its own
// goroutine so a collector that ignores ctx cannot hold the snapshot past
// the deadline; its late result is discarded.
func run(parent context.Context, j job) measurement.Summary {
	name := j.kind.String()
	start := time.Now()
	defer func() {
		snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	if j.c == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(parent, j.timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%v", r), panicked: true}
			}
		}()
		s, err := j.c.Collect(ctx)
		done <- result{summary: s, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		snapshotCollectorFailures.WithLabelValues(name).Inc()
		slog.Warn("collector exceeded its deadline, field omitted",
			slog.String("collector", name),
			slog.Duration("timeout", j.timeout),
			slog.String("error", ctx.Err().Error()))
		return nil
	}

	switch {
	case res.panicked:
		snapshotCollectorFailures.WithLabelValues(name).Inc()
		slog.Error("collector panicked, field omitted",
			slog.String("collector", name),
			slog.String("panic", res.err.Error()))
		return nil
	case res.err != nil:
		snapshotCollectorFailures.WithLabelValues(name).Inc()
		slog.Warn("collector failed, field omitted",
			slog.String("collector", name),
			slog.String("error", res.err.Error()))
		return nil
	case res.summary == nil:
		slog.Debug("collector reported no data", slog.String("collector", name))
	}
	return res.summary
}

func sourceHost(snap *Snapshot) string {
	if snap.Host != nil && snap.Host.Hostname != "" {
		return snap.Host.Hostname
	}
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}
