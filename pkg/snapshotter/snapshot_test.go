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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MalteKiefer/Status/pkg/collector"
	"github.com/MalteKiefer/Status/pkg/header"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/serializer"
)

type stubCollector struct {
	summary measurement.Summary
	err     error
	panics  bool
	block   bool
	delay   time.Duration
}

func (s *stubCollector) Collect(ctx context.Context) (measurement.Summary, error) {
	if s.panics {
		panic("boom")
	}
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.summary, s.err
}

type stubFactory struct {
	cpu, memory, storage, network, host, docker collector.Collector
}

func (f *stubFactory) CreateCPUCollector() collector.Collector     { return f.cpu }
func (f *stubFactory) CreateMemoryCollector() collector.Collector  { return f.memory }
func (f *stubFactory) CreateStorageCollector() collector.Collector { return f.storage }
func (f *stubFactory) CreateNetworkCollector() collector.Collector { return f.network }
func (f *stubFactory) CreateHostCollector() collector.Collector    { return f.host }
func (f *stubFactory) CreateDockerCollector() collector.Collector  { return f.docker }

func healthyFactory() *stubFactory {
	return &stubFactory{
		cpu:     &stubCollector{summary: &measurement.CPU{Model: "test cpu", Cores: 4}},
		memory:  &stubCollector{summary: &measurement.Memory{Total: 1024}},
		storage: &stubCollector{summary: &measurement.Storage{}},
		network: &stubCollector{summary: &measurement.Network{}},
		host:    &stubCollector{summary: &measurement.Host{Hostname: "node-1"}},
		docker:  &stubCollector{summary: &measurement.Docker{Available: true}},
	}
}

type captureSerializer struct {
	got any
	err error
}

func (c *captureSerializer) Serialize(_ context.Context, v any) error {
	c.got = v
	return c.err
}

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot()
	if snap == nil {
		t.Fatal("NewSnapshot() returned nil")
	}
	if snap.Populated() != 0 {
		t.Errorf("Populated() = %d, want 0", snap.Populated())
	}
}

func TestSnapshot_AllCollectorsSucceed(t *testing.T) {
	n := &NodeSnapshotter{Version: "1.0.0", Factory: healthyFactory(), RootPath: "/host"}

	snap := n.Snapshot(context.Background())

	if snap.Populated() != 6 {
		t.Errorf("Populated() = %d, want 6", snap.Populated())
	}
	if snap.Kind != header.KindSnapshot {
		t.Errorf("Kind = %s, want %s", snap.Kind, header.KindSnapshot)
	}
	if snap.APIVersion != FullAPIVersion {
		t.Errorf("APIVersion = %s, want %s", snap.APIVersion, FullAPIVersion)
	}
	if snap.CPU.Model != "test cpu" {
		t.Errorf("CPU.Model = %q", snap.CPU.Model)
	}

	for key, want := range map[string]string{
		header.MetadataVersion:    "1.0.0",
		header.MetadataSourceHost: "node-1",
		header.MetadataRootPath:   "/host",
	} {
		if got := snap.GetMetadata()[key]; got != want {
			t.Errorf("metadata %s = %q, want %q", key, got, want)
		}
	}
	if snap.GetMetadata()[header.MetadataID] == "" {
		t.Error("expected snapshot id")
	}
	if snap.GetMetadata()[header.MetadataTimestamp] == "" {
		t.Error("expected timestamp")
	}
}

func TestSnapshot_FailureIsolation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *stubFactory)
		check  func(t *testing.T, s *Snapshot)
	}{
		{
			name: "error leaves field nil",
			mutate: func(f *stubFactory) {
				f.memory = &stubCollector{err: errors.New("meminfo unreadable")}
			},
			check: func(t *testing.T, s *Snapshot) {
				if s.Memory != nil {
					t.Error("expected memory to be nil")
				}
			},
		},
		{
			name: "panic leaves field nil",
			mutate: func(f *stubFactory) {
				f.storage = &stubCollector{panics: true}
			},
			check: func(t *testing.T, s *Snapshot) {
				if s.Storage != nil {
					t.Error("expected storage to be nil")
				}
			},
		},
		{
			name: "absent docker",
			mutate: func(f *stubFactory) {
				f.docker = &stubCollector{}
			},
			check: func(t *testing.T, s *Snapshot) {
				if s.Docker != nil {
					t.Error("expected docker to be nil")
				}
			},
		},
		{
			name: "nil collector",
			mutate: func(f *stubFactory) {
				f.network = nil
			},
			check: func(t *testing.T, s *Snapshot) {
				if s.Network != nil {
					t.Error("expected network to be nil")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFactory()
			tt.mutate(f)

			snap := (&NodeSnapshotter{Factory: f}).Snapshot(context.Background())

			tt.check(t, snap)
			if snap.Populated() != 5 {
				t.Errorf("Populated() = %d, want 5", snap.Populated())
			}
			if snap.CPU == nil || snap.Host == nil {
				t.Error("unaffected collectors must still be populated")
			}
		})
	}
}

func TestSnapshot_ParentCanceled(t *testing.T) {
	f := healthyFactory()
	f.docker = &stubCollector{block: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap := (&NodeSnapshotter{Factory: f}).Snapshot(ctx)
	if snap.Docker != nil {
		t.Error("expected docker to be nil after cancellation")
	}
}

func TestSnapshot_DeadlineHoldsForUncooperativeCollector(t *testing.T) {
	f := healthyFactory()
	f.network = &stubCollector{summary: &measurement.Network{}, delay: 2 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	snap := (&NodeSnapshotter{Factory: f}).Snapshot(ctx)
	elapsed := time.Since(start)

	if elapsed >= time.Second {
		t.Errorf("Snapshot took %s, expected it to stop at the deadline", elapsed)
	}
	if snap.Network != nil {
		t.Error("expected network to be absent after its deadline")
	}
	if snap.CPU == nil || snap.Memory == nil || snap.Host == nil {
		t.Error("expected the other collectors to report")
	}
}

func TestSnapshot_AbsentFieldsSerializeAsNull(t *testing.T) {
	f := healthyFactory()
	f.docker = &stubCollector{}

	var buf bytes.Buffer
	n := &NodeSnapshotter{
		Factory:    f,
		Serializer: serializer.NewWriter(serializer.FormatJSON, &buf),
	}
	if err := n.Measure(context.Background()); err != nil {
		t.Fatalf("Measure() error = %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"kind", "apiVersion", "metadata", "cpu", "memory", "storage", "network", "host", "docker"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if string(doc["docker"]) != "null" {
		t.Errorf("docker = %s, want null", doc["docker"])
	}
}

func TestMeasure_SerializerError(t *testing.T) {
	s := &captureSerializer{err: errors.New("disk full")}
	n := &NodeSnapshotter{Factory: healthyFactory(), Serializer: s}

	if err := n.Measure(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := s.got.(*Snapshot); !ok {
		t.Errorf("serializer received %T, want *Snapshot", s.got)
	}
}

func TestNodeSnapshotter_DefaultFactory(t *testing.T) {
	if testing.Short() {
		t.Skip("reads the host")
	}

	snap := (&NodeSnapshotter{}).Snapshot(context.Background())
	if snap.Memory == nil {
		t.Error("expected memory from the host")
	}
}
