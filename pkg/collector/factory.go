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

package collector

import (
	"time"

	"github.com/MalteKiefer/Status/pkg/collector/cpu"
	"github.com/MalteKiefer/Status/pkg/collector/docker"
	"github.com/MalteKiefer/Status/pkg/collector/host"
	"github.com/MalteKiefer/Status/pkg/collector/memory"
	"github.com/MalteKiefer/Status/pkg/collector/network"
	"github.com/MalteKiefer/Status/pkg/collector/storage"
	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/vfs"
)

// Factory creates collectors. It exists so the snapshotter can be tested
// with stub collectors.
type Factory interface {
	CreateCPUCollector() Collector
	CreateMemoryCollector() Collector
	CreateStorageCollector() Collector
	CreateNetworkCollector() Collector
	CreateHostCollector() Collector
	CreateDockerCollector() Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithResolver sets the path resolver shared by every filesystem-backed collector.
func WithResolver(r *vfs.Resolver) Option {
	return func(f *DefaultFactory) {
		f.Resolver = r
	}
}

// WithDockerEnabled toggles the container collector.
func WithDockerEnabled(enabled bool) Option {
	return func(f *DefaultFactory) {
		f.DockerEnabled = enabled
	}
}

// WithDockerRunner replaces the process runner used for the docker CLI.
func WithDockerRunner(r docker.Runner) Option {
	return func(f *DefaultFactory) {
		f.DockerRunner = r
	}
}

// WithCPUSampleInterval sets the delay between the two utilization samples.
func WithCPUSampleInterval(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CPUSampleInterval = d
	}
}

// WithNetworkInclude limits the network collector to interfaces matching
// one of the patterns. Nil or empty collects every non-excluded interface.
func WithNetworkInclude(patterns []string) Option {
	return func(f *DefaultFactory) {
		f.NetworkInclude = patterns
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Resolver          *vfs.Resolver
	DockerEnabled     bool
	DockerRunner      docker.Runner
	CPUSampleInterval time.Duration
	NetworkInclude    []string
}

// NewDefaultFactory creates a factory with docker enabled and the default
// CPU sample interval.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		DockerEnabled:     true,
		CPUSampleInterval: defaults.CPUSampleInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *DefaultFactory) CreateCPUCollector() Collector {
	return &cpu.Collector{Resolver: f.Resolver, SampleInterval: f.CPUSampleInterval}
}

func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &memory.Collector{Resolver: f.Resolver}
}

func (f *DefaultFactory) CreateStorageCollector() Collector {
	return &storage.Collector{Resolver: f.Resolver}
}

func (f *DefaultFactory) CreateNetworkCollector() Collector {
	c := &network.Collector{Resolver: f.Resolver}
	if len(f.NetworkInclude) > 0 {
		c.Include = f.NetworkInclude
	}
	return c
}

func (f *DefaultFactory) CreateHostCollector() Collector {
	return &host.Collector{Resolver: f.Resolver}
}

// CreateDockerCollector returns a collector that yields no summary when
// docker is disabled.
func (f *DefaultFactory) CreateDockerCollector() Collector {
	return &docker.Collector{Enabled: f.DockerEnabled, Runner: f.DockerRunner}
}
