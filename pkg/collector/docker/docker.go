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

package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/measurement"

	"github.com/distribution/reference"
	"github.com/docker/go-units"
)

const (
	defaultBinary  = "docker"
	jsonLineFormat = "{{json .}}"
	percentZero    = "0%"
)

// Collector reports container runtime state by invoking the docker CLI.
// It never fails: a disabled or unreachable runtime yields a nil summary.
type Collector struct {
	// Enabled gates the collector. When false no command is run.
	Enabled bool

	// Runner executes the CLI. Defaults to an ExecRunner.
	Runner Runner

	// Binary is the CLI executable name or path. Defaults to "docker".
	Binary string
}

// psEntry is one line of `docker ps -a --format "{{json .}}"`.
type psEntry struct {
	ID        string `json:"ID"`
	Names     string `json:"Names"`
	Image     string `json:"Image"`
	Status    string `json:"Status"`
	State     string `json:"State"`
	Ports     string `json:"Ports"`
	CreatedAt string `json:"CreatedAt"`
}

// statsEntry is one line of `docker stats --no-stream --format "{{json .}}"`.
type statsEntry struct {
	ID       string `json:"ID"`
	Name     string `json:"Name"`
	CPUPerc  string `json:"CPUPerc"`
	MemUsage string `json:"MemUsage"`
	MemPerc  string `json:"MemPerc"`
	NetIO    string `json:"NetIO"`
	BlockIO  string `json:"BlockIO"`
}

// Collect checks the runtime, lists all containers, merges live statistics
// by container name and returns the aggregate.
func (c *Collector) Collect(ctx context.Context) (measurement.Summary, error) {
	if !c.Enabled {
		slog.Debug("docker collector disabled")
		return nil, nil
	}

	if !c.available(ctx) {
		return nil, nil
	}

	containers := c.containers(ctx)
	stats := c.stats(ctx)

	return summarize(merge(containers, stats)), nil
}

func (c *Collector) runner() Runner {
	if c.Runner == nil {
		return NewExecRunner()
	}
	return c.Runner
}

func (c *Collector) binary() string {
	if c.Binary == "" {
		return defaultBinary
	}
	return c.Binary
}

// available reports whether `docker info` succeeds within its timeout.
func (c *Collector) available(ctx context.Context) bool {
	if _, err := runWithTimeout(ctx, c.runner(), defaults.DockerInfoTimeout, c.binary(), "info"); err != nil {
		slog.Debug("docker runtime unavailable", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *Collector) containers(ctx context.Context) []psEntry {
	out, err := runWithTimeout(ctx, c.runner(), defaults.DockerListTimeout,
		c.binary(), "ps", "-a", "--format", jsonLineFormat)
	if err != nil {
		slog.Debug("docker container listing failed", slog.String("error", err.Error()))
		return []psEntry{}
	}
	return decodeLines[psEntry](out)
}

func (c *Collector) stats(ctx context.Context) []statsEntry {
	out, err := runWithTimeout(ctx, c.runner(), defaults.DockerStatsTimeout,
		c.binary(), "stats", "--no-stream", "--format", jsonLineFormat)
	if err != nil {
		slog.Debug("docker stats failed", slog.String("error", err.Error()))
		return []statsEntry{}
	}

	entries := decodeLines[statsEntry](out)
	for i := range entries {
		if entries[i].CPUPerc == "" {
			entries[i].CPUPerc = percentZero
		}
		if entries[i].MemPerc == "" {
			entries[i].MemPerc = percentZero
		}
	}
	return entries
}

// decodeLine decodes a single JSON object. The boolean is false for blank or
// malformed lines.
func decodeLine[T any](line []byte) (T, bool) {
	var v T
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return v, false
	}
	if err := json.Unmarshal(line, &v); err != nil {
		slog.Debug("skipping malformed docker output line", slog.String("error", err.Error()))
		return v, false
	}
	return v, true
}

// decodeLines decodes newline-delimited JSON, skipping lines that do not
// parse. Lines have no length limit: the output is already in memory.
func decodeLines[T any](out []byte) []T {
	result := make([]T, 0)
	for len(out) > 0 {
		var line []byte
		if i := bytes.IndexByte(out, '\n'); i >= 0 {
			line, out = out[:i], out[i+1:]
		} else {
			line, out = out, nil
		}
		if v, ok := decodeLine[T](line); ok {
			result = append(result, v)
		}
	}
	return result
}

// merge joins listing entries with stats entries on container name,
// preserving listing order.
func merge(containers []psEntry, stats []statsEntry) []measurement.Container {
	byName := make(map[string]statsEntry, len(stats))
	for _, s := range stats {
		byName[s.Name] = s
	}

	result := make([]measurement.Container, 0, len(containers))
	for _, p := range containers {
		c := measurement.Container{
			ID:      p.ID,
			Name:    p.Names,
			Image:   p.Image,
			Status:  p.Status,
			State:   p.State,
			Ports:   p.Ports,
			Created: p.CreatedAt,
		}
		c.ImageRepository, c.ImageTag = splitImage(p.Image)

		if s, ok := byName[p.Names]; ok {
			c.ContainerStats = parseStats(s)
		}
		result = append(result, c)
	}
	return result
}

func summarize(containers []measurement.Container) *measurement.Docker {
	running := 0
	for _, c := range containers {
		if c.State == "running" {
			running++
		}
	}
	return &measurement.Docker{
		Available:  true,
		Running:    running,
		Stopped:    len(containers) - running,
		Total:      len(containers),
		Containers: containers,
	}
}

func parseStats(s statsEntry) *measurement.ContainerStats {
	st := &measurement.ContainerStats{
		CPU:           s.CPUPerc,
		Memory:        s.MemUsage,
		MemoryPercent: s.MemPerc,
		NetIO:         s.NetIO,
		BlockIO:       s.BlockIO,
		CPUPercent:    parsePercent(s.CPUPerc),
	}
	st.MemoryUsageBytes, st.MemoryLimitBytes = parsePair(s.MemUsage, units.RAMInBytes)
	st.NetRxBytes, st.NetTxBytes = parsePair(s.NetIO, units.FromHumanSize)
	st.BlockReadBytes, st.BlockWriteBytes = parsePair(s.BlockIO, units.FromHumanSize)
	return st
}

func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePair parses "<a> / <b>" with the given size parser; unparseable halves are 0.
func parsePair(s string, parse func(string) (int64, error)) (int64, int64) {
	left, right, _ := strings.Cut(s, "/")
	a, err := parse(strings.TrimSpace(left))
	if err != nil {
		a = 0
	}
	b, err := parse(strings.TrimSpace(right))
	if err != nil {
		b = 0
	}
	return a, b
}

// splitImage returns the familiar repository and tag of an image reference.
// Image IDs and unparseable references yield empty strings.
func splitImage(image string) (string, string) {
	if image == "" || strings.HasPrefix(image, "sha256:") {
		return "", ""
	}
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return "", ""
	}
	named = reference.TagNameOnly(named)

	tag := ""
	if tagged, ok := named.(reference.Tagged); ok {
		tag = tagged.Tag()
	}
	return reference.FamiliarName(named), tag
}
