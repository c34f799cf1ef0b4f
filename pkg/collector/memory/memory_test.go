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

package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MalteKiefer/Status/pkg/errors"
	"github.com/MalteKiefer/Status/pkg/measurement"
	"github.com/MalteKiefer/Status/pkg/vfs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfo = `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:   12000000 kB
Buffers:          500000 kB
Cached:          6000000 kB
SwapCached:         1000 kB
SwapTotal:       4000000 kB
SwapFree:        3000000 kB
HugePages_Total:       0
`

func rootWith(t *testing.T, content string) *vfs.Resolver {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "proc", "meminfo"), []byte(content), 0o600))
	return vfs.New(root)
}

func TestCollect(t *testing.T) {
	c := &Collector{Resolver: rootWith(t, meminfo)}

	s, err := c.Collect(context.Background())
	require.NoError(t, err)
	m, ok := s.(*measurement.Memory)
	require.True(t, ok)

	assert.Equal(t, uint64(16000000*1024), m.Total)
	assert.Equal(t, uint64(2000000*1024), m.Free)
	assert.Equal(t, uint64(12000000*1024), m.Available)
	assert.Equal(t, uint64(500000*1024), m.Buffers)
	assert.Equal(t, uint64(6000000*1024), m.Cached)
	assert.Equal(t, uint64(4000000*1024), m.Used)
	assert.InDelta(t, 25.0, m.UsedPercent, 0.01)

	assert.Equal(t, uint64(4000000*1024), m.Swap.Total)
	assert.Equal(t, uint64(1000000*1024), m.Swap.Used)
	assert.InDelta(t, 25.0, m.Swap.UsedPercent, 0.01)
}

func TestCollectWithoutMemAvailable(t *testing.T) {
	c := &Collector{Resolver: rootWith(t, "MemTotal: 1000 kB\nMemFree: 100 kB\nBuffers: 100 kB\nCached: 200 kB\n")}

	s, err := c.Collect(context.Background())
	require.NoError(t, err)
	m := s.(*measurement.Memory)

	assert.Equal(t, uint64(400*1024), m.Available)
	assert.Equal(t, uint64(600*1024), m.Used)
	assert.Zero(t, m.Swap.Total)
	assert.Zero(t, m.Swap.UsedPercent)
}

func TestCollectMissingMeminfo(t *testing.T) {
	c := &Collector{Resolver: vfs.New(t.TempDir()), path: "/proc/status-test-missing-meminfo"}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestCollectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Collector{Resolver: rootWith(t, meminfo)}).Collect(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
}

func TestKB(t *testing.T) {
	assert.Equal(t, uint64(2048), kb("MemFree: 2 kB", "MemFree:"))
	assert.Zero(t, kb("MemFree: 2 kB", "MemTotal:"))
	assert.Zero(t, kb("MemFree: none", "MemFree:"))
}
