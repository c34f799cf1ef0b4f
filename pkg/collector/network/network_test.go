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

package network

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

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

const netDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:     100       1    0    0    0     0          0         0      100       1    0    0    0     0       0          0
  eth0:    1000      10    0    1    0     0          0         0     2000      20    0    0    0     0       0          0
 wlan0:       5       1    0    0    0     0          0         0        0       0    0    0    0     0       0          0
docker0:      0       0    0    0    0     0          0         0        0       0    0    0    0     0       0          0
veth1a2b3c: 999999    9    0    0    0     0          0         0        0       0    0    0    0     0       0          0
`

func fixture(t *testing.T) *vfs.Resolver {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"sys/class/net/lo/operstate":         "unknown\n",
		"sys/class/net/eth0/address":         "52:54:00:12:34:56\n",
		"sys/class/net/eth0/operstate":       "up\n",
		"sys/class/net/eth0/mtu":             "1500\n",
		"sys/class/net/eth0/speed":           "1000\n",
		"sys/class/net/wlan0/operstate":      "down\n",
		"sys/class/net/wlan0/speed":          "-1\n",
		"sys/class/net/docker0/operstate":    "up\n",
		"sys/class/net/veth1a2b3c/operstate": "up\n",
		"proc/net/dev":                       netDev,
	})
	return vfs.New(root)
}

func TestCollect(t *testing.T) {
	s, err := (&Collector{Resolver: fixture(t)}).Collect(context.Background())
	require.NoError(t, err)
	n, ok := s.(*measurement.Network)
	require.True(t, ok)

	require.Len(t, n.Interfaces, 2)
	eth0 := n.Interfaces[0]
	assert.Equal(t, "eth0", eth0.Name)
	assert.Equal(t, "52:54:00:12:34:56", eth0.MAC)
	assert.Equal(t, "up", eth0.State)
	assert.Equal(t, int64(1500), eth0.MTU)
	assert.Equal(t, int64(1000), eth0.SpeedMbps)
	assert.Equal(t, uint64(1000), eth0.RxBytes)
	assert.Equal(t, uint64(2000), eth0.TxBytes)
	assert.Equal(t, uint64(10), eth0.RxPackets)
	assert.Equal(t, uint64(1), eth0.RxDropped)
	assert.Zero(t, eth0.TxErrors)

	wlan0 := n.Interfaces[1]
	assert.Equal(t, "wlan0", wlan0.Name)
	assert.Equal(t, "down", wlan0.State)
	assert.Zero(t, wlan0.SpeedMbps, "negative speed is reported as 0")

	assert.Equal(t, uint64(1005), n.RxBytes)
	assert.Equal(t, uint64(2000), n.TxBytes)
}

func TestCollectCustomExclusions(t *testing.T) {
	s, err := (&Collector{Resolver: fixture(t), Exclude: []string{"wlan*"}}).Collect(context.Background())
	require.NoError(t, err)

	var names []string
	for _, i := range s.(*measurement.Network).Interfaces {
		names = append(names, i.Name)
	}
	assert.Equal(t, []string{"docker0", "eth0", "lo", "veth1a2b3c"}, names)
}

func TestCollectFilters(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{name: "default exclusions", want: []string{"eth0", "wlan0"}},
		{name: "include narrows", include: []string{"eth*"}, want: []string{"eth0"}},
		{name: "include after exclude", include: []string{"eth*", "docker*"}, want: []string{"eth0"}},
		{name: "include with empty exclusions", include: []string{"docker*", "lo"}, exclude: []string{}, want: []string{"docker0", "lo"}},
		{name: "include matches nothing", include: []string{"ib*"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{Resolver: fixture(t), Include: tt.include, Exclude: tt.exclude}
			s, err := c.Collect(context.Background())
			require.NoError(t, err)

			var names []string
			for _, i := range s.(*measurement.Network).Interfaces {
				names = append(names, i.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCollectPrefersHostNamespaceCounters(t *testing.T) {
	r := fixture(t)
	writeTree(t, r.Root(), map[string]string{
		"proc/1/net/dev": `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
  eth0:    7777      77    1    0    0     0          0         0     8888      88    2    3    0     0       0          0
`,
	})

	s, err := (&Collector{Resolver: r}).Collect(context.Background())
	require.NoError(t, err)
	n := s.(*measurement.Network)

	require.Len(t, n.Interfaces, 2)
	eth0 := n.Interfaces[0]
	assert.Equal(t, uint64(7777), eth0.RxBytes)
	assert.Equal(t, uint64(8888), eth0.TxBytes)
	assert.Equal(t, uint64(1), eth0.RxErrors)
	assert.Equal(t, uint64(3), eth0.TxDropped)
	assert.Zero(t, n.Interfaces[1].RxBytes, "interfaces absent from net/dev keep zero counters")
	assert.Equal(t, uint64(7777), n.RxBytes)
}

func TestCollectWithoutCounters(t *testing.T) {
	c := &Collector{Resolver: fixture(t), procPath: filepath.Join(t.TempDir(), "missing")}

	s, err := c.Collect(context.Background())
	require.NoError(t, err)
	n := s.(*measurement.Network)
	require.Len(t, n.Interfaces, 2)
	assert.Equal(t, int64(1500), n.Interfaces[0].MTU)
	assert.Zero(t, n.RxBytes)
	assert.Zero(t, n.TxBytes)
}

func TestCollectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Collector{Resolver: fixture(t)}).Collect(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
}

func TestCollectMissingClassDirectory(t *testing.T) {
	tests := []struct {
		name    string
		sysPath func(t *testing.T) string
	}{
		{name: "missing sysfs", sysPath: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") }},
		{name: "sysfs without net class", sysPath: func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{Resolver: vfs.New(t.TempDir()), sysPath: tt.sysPath(t)}

			_, err := c.Collect(context.Background())
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
		})
	}
}
