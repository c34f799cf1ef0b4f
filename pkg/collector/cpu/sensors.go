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
	"slices"
	"strings"

	"github.com/MalteKiefer/Status/pkg/collector/file"
	"github.com/MalteKiefer/Status/pkg/measurement"
)

const (
	hwmonPath       = "/sys/class/hwmon"
	thermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
	cpuDevicesPath  = "/sys/devices/system/cpu"
)

// cpuSensors are hwmon driver names that report processor temperature.
var cpuSensors = []string{"k10temp", "coretemp", "zenpower", "cpu_thermal", "cpu-thermal", "soc_thermal"}

// preferredLabels select the package-level reading over per-core ones.
var preferredLabels = []string{"Tctl", "Tdie", "Package id 0"}

// readTemperature returns the CPU temperature in degrees Celsius, or nil.
func (c *Collector) readTemperature() *float64 {
	r := c.Resolver
	for _, dir := range r.Ls(hwmonPath) {
		if !slices.Contains(cpuSensors, r.Get(dir+"/name", "")) {
			continue
		}
		if v, ok := c.hwmonReading(dir); ok {
			return &v
		}
	}

	if raw := r.GetInt(thermalZonePath, 0); raw != 0 {
		v := file.TempVal(float64(raw))
		return &v
	}
	return nil
}

// hwmonReading picks the input whose label is preferred, else temp1_input.
func (c *Collector) hwmonReading(dir string) (float64, bool) {
	r := c.Resolver
	for _, label := range r.LsGlob(dir, "temp*_label") {
		name := r.Get(label, "")
		if !slices.Contains(preferredLabels, name) {
			continue
		}
		input := strings.TrimSuffix(label, "_label") + "_input"
		if raw := r.GetInt(input, 0); raw != 0 {
			return file.TempVal(float64(raw)), true
		}
	}

	if raw := r.GetInt(dir+"/temp1_input", 0); raw != 0 {
		return file.TempVal(float64(raw)), true
	}
	return 0, false
}

// readFrequency reads cpufreq for every logical CPU. kHz values are
// converted to MHz. Returns nil when no CPU exposes cpufreq.
func (c *Collector) readFrequency() *measurement.Frequency {
	r := c.Resolver
	cpus := r.LsGlob(cpuDevicesPath, "cpu[0-9]*")

	current := make([]float64, 0, len(cpus))
	for _, p := range cpus {
		if khz := r.GetInt(p+"/cpufreq/scaling_cur_freq", 0); khz > 0 {
			current = append(current, float64(khz)/1000)
		}
	}
	if len(current) == 0 {
		return nil
	}

	f := &measurement.Frequency{Current: current}
	for _, p := range cpus {
		minKHz := r.GetInt(p+"/cpufreq/cpuinfo_min_freq", 0)
		maxKHz := r.GetInt(p+"/cpufreq/cpuinfo_max_freq", 0)
		if maxKHz > 0 {
			f.Min = float64(minKHz) / 1000
			f.Max = float64(maxKHz) / 1000
			break
		}
	}
	return f
}
