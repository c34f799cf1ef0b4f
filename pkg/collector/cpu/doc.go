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

// Package cpu collects processor information.
//
// Sources, all read through a vfs.Resolver:
//
//   - /proc/cpuinfo: model, vendor, core and thread counts
//   - /proc/stat: utilization from two samples SampleInterval apart
//   - /proc/loadavg: 1, 5 and 15 minute load averages
//   - /sys/devices/system/cpu/cpuN/cpufreq: current, min and max frequency
//   - /sys/class/hwmon: package temperature from a known CPU sensor driver,
//     falling back to thermal_zone0
//
// /proc files are parsed with github.com/prometheus/procfs. Only a missing
// /proc/stat fails the collector; every other source is optional.
package cpu
