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

package measurement

import (
	"time"

	"github.com/driftmon/driftmon/pkg/parser"
)

const secondsPerDay = 86400

// Snapshot captures the host metrics of one sampling instant.
type Snapshot struct {
	// ID correlates log lines and reports of a single refresh.
	ID string `json:"id" yaml:"id"`

	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	UptimeSeconds float64   `json:"uptimeSeconds" yaml:"uptimeSeconds"`

	Load parser.LoadAverages `json:"load" yaml:"load"`

	// SwapUsedMB comes from sysctl vm.swapusage.
	SwapUsedMB      int                        `json:"swapUsedMB" yaml:"swapUsedMB"`
	FreeMemoryMB    int                        `json:"freeMemoryMB" yaml:"freeMemoryMB"`
	CompressedPages int                        `json:"compressedPages" yaml:"compressedPages"`
	MemoryPressure  parser.MemoryPressureLevel `json:"memoryPressure" yaml:"memoryPressure"`

	CPU        parser.CPUUsage   `json:"cpu" yaml:"cpu"`
	TopProcess parser.TopProcess `json:"topProcess" yaml:"topProcess"`

	Disk      parser.DiskInfo        `json:"disk" yaml:"disk"`
	Spotlight parser.SpotlightStatus `json:"spotlight" yaml:"spotlight"`
	Apps      parser.AppActivity     `json:"apps" yaml:"apps"`
}

// UptimeDays returns the uptime in fractional days.
func (s *Snapshot) UptimeDays() float64 {
	if s == nil || s.UptimeSeconds <= 0 {
		return 0
	}
	return s.UptimeSeconds / secondsPerDay
}

// SwapUsedGB returns the swap in use in gigabytes.
func (s *Snapshot) SwapUsedGB() float64 {
	if s == nil || s.SwapUsedMB <= 0 {
		return 0
	}
	return float64(s.SwapUsedMB) / 1024
}
