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

package format

import (
	"fmt"
	"path"
	"strings"

	"github.com/driftmon/driftmon/pkg/measurement"
)

const (
	secondsPerDay  = 86400
	secondsPerHour = 3600
	mbPerGB        = 1024
	separator      = " · "
)

// Uptime renders uptime as fractional days, e.g. "3.2d".
func Uptime(s *measurement.Snapshot) string {
	return fmt.Sprintf("%.1fd", s.UptimeDays())
}

// UptimeDetailed renders uptime as whole days and hours, e.g. "3d 2h".
func UptimeDetailed(s *measurement.Snapshot) string {
	if s == nil || s.UptimeSeconds <= 0 {
		return "0d 0h"
	}
	total := int64(s.UptimeSeconds)
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	return fmt.Sprintf("%dd %dh", days, hours)
}

// SwapUsed renders swap in MB below 1 GB and in GB otherwise.
func SwapUsed(s *measurement.Snapshot) string {
	if s == nil {
		return megabytes(0)
	}
	return megabytes(s.SwapUsedMB)
}

// FreeMemory renders free memory like SwapUsed.
func FreeMemory(s *measurement.Snapshot) string {
	if s == nil {
		return megabytes(0)
	}
	return megabytes(s.FreeMemoryMB)
}

func megabytes(mb int) string {
	if mb >= mbPerGB {
		return fmt.Sprintf("%.2f GB", float64(mb)/mbPerGB)
	}
	return fmt.Sprintf("%d MB", mb)
}

// LoadAverages renders the 1, 5 and 15 minute loads.
func LoadAverages(s *measurement.Snapshot) string {
	if s == nil {
		return "0.00 0.00 0.00"
	}
	return fmt.Sprintf("%.2f %.2f %.2f", s.Load.Load1, s.Load.Load5, s.Load.Load15)
}

// CPUBreakdown renders the user, system and idle split.
func CPUBreakdown(s *measurement.Snapshot) string {
	var user, system, idle float64
	if s != nil {
		user, system, idle = s.CPU.User, s.CPU.System, s.CPU.Idle
	}
	return fmt.Sprintf("User %.1f%%%sSystem %.1f%%%sIdle %.1f%%", user, separator, system, separator, idle)
}

// TopProcess renders the busiest process by its base name, or "None".
func TopProcess(s *measurement.Snapshot) string {
	if s == nil || s.TopProcess.Name == nil {
		return "None"
	}
	return fmt.Sprintf("%s %.0f%%", path.Base(*s.TopProcess.Name), s.TopProcess.CPUPercent)
}

// MemoryPressure renders the pressure level, Medium when unknown.
func MemoryPressure(s *measurement.Snapshot) string {
	if s == nil || !s.MemoryPressure.IsValid() {
		return "Medium"
	}
	return s.MemoryPressure.String()
}

// DiskFree renders free space and its share of the volume.
func DiskFree(s *measurement.Snapshot) string {
	var free, pct float64
	if s != nil {
		free, pct = s.Disk.FreeGB, s.Disk.FreePercent
	}
	return fmt.Sprintf("%.1f GB free (%.0f%%)", free, pct)
}

// Spotlight renders the indexing state, e.g.
// "Spotlight: Indexing (Heavy, 4 workers)".
func Spotlight(s *measurement.Snapshot) string {
	if s == nil || !s.Spotlight.IsIndexing {
		return "Spotlight: Idle"
	}

	details := []string{s.Spotlight.ActivityLevel.String()}
	switch s.Spotlight.WorkerCount {
	case 0:
	case 1:
		details = append(details, "1 worker")
	default:
		details = append(details, fmt.Sprintf("%d workers", s.Spotlight.WorkerCount))
	}
	if s.Spotlight.IndexedItemCount != nil {
		details = append(details, fmt.Sprintf("%d items", *s.Spotlight.IndexedItemCount))
	}
	return fmt.Sprintf("Spotlight: Indexing (%s)", strings.Join(details, ", "))
}

// AppActivity renders app counts, e.g. "12 apps (2 heavy)".
func AppActivity(s *measurement.Snapshot) string {
	var active, heavy int
	if s != nil {
		active, heavy = s.Apps.ActiveApps, s.Apps.HeavyApps
	}
	noun := "apps"
	if active == 1 {
		noun = "app"
	}
	return fmt.Sprintf("%d %s (%d heavy)", active, noun, heavy)
}
