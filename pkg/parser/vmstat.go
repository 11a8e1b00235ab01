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

package parser

import (
	"strings"
)

const (
	// VMStatPageSize is the page size used to convert vm_stat page counts.
	VMStatPageSize = 16384

	// SwapPageSize is the page size used for swap-in/swap-out accounting.
	SwapPageSize = 4096

	bytesPerMB = 1024 * 1024
	bytesPerGB = 1024 * 1024 * 1024

	labelPagesFree       = "Pages free:"
	labelPagesActive     = "Pages active:"
	labelPagesInactive   = "Pages inactive:"
	labelPagesWired      = "Pages wired down:"
	labelPagesCompressed = "Pages stored in compressor:"
	labelSwapins         = "Swapins:"
	labelSwapouts        = "Swapouts:"

	swapUsedToken = "used = "
)

// MemoryPressureLevel classifies current memory contention.
type MemoryPressureLevel string

const (
	MemoryPressureLow    MemoryPressureLevel = "Low"
	MemoryPressureMedium MemoryPressureLevel = "Medium"
	MemoryPressureHigh   MemoryPressureLevel = "High"
)

// String returns the display name of the level.
func (l MemoryPressureLevel) String() string {
	return string(l)
}

// IsValid reports whether l is one of the known levels.
func (l MemoryPressureLevel) IsValid() bool {
	switch l {
	case MemoryPressureLow, MemoryPressureMedium, MemoryPressureHigh:
		return true
	default:
		return false
	}
}

// ParseFreeMemoryMB converts the "Pages free:" count of vm_stat output into
// whole megabytes using 16 KiB pages. Returns 0 when the line is missing.
func ParseFreeMemoryMB(text string) int {
	pages, ok := labeledInt(text, labelPagesFree)
	if !ok || pages < 0 {
		return 0
	}
	return int(pages * VMStatPageSize / bytesPerMB)
}

// ParseSwapUsedGB estimates swap in use from the vm_stat swap counters as
// max(0, swapouts - swapins) 4 KiB pages, in GiB.
func ParseSwapUsedGB(text string) float64 {
	swapins, _ := labeledInt(text, labelSwapins)
	swapouts, _ := labeledInt(text, labelSwapouts)
	if swapouts <= swapins {
		return 0
	}
	return float64((swapouts-swapins)*SwapPageSize) / bytesPerGB
}

// ParseSwapUsageMB reads the used figure from sysctl vm.swapusage output:
//
//	total = 2048.00M  used = 256.00M  free = 1792.00M  (encrypted)
//
// An "M" suffix is megabytes and a "G" suffix gigabytes; the result is
// truncated to whole MB. Returns 0 when the token or unit is unrecognized.
func ParseSwapUsageMB(text string) int {
	_, after, found := strings.Cut(text, swapUsedToken)
	if !found {
		return 0
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return 0
	}

	used := fields[0]
	var mb float64
	switch {
	case strings.HasSuffix(used, "M"):
		v, ok := parseFloat(strings.TrimSuffix(used, "M"))
		if !ok {
			return 0
		}
		mb = v
	case strings.HasSuffix(used, "G"):
		v, ok := parseFloat(strings.TrimSuffix(used, "G"))
		if !ok {
			return 0
		}
		mb = v * 1024
	default:
		return 0
	}

	if mb < 0 {
		return 0
	}
	return int(mb)
}

// ParseCompressedPages returns the "Pages stored in compressor:" count.
func ParseCompressedPages(text string) int {
	v, ok := labeledInt(text, labelPagesCompressed)
	if !ok || v < 0 {
		return 0
	}
	return int(v)
}

// ParseMemoryPressure derives a pressure level from vm_stat page statistics.
//
// The total is free + active + inactive + wired + compressed pages. High means
// more than 90% used or more than 30% compressed; Medium means more than 75%
// used or more than 15% compressed. When no page counts can be read the result
// is Medium.
func ParseMemoryPressure(text string) MemoryPressureLevel {
	count := func(label string) int64 {
		v, ok := labeledInt(text, label)
		if !ok || v < 0 {
			return 0
		}
		return v
	}

	free := count(labelPagesFree)
	compressed := count(labelPagesCompressed)
	total := free + count(labelPagesActive) + count(labelPagesInactive) + count(labelPagesWired) + compressed
	if total == 0 {
		return MemoryPressureMedium
	}

	usedPercent := float64(total-free) / float64(total) * 100
	compressionRatio := float64(compressed) / float64(total)

	switch {
	case usedPercent > 90 || compressionRatio > 0.30:
		return MemoryPressureHigh
	case usedPercent > 75 || compressionRatio > 0.15:
		return MemoryPressureMedium
	default:
		return MemoryPressureLow
	}
}
