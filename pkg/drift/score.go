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

package drift

import (
	"math"

	"github.com/driftmon/driftmon/pkg/measurement"
	"github.com/driftmon/driftmon/pkg/parser"
)

const (
	// MaxComponentScore is the best score a single component can reach.
	MaxComponentScore = 20.0

	// MaxScore is the best overall Drift Score.
	MaxScore = 100

	stableThreshold    = 80
	degradingThreshold = 50

	memorySwapPenaltyMB = 2048
)

// Status is the coarse tier derived from a score.
type Status string

const (
	StatusStable       Status = "Stable"
	StatusDegrading    Status = "Degrading"
	StatusNeedsRestart Status = "NeedsRestart"
)

// String returns the serialized form of the status.
func (s Status) String() string {
	return string(s)
}

// Label returns the human readable name.
func (s Status) Label() string {
	switch s {
	case StatusStable:
		return "Stable"
	case StatusDegrading:
		return "Degrading"
	case StatusNeedsRestart:
		return "Needs Restart"
	default:
		return string(s)
	}
}

// Explanation returns a one-sentence description of the tier.
func (s Status) Explanation() string {
	switch s {
	case StatusStable:
		return "System is healthy."
	case StatusDegrading:
		return "System is under load; monitor and consider restart."
	case StatusNeedsRestart:
		return "Restart recommended to restore responsiveness."
	default:
		return ""
	}
}

// StatusFor maps a score to its tier.
func StatusFor(score int) Status {
	switch {
	case score >= stableThreshold:
		return StatusStable
	case score >= degradingThreshold:
		return StatusDegrading
	default:
		return StatusNeedsRestart
	}
}

// Score is the Drift Score of one snapshot.
type Score struct {
	Value  int    `json:"score" yaml:"score"`
	Status Status `json:"status" yaml:"status"`
}

// Calculate computes the Drift Score of s.
func Calculate(s measurement.Snapshot) Score {
	total := Components(s).Total()
	value := int(math.Round(total))
	value = min(max(value, 0), MaxScore)
	return Score{Value: value, Status: StatusFor(value)}
}

// ComponentScores holds the five component scores of a snapshot.
type ComponentScores struct {
	Memory   float64 `json:"memory" yaml:"memory"`
	Swap     float64 `json:"swap" yaml:"swap"`
	CPU      float64 `json:"cpu" yaml:"cpu"`
	Disk     float64 `json:"disk" yaml:"disk"`
	Indexing float64 `json:"indexing" yaml:"indexing"`
}

// Total is the unrounded sum of all components.
func (c ComponentScores) Total() float64 {
	return c.Memory + c.Swap + c.CPU + c.Disk + c.Indexing
}

// Component is a named component score.
type Component struct {
	Name  string
	Score float64
}

// Named returns the components in display order.
func (c ComponentScores) Named() []Component {
	return []Component{
		{Name: "Memory", Score: c.Memory},
		{Name: "Swap", Score: c.Swap},
		{Name: "CPU", Score: c.CPU},
		{Name: "Disk", Score: c.Disk},
		{Name: "Indexing", Score: c.Indexing},
	}
}

// Components scores each component of s.
func Components(s measurement.Snapshot) ComponentScores {
	return ComponentScores{
		Memory:   MemoryScore(s.MemoryPressure, s.SwapUsedMB),
		Swap:     SwapScore(s.SwapUsedMB),
		CPU:      CPUScore(s.CPU.Idle),
		Disk:     DiskScore(s.Disk.FreePercent),
		Indexing: IndexingScore(s.Spotlight.IsIndexing, s.Spotlight.DurationMinutes),
	}
}

// MemoryScore deducts 5 for medium and 15 for high pressure, and another 5
// when more than 2 GB of swap is in use.
func MemoryScore(pressure parser.MemoryPressureLevel, swapUsedMB int) float64 {
	score := MaxComponentScore
	switch pressure {
	case parser.MemoryPressureMedium:
		score -= 5
	case parser.MemoryPressureHigh:
		score -= 15
	}
	if swapUsedMB > memorySwapPenaltyMB {
		score -= 5
	}
	return max(score, 0)
}

// SwapScore rewards low swap usage.
func SwapScore(swapUsedMB int) float64 {
	switch {
	case swapUsedMB <= 0:
		return 20
	case swapUsedMB < 512:
		return 18
	case swapUsedMB < 1024:
		return 15
	case swapUsedMB < 2048:
		return 10
	case swapUsedMB < 3072:
		return 5
	default:
		return 0
	}
}

// CPUScore rewards idle CPU.
func CPUScore(idlePercent float64) float64 {
	switch {
	case idlePercent >= 70:
		return 20
	case idlePercent >= 50:
		return 15
	case idlePercent >= 30:
		return 10
	case idlePercent >= 20:
		return 5
	default:
		return 0
	}
}

// DiskScore rewards free space on the root volume.
func DiskScore(freePercent float64) float64 {
	switch {
	case freePercent >= 20:
		return 20
	case freePercent >= 15:
		return 18
	case freePercent >= 10:
		return 12
	case freePercent >= 5:
		return 5
	default:
		return 0
	}
}

// IndexingScore is full when Spotlight is idle. While indexing it decays
// with the indexing duration; an unknown duration counts as 0 minutes.
func IndexingScore(isIndexing bool, durationMinutes *int) float64 {
	if !isIndexing {
		return 20
	}
	d := 0
	if durationMinutes != nil {
		d = *durationMinutes
	}
	switch {
	case d < 10:
		return 18
	case d < 30:
		return 12
	case d < 60:
		return 8
	default:
		return 4
	}
}
