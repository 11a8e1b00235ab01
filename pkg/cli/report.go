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

package cli

import (
	"time"

	"github.com/driftmon/driftmon/pkg/drift"
	"github.com/driftmon/driftmon/pkg/format"
	"github.com/driftmon/driftmon/pkg/header"
	"github.com/driftmon/driftmon/pkg/measurement"
)

// SnapshotReport is the document written by the snapshot command and read
// back by score --snapshot.
type SnapshotReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Snapshot *measurement.Snapshot `json:"snapshot" yaml:"snapshot"`
}

func newSnapshotReport(s *measurement.Snapshot, at time.Time) *SnapshotReport {
	r := &SnapshotReport{Snapshot: s}
	r.Init(header.KindSnapshot, header.APIVersion, version, at)
	return r
}

// Summary holds the display strings of a snapshot.
type Summary struct {
	Uptime         string `json:"uptime" yaml:"uptime"`
	Load           string `json:"load" yaml:"load"`
	SwapUsed       string `json:"swapUsed" yaml:"swapUsed"`
	FreeMemory     string `json:"freeMemory" yaml:"freeMemory"`
	MemoryPressure string `json:"memoryPressure" yaml:"memoryPressure"`
	CPU            string `json:"cpu" yaml:"cpu"`
	TopProcess     string `json:"topProcess" yaml:"topProcess"`
	Disk           string `json:"disk" yaml:"disk"`
	Spotlight      string `json:"spotlight" yaml:"spotlight"`
	Apps           string `json:"apps" yaml:"apps"`
}

// DriftReport is the scored view of one snapshot.
type DriftReport struct {
	header.Header `json:",inline" yaml:",inline"`

	SnapshotID  string                `json:"snapshotId" yaml:"snapshotId"`
	Score       int                   `json:"score" yaml:"score"`
	Status      drift.Status          `json:"status" yaml:"status"`
	Label       string                `json:"label" yaml:"label"`
	Explanation string                `json:"explanation" yaml:"explanation"`
	Components  drift.ComponentScores `json:"components" yaml:"components"`
	Stars       string                `json:"stars" yaml:"stars"`
	Health      drift.HealthStatus    `json:"health" yaml:"health"`
	HealthLabel string                `json:"healthLabel" yaml:"healthLabel"`
	Summary     Summary               `json:"summary" yaml:"summary"`
}

func newDriftReport(s *measurement.Snapshot, at time.Time) *DriftReport {
	score := drift.Calculate(*s)
	health := drift.Health(*s)

	r := &DriftReport{
		SnapshotID:  s.ID,
		Score:       score.Value,
		Status:      score.Status,
		Label:       score.Status.Label(),
		Explanation: score.Status.Explanation(),
		Components:  drift.Components(*s),
		Stars:       drift.StarBreakdown(*s),
		Health:      health,
		HealthLabel: health.Label(),
		Summary: Summary{
			Uptime:         format.UptimeDetailed(s),
			Load:           format.LoadAverages(s),
			SwapUsed:       format.SwapUsed(s),
			FreeMemory:     format.FreeMemory(s),
			MemoryPressure: format.MemoryPressure(s),
			CPU:            format.CPUBreakdown(s),
			TopProcess:     format.TopProcess(s),
			Disk:           format.DiskFree(s),
			Spotlight:      format.Spotlight(s),
			Apps:           format.AppActivity(s),
		},
	}
	r.Init(header.KindDriftReport, header.APIVersion, version, at)
	return r
}
