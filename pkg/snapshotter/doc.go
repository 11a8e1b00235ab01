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

// Package snapshotter samples the local macOS host and keeps the current
// measurement.Snapshot.
//
// # Assembler
//
// The Assembler runs each diagnostic command of a Sources table once per
// refresh, feeds the output to the parsers in pkg/parser and swaps the new
// snapshot in atomically. Refreshes are serialized; readers see either the
// previous snapshot or the new one, never a partial one.
//
//	a := snapshotter.NewAssembler(runner.NewExec())
//	snap, err := a.Refresh(ctx)
//	if err != nil {
//	    return err // only on context cancellation
//	}
//	score := a.Score()
//
// Commands that fail or are missing produce empty output, which the parsers
// turn into their documented defaults. A host without Spotlight therefore
// reports idle indexing rather than an error.
//
// The indexed item count is expensive to query and is memoized by a
// parser.ItemCountCache for defaults.ItemCountCacheTTL.
//
// # Monitor
//
// Monitor drives the Assembler on a fixed cadence (defaults.RefreshInterval)
// and hands every snapshot with its score to an OnRefresh callback.
//
//	m := &snapshotter.Monitor{
//	    Assembler: a,
//	    OnRefresh: func(s *measurement.Snapshot, d drift.Score) {
//	        slog.Info("refreshed", "score", d.Value)
//	    },
//	}
//	err := m.Run(ctx)
//
// # Metrics
//
// Refresh and per-source durations, refresh outcomes and the latest score
// and component scores are exported through the default Prometheus
// registry under the driftmon_ prefix.
package snapshotter
