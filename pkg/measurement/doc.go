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

// Package measurement defines the Snapshot data model: one atomically
// captured set of host metrics.
//
// A Snapshot is built from parser output by the snapshotter package and is
// never modified afterwards. Percentages are already clamped to [0, 100],
// counts are never negative, and optional readings are nil when they could
// not be obtained.
//
//	snap := measurement.Snapshot{
//	    Timestamp:     time.Now(),
//	    UptimeSeconds: 3 * 86400,
//	    MemoryPressure: parser.MemoryPressureLow,
//	}
//	fmt.Println(snap.UptimeDays()) // 3
package measurement
