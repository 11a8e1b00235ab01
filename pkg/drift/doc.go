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

// Package drift turns a measurement.Snapshot into a Drift Score: a 0-100
// health indicator built from five equally weighted components.
//
// Each component scores 0-20:
//
//	Memory    pressure level, with a penalty for swap above 2 GB
//	Swap      swap in use
//	CPU       idle percentage
//	Disk      free percentage of the root volume
//	Indexing  Spotlight indexing and how long it has been running
//
// The sum is rounded and mapped to a status tier: Stable (80 and up),
// Degrading (50 and up) or NeedsRestart. All functions are pure and safe for
// concurrent use.
//
// The package also carries the legacy uptime/swap HealthStatus used by the
// compact CLI output.
package drift
