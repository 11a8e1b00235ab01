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

// Package defaults provides centralized configuration constants for driftmon.
//
// This package defines timeout values, sampling cadence and cache lifetimes used
// across the codebase. Centralizing these values keeps the sampling loop, the
// command runner and the CLI in agreement.
//
// # Categories
//
//   - Command timeouts: for external diagnostic command invocations
//   - Sampling: for the refresh cadence and cached sub-metrics
//   - CLI timeouts: for one-shot command-line operations
//
// Scoring thresholds are not defined here; they are fixed in pkg/drift.
package defaults
