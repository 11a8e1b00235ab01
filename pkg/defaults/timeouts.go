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

package defaults

import "time"

// Command timeouts for external diagnostic commands.
const (
	// CommandTimeout bounds a single external command invocation.
	// Runners should respect parent context deadlines when shorter.
	CommandTimeout = 5 * time.Second

	// ItemCountQueryTimeout bounds the expensive Spotlight item-count query.
	ItemCountQueryTimeout = 15 * time.Second
)

// Sampling cadence and cache lifetimes.
const (
	// RefreshInterval is the default cadence of the sampling loop.
	RefreshInterval = 10 * time.Second

	// MinRefreshInterval is the smallest cadence accepted from configuration.
	MinRefreshInterval = 1 * time.Second

	// ItemCountCacheTTL is how long an indexed item count is reused before
	// the query runs again.
	ItemCountCacheTTL = 60 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIRefreshTimeout is the default timeout for a one-shot refresh.
	CLIRefreshTimeout = 1 * time.Minute
)
