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
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	workerMarker     = "mdworker"
	storesMarker     = "mds_stores"
	serverSuffix     = "mds"
	indexingMarker   = "Indexing"
	userPathMarker   = "/Users/"
	indexingCPUFloor = 5.0
	heavyWorkerCount = 4
	heavyIndexingCPU = 30.0
	lightIndexingCPU = 5.0
)

// SpotlightActivityLevel classifies background indexing load.
type SpotlightActivityLevel string

const (
	SpotlightIdle  SpotlightActivityLevel = "Idle"
	SpotlightLight SpotlightActivityLevel = "Light"
	SpotlightHeavy SpotlightActivityLevel = "Heavy"
)

// String returns the display name of the level.
func (l SpotlightActivityLevel) String() string {
	return string(l)
}

// ActivityLevelFor derives the indexing activity level from the number of
// worker processes and their aggregate CPU percentage.
func ActivityLevelFor(workers int, cpuPercent float64) SpotlightActivityLevel {
	switch {
	case workers >= heavyWorkerCount || cpuPercent >= heavyIndexingCPU:
		return SpotlightHeavy
	case workers > 0 || cpuPercent >= lightIndexingCPU:
		return SpotlightLight
	default:
		return SpotlightIdle
	}
}

// SpotlightStatus summarizes Spotlight indexing at one instant.
type SpotlightStatus struct {
	IsIndexing       bool                   `json:"isIndexing" yaml:"isIndexing"`
	IndexingPath     *string                `json:"indexingPath,omitempty" yaml:"indexingPath,omitempty"`
	DurationMinutes  *int                   `json:"durationMinutes,omitempty" yaml:"durationMinutes,omitempty"`
	WorkerCount      int                    `json:"workerCount" yaml:"workerCount"`
	CPUPercent       float64                `json:"cpuPercent" yaml:"cpuPercent"`
	IndexedItemCount *int                   `json:"indexedItemCount,omitempty" yaml:"indexedItemCount,omitempty"`
	ActivityLevel    SpotlightActivityLevel `json:"activityLevel" yaml:"activityLevel"`
}

// ParseSpotlight inspects a ps listing (pid, %cpu, command, args...) together
// with mdutil status output.
//
// mdworker rows count as workers and contribute their CPU; mds and mds_stores
// rows contribute CPU only. Indexing is reported when a worker exists, the
// aggregate CPU exceeds 5%, or mdutil mentions "Indexing". The indexing path is
// taken from the first worker argument under /Users/. Duration is unknown
// without history and is always nil; the item count is filled in by callers.
func ParseSpotlight(psText, mdutilText string) SpotlightStatus {
	var (
		workers int
		cpu     float64
		path    *string
	)

	for _, fields := range processRows(psText) {
		if len(fields) < 3 {
			continue
		}
		pcpu, ok := parseFloat(fields[1])
		if !ok || pcpu < 0 {
			continue
		}

		command := fields[2]
		switch {
		case strings.Contains(command, workerMarker):
			workers++
			cpu += pcpu
			if path == nil {
				path = userPath(fields[3:])
			}
		case strings.Contains(command, storesMarker) || strings.HasSuffix(command, serverSuffix):
			cpu += pcpu
		}
	}

	cpu = clampPercent(cpu)
	return SpotlightStatus{
		IsIndexing:    workers > 0 || cpu > indexingCPUFloor || strings.Contains(mdutilText, indexingMarker),
		IndexingPath:  path,
		WorkerCount:   workers,
		CPUPercent:    cpu,
		ActivityLevel: ActivityLevelFor(workers, cpu),
	}
}

func userPath(args []string) *string {
	for _, arg := range args {
		if strings.HasPrefix(arg, userPathMarker) {
			p := arg
			return &p
		}
	}
	return nil
}

// ParseItemCount returns the last line of text that consists solely of a
// non-negative integer, as printed by mdfind -count.
func ParseItemCount(text string) (int, bool) {
	all := lines(text)
	for i := len(all) - 1; i >= 0; i-- {
		line := strings.TrimSpace(all[i])
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err == nil && v >= 0 {
			return v, true
		}
	}
	return 0, false
}

// ItemCountQuery runs the expensive item-count command and returns its output.
type ItemCountQuery func(ctx context.Context) string

// ItemCountCache memoizes the indexed item count for a fixed TTL.
//
// The query runs only when the last attempt is older than the TTL. A query
// whose output cannot be parsed keeps the previous value, so a count once
// obtained stays available even if stale. ItemCountCache is safe for
// concurrent use.
type ItemCountCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	value   *int
	updated time.Time
}

// CacheOption configures an ItemCountCache.
type CacheOption func(*ItemCountCache)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *ItemCountCache) {
		c.now = now
	}
}

// NewItemCountCache creates a cache that reuses a count for ttl.
func NewItemCountCache(ttl time.Duration, opts ...CacheOption) *ItemCountCache {
	c := &ItemCountCache{
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached count, running query first when the cache is stale.
// The result is nil until a query has produced a parsable count.
func (c *ItemCountCache) Get(ctx context.Context, query ItemCountQuery) *int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.updated.IsZero() && now.Sub(c.updated) < c.ttl {
		return copyInt(c.value)
	}

	text := query(ctx)
	if ctx.Err() != nil {
		// canceled queries are retried on the next call
		return copyInt(c.value)
	}
	c.updated = now
	if v, ok := ParseItemCount(text); ok {
		c.value = &v
	}
	return copyInt(c.value)
}

// Reset drops the cached value and timestamp.
func (c *ItemCountCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.updated = time.Time{}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
