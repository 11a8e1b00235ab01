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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const psHeader = "  PID  %CPU COMM             ARGS\n"

func TestActivityLevelFor(t *testing.T) {
	tests := []struct {
		workers int
		cpu     float64
		want    SpotlightActivityLevel
	}{
		{0, 0, SpotlightIdle},
		{0, 4.9, SpotlightIdle},
		{0, 5, SpotlightLight},
		{1, 0, SpotlightLight},
		{3, 29.9, SpotlightLight},
		{4, 0, SpotlightHeavy},
		{0, 30, SpotlightHeavy},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivityLevelFor(tt.workers, tt.cpu), "workers=%d cpu=%.1f", tt.workers, tt.cpu)
	}
}

func TestParseSpotlight(t *testing.T) {
	t.Run("workers indexing user folder", func(t *testing.T) {
		ps := psHeader +
			"  310   2.0 /System/Library/Frameworks/CoreServices.framework/Frameworks/Metadata.framework/Support/mds /System/.../mds\n" +
			"  311   8.5 /System/Library/Frameworks/CoreServices.framework/Frameworks/Metadata.framework/Support/mds_stores mds_stores\n" +
			"  900   6.0 /System/Library/Frameworks/CoreServices.framework/Frameworks/Metadata.framework/Versions/A/Support/mdworker_shared mdworker_shared -s mdworker /Users/alex/Documents\n" +
			"  901   3.5 /System/Library/Frameworks/CoreServices.framework/Frameworks/Metadata.framework/Versions/A/Support/mdworker_shared mdworker_shared -s mdworker\n" +
			"  950  40.0 /Applications/Safari.app/Contents/MacOS/Safari Safari\n"

		got := ParseSpotlight(ps, "/:\n\tIndexing enabled.")
		assert.True(t, got.IsIndexing)
		assert.Equal(t, 2, got.WorkerCount)
		assert.InDelta(t, 20.0, got.CPUPercent, 1e-9)
		assert.Equal(t, SpotlightLight, got.ActivityLevel)
		require.NotNil(t, got.IndexingPath)
		assert.Equal(t, "/Users/alex/Documents", *got.IndexingPath)
		assert.Nil(t, got.DurationMinutes)
		assert.Nil(t, got.IndexedItemCount)
	})

	t.Run("heavy by worker count", func(t *testing.T) {
		ps := psHeader +
			"1 0.1 mdworker_shared mdworker_shared\n" +
			"2 0.1 mdworker_shared mdworker_shared\n" +
			"3 0.1 mdworker_shared mdworker_shared\n" +
			"4 0.1 mdworker mdworker\n"

		got := ParseSpotlight(ps, "")
		assert.Equal(t, 4, got.WorkerCount)
		assert.Equal(t, SpotlightHeavy, got.ActivityLevel)
		assert.Nil(t, got.IndexingPath)
	})

	t.Run("idle host", func(t *testing.T) {
		ps := psHeader + "1 0.0 /sbin/launchd /sbin/launchd\n2 0.3 /usr/libexec/mds mds\n"

		got := ParseSpotlight(ps, "/:\n\tSpotlight server is disabled.")
		assert.False(t, got.IsIndexing)
		assert.Zero(t, got.WorkerCount)
		assert.Equal(t, SpotlightIdle, got.ActivityLevel)
	})

	t.Run("mdutil signal alone", func(t *testing.T) {
		got := ParseSpotlight("", "/:\n\tIndexing enabled.")
		assert.True(t, got.IsIndexing)
		assert.Equal(t, SpotlightIdle, got.ActivityLevel)
	})

	t.Run("cpu above floor", func(t *testing.T) {
		got := ParseSpotlight(psHeader+"1 5.5 mds_stores mds_stores\n", "")
		assert.True(t, got.IsIndexing)
		assert.Equal(t, SpotlightLight, got.ActivityLevel)
	})

	t.Run("aggregate clamped", func(t *testing.T) {
		ps := psHeader + "1 90 mds_stores x\n2 90 mdworker_shared x\n"
		got := ParseSpotlight(ps, "")
		assert.Equal(t, 100.0, got.CPUPercent)
	})

	t.Run("empty input", func(t *testing.T) {
		got := ParseSpotlight("", "")
		assert.Equal(t, SpotlightStatus{ActivityLevel: SpotlightIdle}, got)
	})
}

func TestParseItemCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"single line", "123456\n", 123456, true},
		{"warnings before count", "[UserQueryParser] Loading keywords\n98765", 98765, true},
		{"last numeric line wins", "12\nnoise\n34\n\n", 34, true},
		{"no number", "error: no index", 0, false},
		{"negative", "-5", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseItemCount(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type countingQuery struct {
	calls  int
	output string
}

func (q *countingQuery) run(context.Context) string {
	q.calls++
	return q.output
}

func TestItemCountCache(t *testing.T) {
	ctx := t.Context()

	t.Run("hit within ttl", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		cache := NewItemCountCache(60*time.Second, WithClock(clock.Now))
		q := &countingQuery{output: "1000\n"}

		first := cache.Get(ctx, q.run)
		require.NotNil(t, first)
		assert.Equal(t, 1000, *first)

		clock.Advance(30 * time.Second)
		q.output = "2000\n"
		second := cache.Get(ctx, q.run)
		require.NotNil(t, second)
		assert.Equal(t, 1000, *second)
		assert.Equal(t, 1, q.calls)
	})

	t.Run("miss after ttl", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		cache := NewItemCountCache(60*time.Second, WithClock(clock.Now))
		q := &countingQuery{output: "1000"}

		cache.Get(ctx, q.run)
		clock.Advance(61 * time.Second)
		q.output = "2000"
		got := cache.Get(ctx, q.run)
		require.NotNil(t, got)
		assert.Equal(t, 2000, *got)
		assert.Equal(t, 2, q.calls)
	})

	t.Run("parse failure keeps previous", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		cache := NewItemCountCache(60*time.Second, WithClock(clock.Now))
		q := &countingQuery{output: "1000"}

		cache.Get(ctx, q.run)
		clock.Advance(2 * time.Minute)
		q.output = "mdfind: timeout"
		got := cache.Get(ctx, q.run)
		require.NotNil(t, got)
		assert.Equal(t, 1000, *got)
	})

	t.Run("never succeeded", func(t *testing.T) {
		cache := NewItemCountCache(60 * time.Second)
		q := &countingQuery{}
		assert.Nil(t, cache.Get(ctx, q.run))
		assert.Equal(t, 1, q.calls)
	})

	t.Run("canceled query is retried", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		cache := NewItemCountCache(60*time.Second, WithClock(clock.Now))

		canceled, cancel := context.WithCancel(ctx)
		interrupted := func(context.Context) string {
			cancel()
			return ""
		}
		assert.Nil(t, cache.Get(canceled, interrupted))

		q := &countingQuery{output: "1000"}
		got := cache.Get(ctx, q.run)
		require.NotNil(t, got)
		assert.Equal(t, 1000, *got)
		assert.Equal(t, 1, q.calls)
	})

	t.Run("reset forces query", func(t *testing.T) {
		cache := NewItemCountCache(time.Hour)
		q := &countingQuery{output: "7"}

		cache.Get(ctx, q.run)
		cache.Reset()
		q.output = "8"
		got := cache.Get(ctx, q.run)
		require.NotNil(t, got)
		assert.Equal(t, 8, *got)
		assert.Equal(t, 2, q.calls)
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		cache := NewItemCountCache(time.Hour)
		q := &countingQuery{output: "7"}

		got := cache.Get(ctx, q.run)
		require.NotNil(t, got)
		*got = 99
		again := cache.Get(ctx, q.run)
		require.NotNil(t, again)
		assert.Equal(t, 7, *again)
	})
}

func TestItemCountCache_Concurrent(t *testing.T) {
	cache := NewItemCountCache(time.Hour)
	var (
		mu    sync.Mutex
		calls int
	)
	query := func(context.Context) string {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return "42"
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := cache.Get(t.Context(), query)
			assert.NotNil(t, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}
