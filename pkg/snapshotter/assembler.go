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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sync/errgroup"

	"github.com/driftmon/driftmon/pkg/defaults"
	"github.com/driftmon/driftmon/pkg/drift"
	"github.com/driftmon/driftmon/pkg/measurement"
	"github.com/driftmon/driftmon/pkg/parser"
	"github.com/driftmon/driftmon/pkg/runner"
)

// UptimeFunc reports host uptime in seconds.
type UptimeFunc func(ctx context.Context) (uint64, error)

// Assembler owns the current snapshot and rebuilds it on Refresh.
// It is safe for concurrent use.
type Assembler struct {
	runner  runner.Runner
	sources Sources
	uptime  UptimeFunc
	cache   *parser.ItemCountCache
	now     func() time.Time
	newID   func() string

	mu      sync.Mutex
	current atomic.Pointer[measurement.Snapshot]
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithSources replaces the command table.
func WithSources(s Sources) Option {
	return func(a *Assembler) {
		a.sources = s
	}
}

// WithUptime replaces the uptime reader.
func WithUptime(f UptimeFunc) Option {
	return func(a *Assembler) {
		a.uptime = f
	}
}

// WithItemCountCache replaces the indexed item count cache.
func WithItemCountCache(c *parser.ItemCountCache) Option {
	return func(a *Assembler) {
		a.cache = c
	}
}

// WithClock replaces the clock used to timestamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithIDGenerator replaces the snapshot ID generator.
func WithIDGenerator(f func() string) Option {
	return func(a *Assembler) {
		a.newID = f
	}
}

// NewAssembler creates an Assembler that runs commands through r.
func NewAssembler(r runner.Runner, opts ...Option) *Assembler {
	a := &Assembler{
		runner:  r,
		sources: DefaultSources(),
		uptime:  host.UptimeWithContext,
		cache:   parser.NewItemCountCache(defaults.ItemCountCacheTTL),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Current returns the latest snapshot, or nil before the first refresh.
func (a *Assembler) Current() *measurement.Snapshot {
	return a.current.Load()
}

// Score returns the Drift Score of the latest snapshot, or nil before the
// first refresh.
func (a *Assembler) Score() *drift.Score {
	snap := a.current.Load()
	if snap == nil {
		return nil
	}
	score := drift.Calculate(*snap)
	return &score
}

// Refresh samples every source once and replaces the current snapshot.
// The only error is cancellation of ctx, in which case the current snapshot
// is left untouched.
func (a *Assembler) Refresh(ctx context.Context) (*measurement.Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		refreshTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	start := time.Now()
	id := a.newID()
	log := slog.With(slog.String("refresh", id))
	log.Debug("starting refresh")

	out, itemCount, uptime := a.fetch(ctx, log)
	if err := ctx.Err(); err != nil {
		refreshTotal.WithLabelValues("canceled").Inc()
		return nil, fmt.Errorf("refresh canceled: %w", err)
	}

	snap := build(out)
	snap.ID = id
	snap.Timestamp = a.now()
	snap.UptimeSeconds = float64(uptime)
	snap.Spotlight.IndexedItemCount = itemCount

	log.Debug("swap usage from page counters",
		slog.Float64("vmStatSwapGB", parser.ParseSwapUsedGB(out[SourceVMStat])),
		slog.Int("sysctlSwapMB", snap.SwapUsedMB))

	a.current.Store(snap)

	score := drift.Calculate(*snap)
	recordScore(score, drift.Components(*snap))
	uptimeSeconds.Set(snap.UptimeSeconds)
	refreshDuration.Observe(time.Since(start).Seconds())
	refreshTotal.WithLabelValues("success").Inc()

	log.Debug("refresh complete",
		slog.Int("score", score.Value),
		slog.String("status", score.Status.String()),
		slog.Duration("duration", time.Since(start)))

	return snap, nil
}

// fetch runs every source concurrently, each exactly once.
func (a *Assembler) fetch(ctx context.Context, log *slog.Logger) (map[Source]string, *int, uint64) {
	var (
		mu        sync.Mutex
		out       = make(map[Source]string, len(a.sources))
		itemCount *int
		uptime    uint64
	)

	// Goroutines never return errors; a failed source degrades to empty text.
	g, gctx := errgroup.WithContext(ctx)

	for src, cmd := range a.sources {
		if src == SourceItemCount {
			continue
		}
		g.Go(func() error {
			text := a.output(gctx, src, cmd)
			mu.Lock()
			out[src] = text
			mu.Unlock()
			return nil
		})
	}

	if cmd, ok := a.sources[SourceItemCount]; ok {
		g.Go(func() error {
			count := a.cache.Get(gctx, func(ctx context.Context) string {
				return a.output(ctx, SourceItemCount, cmd)
			})
			mu.Lock()
			itemCount = count
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		secs, err := a.uptime(gctx)
		if err != nil {
			log.Warn("failed to read host uptime", slog.String("error", err.Error()))
			return nil
		}
		mu.Lock()
		uptime = secs
		mu.Unlock()
		return nil
	})

	_ = g.Wait()
	return out, itemCount, uptime
}

func (a *Assembler) output(ctx context.Context, src Source, cmd runner.Command) string {
	start := time.Now()
	defer func() {
		sourceDuration.WithLabelValues(src.String()).Observe(time.Since(start).Seconds())
	}()

	text := runner.Output(ctx, a.runner, cmd)
	if text == "" {
		sourceEmpty.WithLabelValues(src.String()).Inc()
	}
	return text
}

// build parses raw command output into a snapshot.
func build(out map[Source]string) *measurement.Snapshot {
	vmstat := out[SourceVMStat]
	processes := out[SourceProcesses]

	return &measurement.Snapshot{
		Load:            parser.ParseLoadAverages(out[SourceUptime]),
		SwapUsedMB:      parser.ParseSwapUsageMB(out[SourceSwap]),
		FreeMemoryMB:    parser.ParseFreeMemoryMB(vmstat),
		CompressedPages: parser.ParseCompressedPages(vmstat),
		MemoryPressure:  parser.ParseMemoryPressure(vmstat),
		CPU:             parser.ParseCPUUsage(out[SourceCPU]),
		TopProcess:      parser.ParseTopProcess(out[SourceTopProcess]),
		Disk:            parser.ParseDiskUsage(out[SourceDisk]),
		Spotlight:       parser.ParseSpotlight(processes, out[SourceIndexStatus]),
		Apps:            parser.ParseAppActivity(out[SourceApps]),
	}
}
