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
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/driftmon/driftmon/pkg/defaults"
	"github.com/driftmon/driftmon/pkg/drift"
	"github.com/driftmon/driftmon/pkg/measurement"
)

// Refresher rebuilds a snapshot on demand. *Assembler implements it.
type Refresher interface {
	Refresh(ctx context.Context) (*measurement.Snapshot, error)
}

// Monitor refreshes a snapshot on a fixed cadence.
type Monitor struct {
	// Assembler produces the snapshots.
	Assembler Refresher

	// Interval between refresh starts. Zero means defaults.RefreshInterval;
	// values below defaults.MinRefreshInterval are raised to it.
	Interval time.Duration

	// Count stops the monitor after that many refreshes. Zero runs until
	// the context is canceled.
	Count int

	// OnRefresh is called after every successful refresh.
	OnRefresh func(*measurement.Snapshot, drift.Score)
}

func (m *Monitor) interval() time.Duration {
	switch {
	case m.Interval <= 0:
		return defaults.RefreshInterval
	case m.Interval < defaults.MinRefreshInterval:
		return defaults.MinRefreshInterval
	default:
		return m.Interval
	}
}

// Run refreshes immediately and then once per interval until ctx is
// canceled or Count refreshes completed. Cancellation is not an error.
func (m *Monitor) Run(ctx context.Context) error {
	if m.Assembler == nil {
		return errors.New("monitor has no assembler")
	}

	interval := m.interval()
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	slog.Debug("monitor started", slog.Duration("interval", interval), slog.Int("count", m.Count))

	var last drift.Status
	for done := 0; m.Count == 0 || done < m.Count; done++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		snap, err := m.Assembler.Refresh(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Warn("refresh failed", slog.String("error", err.Error()))
			continue
		}

		score := drift.Calculate(*snap)
		if last != "" && score.Status != last {
			slog.Info("drift status changed",
				slog.String("from", last.String()),
				slog.String("to", score.Status.String()),
				slog.Int("score", score.Value))
		}
		last = score.Status

		if m.OnRefresh != nil {
			m.OnRefresh(snap, score)
		}
	}
	return nil
}
