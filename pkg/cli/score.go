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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/header"
	"github.com/driftmon/driftmon/pkg/measurement"
	"github.com/driftmon/driftmon/pkg/serializer"
)

func scoreCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  "score",
		EnableShellCompletion: true,
		Usage:                 "Compute the Drift Score",
		Description: `Compute the Drift Score (0-100) of the host, or of a snapshot previously
written by "driftmon snapshot".

Each of memory, swap, CPU, disk and Spotlight indexing contributes up to
20 points. 80 and above is Stable, 50 and above is Degrading, anything
lower means a restart is recommended.

# Examples

Score the live host:
  driftmon score

Score a saved snapshot as JSON:
  driftmon score --snapshot snap.yaml --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "snapshot",
				Usage: "score a saved snapshot file instead of the live host",
			},
			outputFlag,
			formatFlag,
			timeoutFlag,
			commandTimeoutFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			outFormat, err := parseOutputFormat(cfg, cmd)
			if err != nil {
				return err
			}

			var snap *measurement.Snapshot
			if path := cmd.String("snapshot"); path != "" {
				snap, err = loadSnapshot(path)
			} else {
				snap, err = refreshOnce(ctx, d, cfg, cmd)
			}
			if err != nil {
				return err
			}

			w := newWriter(d, outFormat, cmd.String("output"))
			defer serializer.Close(w)
			return w.Serialize(ctx, newDriftReport(snap, snap.Timestamp))
		},
	}
}

// loadSnapshot reads a SnapshotReport written by the snapshot command.
func loadSnapshot(path string) (*measurement.Snapshot, error) {
	r, err := serializer.NewFileReaderAuto(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer r.Close()

	var report SnapshotReport
	if err := r.Deserialize(&report); err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if report.Kind != "" && report.Kind != header.KindSnapshot {
		return nil, fmt.Errorf("%s is a %s report, not a %s", path, report.Kind, header.KindSnapshot)
	}
	if report.Snapshot == nil {
		return nil, fmt.Errorf("snapshot file %s has no snapshot section", path)
	}
	if at, ok := report.Timestamp(); ok {
		slog.Debug("loaded snapshot", "path", path, "id", report.Snapshot.ID, "age", time.Since(at).Round(time.Second))
	}
	return report.Snapshot, nil
}
