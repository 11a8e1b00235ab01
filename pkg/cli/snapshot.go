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

	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/measurement"
	"github.com/driftmon/driftmon/pkg/serializer"
)

func snapshotCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a host metrics snapshot",
		Description: `Run the metric commands once and write the parsed snapshot:
  - uptime and load averages
  - memory pressure, swap and compressed pages
  - CPU breakdown and top process
  - disk usage of the root volume
  - Spotlight indexing activity
  - user application activity

The snapshot can be output in JSON, YAML, or table format and read back
later with "driftmon score --snapshot FILE".`,
		Flags: []cli.Flag{
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

			snap, err := refreshOnce(ctx, d, cfg, cmd)
			if err != nil {
				return err
			}

			w := newWriter(d, outFormat, cmd.String("output"))
			defer serializer.Close(w)
			return w.Serialize(ctx, newSnapshotReport(snap, snap.Timestamp))
		},
	}
}

// refreshOnce builds a single snapshot bounded by --timeout.
func refreshOnce(ctx context.Context, d deps, cfg *Config, cmd *cli.Command) (*measurement.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	snap, err := newAssembler(d, cfg, cmd).Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture snapshot: %w", err)
	}
	slog.Debug("snapshot captured", "id", snap.ID)
	return snap, nil
}
