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
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/defaults"
	"github.com/driftmon/driftmon/pkg/drift"
	"github.com/driftmon/driftmon/pkg/format"
	"github.com/driftmon/driftmon/pkg/measurement"
	"github.com/driftmon/driftmon/pkg/serializer"
	"github.com/driftmon/driftmon/pkg/snapshotter"
)

func watchCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  "watch",
		EnableShellCompletion: true,
		Usage:                 "Refresh the Drift Score on a fixed cadence",
		Description: `Refresh the snapshot every --interval and print the score.

With the table format each refresh prints a single line:
  <timestamp>  <score>  <status>  <per-component stars>

With --metrics-file the Prometheus metrics are written to that file after
every refresh, in the text format read by the node_exporter textfile
collector.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Usage:   "time between refreshes",
				Value:   defaults.RefreshInterval,
				Sources: envVar("INTERVAL"),
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "stop after this many refreshes (0 runs until interrupted)",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "write Prometheus metrics to this file after every refresh",
				Sources: envVar("METRICS_FILE"),
			},
			outputFlag,
			&cli.StringFlag{
				Name:    formatFlag.Name,
				Aliases: formatFlag.Aliases,
				Usage:   formatFlag.Usage,
				Value:   string(serializer.FormatTable),
			},
			commandTimeoutFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			outFormat, err := parseOutputFormat(cfg, cmd)
			if err != nil {
				return err
			}
			interval, err := refreshInterval(cfg, cmd)
			if err != nil {
				return err
			}
			if cmd.Int("count") < 0 {
				return errors.New("count must not be negative")
			}

			w := newWriter(d, outFormat, cmd.String("output"))
			defer serializer.Close(w)

			sink := &watchSink{
				ctx:         ctx,
				format:      outFormat,
				writer:      w,
				out:         d.out,
				metricsFile: metricsFile(cfg, cmd),
			}

			m := &snapshotter.Monitor{
				Assembler: newAssembler(d, cfg, cmd),
				Interval:  interval,
				Count:     int(cmd.Int("count")),
				OnRefresh: sink.handle,
			}
			return m.Run(ctx)
		},
	}
}

// watchSink emits every refresh to the selected output.
type watchSink struct {
	ctx         context.Context
	format      serializer.Format
	writer      *serializer.Writer
	out         io.Writer
	metricsFile string
}

func (s *watchSink) handle(snap *measurement.Snapshot, score drift.Score) {
	if s.format == serializer.FormatTable {
		fmt.Fprintln(s.out, watchLine(snap, score))
	} else if err := s.writer.Serialize(s.ctx, newDriftReport(snap, snap.Timestamp)); err != nil {
		slog.Warn("failed to write report", "error", err)
	}

	if s.metricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(s.metricsFile, prometheus.DefaultGatherer); err != nil {
		slog.Warn("failed to write metrics file", "path", s.metricsFile, "error", err)
	}
}

func watchLine(snap *measurement.Snapshot, score drift.Score) string {
	return fmt.Sprintf("%s  %3d  %-13s  %s  swap %s  cpu idle %.1f%%",
		snap.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		score.Value,
		score.Status.Label(),
		drift.StarBreakdown(*snap),
		format.SwapUsed(snap),
		snap.CPU.Idle)
}
