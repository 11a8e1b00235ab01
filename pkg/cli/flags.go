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
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/defaults"
	"github.com/driftmon/driftmon/pkg/serializer"
	"github.com/driftmon/driftmon/pkg/snapshotter"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: envVar("FORMAT"),
	}

	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "timeout for a single refresh",
		Value: defaults.CLIRefreshTimeout,
	}

	commandTimeoutFlag = &cli.DurationFlag{
		Name:    "command-timeout",
		Usage:   "timeout for each external command",
		Value:   defaults.CommandTimeout,
		Sources: envVar("COMMAND_TIMEOUT"),
	}
)

// parseOutputFormat resolves --format, falling back to the config file when
// neither the flag nor its env var is set.
func parseOutputFormat(cfg *Config, cmd *cli.Command) (serializer.Format, error) {
	s := cmd.String("format")
	if !cmd.IsSet("format") && cfg.Format != "" {
		s = cfg.Format
	}
	return serializer.ParseFormat(s)
}

func commandTimeout(cfg *Config, cmd *cli.Command) time.Duration {
	if !cmd.IsSet("command-timeout") && cfg.CommandTimeout > 0 {
		return cfg.CommandTimeout
	}
	return cmd.Duration("command-timeout")
}

func refreshInterval(cfg *Config, cmd *cli.Command) (time.Duration, error) {
	d := cmd.Duration("interval")
	if !cmd.IsSet("interval") && cfg.Interval > 0 {
		d = cfg.Interval
	}
	if d < defaults.MinRefreshInterval {
		return 0, fmt.Errorf("interval %s is below the minimum of %s", d, defaults.MinRefreshInterval)
	}
	return d, nil
}

func metricsFile(cfg *Config, cmd *cli.Command) string {
	if !cmd.IsSet("metrics-file") && cfg.MetricsFile != "" {
		return cfg.MetricsFile
	}
	return cmd.String("metrics-file")
}

func newAssembler(d deps, cfg *Config, cmd *cli.Command) *snapshotter.Assembler {
	opts := []snapshotter.Option{snapshotter.WithSources(cfg.Sources())}
	if d.uptime != nil {
		opts = append(opts, snapshotter.WithUptime(d.uptime))
	}
	return snapshotter.NewAssembler(d.newRunner(cfg, cmd), opts...)
}

func newWriter(d deps, format serializer.Format, path string) *serializer.Writer {
	if path == "" || path == "-" {
		return serializer.NewWriter(format, d.out)
	}
	return serializer.NewFileWriterOrStdout(format, path)
}
