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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/logging"
	"github.com/driftmon/driftmon/pkg/runner"
	"github.com/driftmon/driftmon/pkg/snapshotter"
)

const (
	name           = "driftmon"
	versionDefault = "dev"
	envPrefix      = "DRIFTMON_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// deps carries the collaborators commands use, replaceable in tests.
type deps struct {
	// newRunner builds the command runner for the given per-command timeout.
	newRunner func(cfg *Config, cmd *cli.Command) runner.Runner
	uptime    snapshotter.UptimeFunc
	out       io.Writer
}

func defaultDeps() deps {
	return deps{
		newRunner: func(cfg *Config, cmd *cli.Command) runner.Runner {
			return &runner.Exec{Timeout: commandTimeout(cfg, cmd)}
		},
		out: os.Stdout,
	}
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	return &Config{}
}

func envVar(s string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + s)
}

func newRootCmd(d deps) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "macOS host drift monitor",
		Version:               version,
		EnableShellCompletion: true,
		Writer:                d.out,
		Description: fmt.Sprintf(`driftmon samples macOS host metrics and reduces them to a Drift Score.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default is $HOME/" + defaultConfigName + ")",
				Sources: envVar("CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error); falls back to LOG_LEVEL, then info",
				Sources: envVar("LOG_LEVEL"),
			},
		},
		Before: initRoot,
		Commands: []*cli.Command{
			snapshotCmd(d),
			scoreCmd(d),
			watchCmd(d),
			versionCmd(d),
		},
	}
}

// initRoot reads the config file and configures slog before any command
// executes, so --log-level and the config file take effect everywhere.
func initRoot(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	required := path != ""
	if !required {
		path = defaultConfigPath()
	}

	cfg, err := LoadConfig(path, required)
	if err != nil {
		return ctx, err
	}

	level := cmd.String("log-level")
	if !cmd.IsSet("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"config", path,
		"logLevel", level)

	return withConfig(ctx, cfg), nil
}

// Execute runs the driftmon CLI with os.Args. It is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(defaultDeps()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
