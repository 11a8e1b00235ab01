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

package runner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/driftmon/driftmon/pkg/defaults"
	cerrors "github.com/driftmon/driftmon/pkg/errors"
)

// Command identifies an external program and its arguments.
type Command struct {
	Path string   `json:"path" yaml:"path"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Timeout overrides the runner's default bound when non-zero.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Cmd is a shorthand constructor for Command.
func Cmd(path string, args ...string) Command {
	return Command{Path: path, Args: args}
}

// WithTimeout returns a copy of c bounded by d instead of the runner default.
func (c Command) WithTimeout(d time.Duration) Command {
	c.Timeout = d
	return c
}

// String returns the command line as "path arg1 arg2".
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Runner executes a command and returns its standard output.
// On failure the returned text is empty and err describes why.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// Func adapts a plain function to the Runner interface.
type Func func(ctx context.Context, cmd Command) (string, error)

// Run calls f(ctx, cmd).
func (f Func) Run(ctx context.Context, cmd Command) (string, error) {
	return f(ctx, cmd)
}

// Output runs cmd and degrades any failure to empty text.
func Output(ctx context.Context, r Runner, cmd Command) string {
	out, err := r.Run(ctx, cmd)
	if err != nil {
		var se *cerrors.StructuredError
		if errors.As(err, &se) {
			slog.Debug("command produced no usable output", slog.Any("error", se))
		} else {
			slog.Debug("command produced no usable output",
				slog.String("command", cmd.String()),
				slog.String("code", string(cerrors.CodeOf(err))),
				slog.String("error", err.Error()))
		}
		return ""
	}
	return out
}

// Exec runs commands on the local host with os/exec.
type Exec struct {
	// Timeout bounds each invocation. Zero means defaults.CommandTimeout.
	Timeout time.Duration
}

// NewExec returns an Exec runner with the default command timeout.
func NewExec() *Exec {
	return &Exec{Timeout: defaults.CommandTimeout}
}

// Run executes cmd, capturing standard output only.
func (e *Exec) Run(ctx context.Context, cmd Command) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := e.Timeout
	if cmd.Timeout > 0 {
		timeout = cmd.Timeout
	}
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	var stdout bytes.Buffer
	c.Stdout = &stdout

	err := c.Run()
	slog.Debug("command finished",
		slog.String("command", cmd.String()),
		slog.Duration("duration", time.Since(start)),
		slog.Bool("ok", err == nil))

	if err != nil {
		return "", classify(ctx, cmd, timeout, err)
	}
	return stdout.String(), nil
}

func classify(ctx context.Context, cmd Command, timeout time.Duration, err error) error {
	details := map[string]any{"command": cmd.String()}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, exec.ErrDot) || errors.Is(err, fs.ErrNotExist) {
		return cerrors.WrapWithContext(cerrors.ErrCodeNotFound, "command not available", err, details)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		details["timeout"] = timeout.String()
		return cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "command timed out", err, details)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		details["exitCode"] = exitErr.ExitCode()
		return cerrors.WrapWithContext(cerrors.ErrCodeCommandFailed, "command exited with error", err, details)
	}
	return cerrors.WrapWithContext(cerrors.ErrCodeInternal, "failed to run command", err, details)
}
