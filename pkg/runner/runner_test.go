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
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/driftmon/driftmon/pkg/errors"
)

func lookPath(t *testing.T, name string) string {
	t.Helper()
	p, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return p
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "/usr/bin/uptime", Cmd("/usr/bin/uptime").String())
	assert.Equal(t, "/bin/ps -eo pid,pcpu,comm", Cmd("/bin/ps", "-eo", "pid,pcpu,comm").String())
}

func TestExec_Run(t *testing.T) {
	echo := lookPath(t, "echo")

	out, err := NewExec().Run(context.Background(), Cmd(echo, "load averages: 1.00 2.00 3.00"))
	require.NoError(t, err)
	assert.Equal(t, "load averages: 1.00 2.00 3.00\n", out)
}

func TestExec_MissingBinary(t *testing.T) {
	out, err := NewExec().Run(context.Background(), Cmd("/nonexistent/driftmon-missing"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, cerrors.ErrCodeNotFound, cerrors.CodeOf(err))
}

func TestExec_NonZeroExit(t *testing.T) {
	f := lookPath(t, "false")

	out, err := NewExec().Run(context.Background(), Cmd(f))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, cerrors.ErrCodeCommandFailed, cerrors.CodeOf(err))
}

func TestExec_Timeout(t *testing.T) {
	sleep := lookPath(t, "sleep")

	e := &Exec{Timeout: 50 * time.Millisecond}
	start := time.Now()
	out, err := e.Run(context.Background(), Cmd(sleep, "5"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, cerrors.ErrCodeTimeout, cerrors.CodeOf(err))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExec_CommandTimeoutOverride(t *testing.T) {
	sleep := lookPath(t, "sleep")

	e := &Exec{Timeout: time.Minute}
	cmd := Cmd(sleep, "5").WithTimeout(50 * time.Millisecond)
	_, err := e.Run(context.Background(), cmd)
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeTimeout, cerrors.CodeOf(err))
	assert.Equal(t, "/bin/sleep 5", Cmd("/bin/sleep", "5").WithTimeout(time.Second).String())
}

func TestExec_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExec().Run(ctx, Cmd("/usr/bin/uptime"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutput_DegradesToEmpty(t *testing.T) {
	r := Func(func(context.Context, Command) (string, error) {
		return "partial", errors.New("boom")
	})
	assert.Empty(t, Output(context.Background(), r, Cmd("/usr/bin/vm_stat")))

	ok := Func(func(context.Context, Command) (string, error) {
		return "Pages free: 1.", nil
	})
	assert.Equal(t, "Pages free: 1.", Output(context.Background(), ok, Cmd("/usr/bin/vm_stat")))
}

func TestFake_Lookup(t *testing.T) {
	f := NewFake().
		Set("/bin/ps -eo pid,pcpu,comm", "full").
		Set("/bin/ps", "path-only").
		Fail("/usr/bin/top", errors.New("no top"))
	ctx := context.Background()

	out, err := f.Run(ctx, Cmd("/bin/ps", "-eo", "pid,pcpu,comm"))
	require.NoError(t, err)
	assert.Equal(t, "full", out)

	out, err = f.Run(ctx, Cmd("/bin/ps", "-eo", "pid,pcpu,pmem,comm"))
	require.NoError(t, err)
	assert.Equal(t, "path-only", out)

	_, err = f.Run(ctx, Cmd("/usr/bin/top", "-l", "1"))
	assert.EqualError(t, err, "no top")

	_, err = f.Run(ctx, Cmd("/usr/bin/uptime"))
	assert.Equal(t, cerrors.ErrCodeNotFound, cerrors.CodeOf(err))

	assert.Len(t, f.Calls(), 4)
	assert.Equal(t, 2, f.CallCount("/bin/ps"))
	assert.Equal(t, 1, f.CallCount("/bin/ps -eo pid,pcpu,comm"))
}

func TestFake_Reset(t *testing.T) {
	f := NewFake().Set("/usr/bin/uptime", "up")
	_, _ = f.Run(context.Background(), Cmd("/usr/bin/uptime"))

	f.Reset()
	assert.Empty(t, f.Calls())
	_, err := f.Run(context.Background(), Cmd("/usr/bin/uptime"))
	assert.Error(t, err)
}

func TestFake_ConcurrentUse(t *testing.T) {
	f := NewFake().Set("/usr/bin/uptime", "up")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.Run(context.Background(), Cmd("/usr/bin/uptime"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, f.CallCount("/usr/bin/uptime"))
}
