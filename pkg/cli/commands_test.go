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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/driftmon/driftmon/pkg/drift"
	"github.com/driftmon/driftmon/pkg/header"
	"github.com/driftmon/driftmon/pkg/parser"
	"github.com/driftmon/driftmon/pkg/runner"
	"github.com/driftmon/driftmon/pkg/snapshotter"
)

const (
	testUptime = "10:15  up 3 days,  2:30, 2 users, load averages: 1.23 2.45 3.67\n"
	testTop    = "Processes: 512 total\nCPU usage: 12.34% user, 5.67% sys, 81.99% idle\n"
	testDisk   = "Filesystem     Size   Used  Avail Capacity  Mounted on\n/dev/disk1   500Gi  350Gi  150Gi    70%    /\n"
)

func scriptedRunner() *runner.Fake {
	src := snapshotter.DefaultSources()
	return runner.NewFake().
		Set(src[snapshotter.SourceUptime].String(), testUptime).
		Set(src[snapshotter.SourceCPU].String(), testTop).
		Set(src[snapshotter.SourceDisk].String(), testDisk)
}

func testDeps(fake *runner.Fake) (deps, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return deps{
		newRunner: func(*Config, *cli.Command) runner.Runner { return fake },
		uptime: func(context.Context) (uint64, error) {
			return 3*86400 + 2*3600, nil
		},
		out: buf,
	}, buf
}

func runCLI(t *testing.T, d deps, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return newRootCmd(d).Run(t.Context(), append([]string{name}, args...))
}

func TestSnapshotCmd(t *testing.T) {
	d, out := testDeps(scriptedRunner())
	require.NoError(t, runCLI(t, d, "snapshot", "--format", "json"))

	var report SnapshotReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, header.KindSnapshot, report.Kind)
	assert.Equal(t, header.APIVersion, report.APIVersion)
	assert.NotEmpty(t, report.Metadata[header.MetadataTimestamp])
	require.NotNil(t, report.Snapshot)
	assert.NotEmpty(t, report.Snapshot.ID)
	assert.Equal(t, parser.LoadAverages{Load1: 1.23, Load5: 2.45, Load15: 3.67}, report.Snapshot.Load)
	assert.InDelta(t, 81.99, report.Snapshot.CPU.Idle, 1e-9)
	assert.InDelta(t, 30.0, report.Snapshot.Disk.FreePercent, 1e-9)
}

func TestScoreCmd_FromSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.yaml")

	d, _ := testDeps(scriptedRunner())
	require.NoError(t, runCLI(t, d, "snapshot", "--output", path))

	saved, err := loadSnapshot(path)
	require.NoError(t, err)

	fake := runner.NewFake()
	d, out := testDeps(fake)
	require.NoError(t, runCLI(t, d, "score", "--snapshot", path, "-t", "json"))
	assert.Empty(t, fake.Calls(), "saved snapshots are scored without running commands")

	var report DriftReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	want := drift.Calculate(*saved)
	assert.Equal(t, header.KindDriftReport, report.Kind)
	assert.Equal(t, saved.ID, report.SnapshotID)
	assert.Equal(t, want.Value, report.Score)
	assert.Equal(t, want.Status, report.Status)
	assert.Equal(t, want.Status.Label(), report.Label)
	assert.Equal(t, drift.Components(*saved), report.Components)
	assert.Equal(t, drift.StarBreakdown(*saved), report.Stars)
	assert.Equal(t, "3d 2h", report.Summary.Uptime)
	assert.Equal(t, "150.0 GB free (30%)", report.Summary.Disk)
}

func TestScoreCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"score", "--format", "xml"}},
		{"missing snapshot file", []string{"score", "--snapshot", "/nonexistent/snap.yaml"}},
		{"missing required config", []string{"--config", "/nonexistent/driftmon.yaml", "score"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := testDeps(scriptedRunner())
			assert.Error(t, runCLI(t, d, tt.args...))
		})
	}
}

func TestScoreCmd_ConfigPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "driftmon.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0o600))

	t.Run("config sets format", func(t *testing.T) {
		d, out := testDeps(scriptedRunner())
		require.NoError(t, runCLI(t, d, "--config", cfgPath, "score"))
		assert.True(t, json.Valid(out.Bytes()))
	})

	t.Run("flag overrides config", func(t *testing.T) {
		d, out := testDeps(scriptedRunner())
		require.NoError(t, runCLI(t, d, "--config", cfgPath, "score", "--format", "yaml"))
		assert.False(t, json.Valid(out.Bytes()))
		assert.Contains(t, out.String(), "kind: DriftReport")
	})
}

func TestWatchCmd(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "driftmon.prom")

	fake := scriptedRunner()
	d, out := testDeps(fake)
	require.NoError(t, runCLI(t, d, "watch", "--count", "1", "--metrics-file", metrics))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "cpu idle 82.0%")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "driftmon_drift_score")
	assert.Contains(t, string(data), "driftmon_refresh_total")
}

func TestWatchCmd_RejectsShortInterval(t *testing.T) {
	d, _ := testDeps(scriptedRunner())
	assert.Error(t, runCLI(t, d, "watch", "--interval", "100ms", "--count", "1"))
}

func TestVersionCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		d, out := testDeps(runner.NewFake())
		require.NoError(t, runCLI(t, d, "version"))
		assert.True(t, strings.HasPrefix(out.String(), "driftmon "))
	})

	t.Run("json", func(t *testing.T) {
		d, out := testDeps(runner.NewFake())
		require.NoError(t, runCLI(t, d, "version", "-t", "json"))

		var report VersionReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, header.KindVersion, report.Kind)
		assert.NotEmpty(t, report.Build.GoVersion)
	})
}

func TestScoreCmd_RejectsOtherKinds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	d, _ := testDeps(scriptedRunner())
	require.NoError(t, runCLI(t, d, "score", "--output", path))

	d, _ = testDeps(runner.NewFake())
	err := runCLI(t, d, "score", "--snapshot", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DriftReport")
}
