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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topHeader = `Processes: 512 total, 3 running, 509 sleeping, 2345 threads
2024/05/01 10:15:00
Load Avg: 1.23, 2.45, 3.67
`

func TestParseCPUUsage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want CPUUsage
	}{
		{
			name: "full top header",
			text: topHeader + "CPU usage: 12.34% user, 5.67% sys, 81.99% idle\nSharedLibs: 1M resident",
			want: CPUUsage{User: 12.34, System: 5.67, Idle: 81.99},
		},
		{
			name: "integer percentages",
			text: "CPU usage: 10% user, 5% sys, 85% idle",
			want: CPUUsage{User: 10, System: 5, Idle: 85},
		},
		{
			name: "missing idle",
			text: "CPU usage: 10.00% user, 5.00% sys",
			want: CPUUsage{User: 10, System: 5, Idle: 0},
		},
		{
			name: "no cpu line",
			text: topHeader,
			want: CPUUsage{Idle: 100},
		},
		{
			name: "empty",
			text: "",
			want: CPUUsage{Idle: 100},
		},
		{
			name: "clamped",
			text: "CPU usage: 150.00% user, 0.00% sys, 0.00% idle",
			want: CPUUsage{User: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCPUUsage(tt.text))
		})
	}
}

func TestParseTopProcess(t *testing.T) {
	t.Run("busiest wins", func(t *testing.T) {
		text := `  PID  %CPU COMM
    1   0.1 /sbin/launchd
  420  35.5 /Applications/Xcode.app/Contents/MacOS/Xcode
  421  12.0 /usr/libexec/WindowServer
`
		got := ParseTopProcess(text)
		require.NotNil(t, got.Name)
		assert.Equal(t, "/Applications/Xcode.app/Contents/MacOS/Xcode", *got.Name)
		assert.InDelta(t, 35.5, got.CPUPercent, 1e-9)
	})

	t.Run("command with spaces", func(t *testing.T) {
		text := `  PID  %CPU COMM
  512  61.0 /Applications/Google Chrome.app/Contents/MacOS/Google Chrome
  513   3.0 /usr/libexec/WindowServer
`
		got := ParseTopProcess(text)
		require.NotNil(t, got.Name)
		assert.Equal(t, "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome", *got.Name)
		assert.InDelta(t, 61.0, got.CPUPercent, 1e-9)
	})

	t.Run("tie keeps first", func(t *testing.T) {
		text := "PID %CPU COMM\n10 20.0 first\n11 20.0 second\n"
		got := ParseTopProcess(text)
		require.NotNil(t, got.Name)
		assert.Equal(t, "first", *got.Name)
	})

	t.Run("all idle", func(t *testing.T) {
		got := ParseTopProcess("PID %CPU COMM\n1 0.0 launchd\n2 0.0 kernel_task\n")
		assert.Nil(t, got.Name)
		assert.Zero(t, got.CPUPercent)
	})

	t.Run("header only", func(t *testing.T) {
		got := ParseTopProcess("PID %CPU COMM")
		assert.Nil(t, got.Name)
	})

	t.Run("malformed rows skipped", func(t *testing.T) {
		got := ParseTopProcess("PID %CPU COMM\n1 abc bogus\n2 7.5\n3 4.0 real\n")
		require.NotNil(t, got.Name)
		assert.Equal(t, "real", *got.Name)
	})

	t.Run("multi core clamped", func(t *testing.T) {
		got := ParseTopProcess("PID %CPU COMM\n99 340.2 ffmpeg\n")
		require.NotNil(t, got.Name)
		assert.Equal(t, 100.0, got.CPUPercent)
	})
}
