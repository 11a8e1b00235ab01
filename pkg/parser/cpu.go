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
	"regexp"
	"strings"
)

const cpuUsageLabel = "CPU usage:"

var (
	cpuUserPattern = percentPattern("user")
	cpuSysPattern  = percentPattern("sys")
	cpuIdlePattern = percentPattern("idle")
)

func percentPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)%\s+` + regexp.QuoteMeta(keyword))
}

// CPUUsage is the user/system/idle split reported by top.
// The three values need not sum to exactly 100.
type CPUUsage struct {
	User   float64 `json:"user" yaml:"user"`
	System float64 `json:"system" yaml:"system"`
	Idle   float64 `json:"idle" yaml:"idle"`
}

// TopProcess is the process with the highest %CPU in a listing.
type TopProcess struct {
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	CPUPercent float64 `json:"cpuPercent" yaml:"cpuPercent"`
}

// ParseCPUUsage reads the "CPU usage:" line of top output, e.g.
//
//	CPU usage: 12.34% user, 5.67% sys, 81.99% idle
//
// Each component is matched on its own and is 0 when absent. Without a
// "CPU usage:" line the host is assumed idle: (0, 0, 100).
func ParseCPUUsage(text string) CPUUsage {
	for _, line := range lines(text) {
		if !strings.Contains(line, cpuUsageLabel) {
			continue
		}
		return CPUUsage{
			User:   matchPercent(cpuUserPattern, line),
			System: matchPercent(cpuSysPattern, line),
			Idle:   matchPercent(cpuIdlePattern, line),
		}
	}
	return CPUUsage{Idle: 100}
}

func matchPercent(re *regexp.Regexp, line string) float64 {
	m := re.FindStringSubmatch(line)
	if len(m) < 2 {
		return 0
	}
	v, ok := parseFloat(m[1])
	if !ok {
		return 0
	}
	return clampPercent(v)
}

// ParseTopProcess finds the busiest process in a ps listing of pid, %cpu and
// command, where the command runs to the end of the row and may contain
// spaces. The header row is skipped. Only rows with
// %CPU strictly above the running maximum (starting at 0) are taken, so an
// all-idle listing yields a nil name and 0.
func ParseTopProcess(text string) TopProcess {
	var top TopProcess
	for _, fields := range processRows(text) {
		if len(fields) < 3 {
			continue
		}
		cpu, ok := parseFloat(fields[1])
		if !ok || cpu <= top.CPUPercent {
			continue
		}
		name := strings.Join(fields[2:], " ")
		top = TopProcess{Name: &name, CPUPercent: cpu}
	}
	top.CPUPercent = clampPercent(top.CPUPercent)
	return top
}
