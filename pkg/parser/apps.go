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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	heavyAppCPU = 50.0
	heavyAppMem = 5.0
)

// systemProcesses are lowercase name fragments that mark a command as a
// system process rather than a user app.
var systemProcesses = []string{
	"kernel_task",
	"launchd",
	"mds",
	"mdworker",
	"windowserver",
	"com.apple",
	"kernel",
	"kextd",
	"fseventsd",
	"distnoted",
}

// AppActivity counts running user applications.
type AppActivity struct {
	ActiveApps int `json:"activeApps" yaml:"activeApps"`
	HeavyApps  int `json:"heavyApps" yaml:"heavyApps"`
}

// ParseAppActivity reads a ps listing with pid, %cpu, %mem and command
// columns. Distinct user-app commands are counted as active; every user-app
// row above 50% CPU or 5% memory counts as heavy, duplicates included.
func ParseAppActivity(text string) AppActivity {
	lower := cases.Lower(language.Und)
	apps := make(map[string]struct{})
	heavy := 0

	for _, fields := range processRows(text) {
		if len(fields) < 4 {
			continue
		}
		cpu, ok := parseFloat(fields[1])
		if !ok {
			continue
		}
		mem, ok := parseFloat(fields[2])
		if !ok {
			continue
		}

		name := strings.Join(fields[3:], " ")
		if !isUserApp(lower.String(name)) {
			continue
		}

		apps[name] = struct{}{}
		if cpu > heavyAppCPU || mem > heavyAppMem {
			heavy++
		}
	}

	return AppActivity{ActiveApps: len(apps), HeavyApps: heavy}
}

func isUserApp(lowerName string) bool {
	for _, sys := range systemProcesses {
		if strings.Contains(lowerName, sys) {
			return false
		}
	}
	return true
}
