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
)

const loadAveragesLabel = "load averages:"

// LoadAverages holds the 1, 5 and 15 minute system load averages.
type LoadAverages struct {
	Load1  float64 `json:"load1" yaml:"load1"`
	Load5  float64 `json:"load5" yaml:"load5"`
	Load15 float64 `json:"load15" yaml:"load15"`
}

// ParseLoadAverages extracts the three load averages that follow the
// "load averages:" label of uptime output, e.g.
//
//	10:15  up 3 days,  2:30, 2 users, load averages: 1.23 2.45 3.67
//
// It returns zeros when the label is missing, fewer than three tokens follow
// it, or any of the three tokens is not a number.
func ParseLoadAverages(text string) LoadAverages {
	idx := strings.Index(text, loadAveragesLabel)
	if idx < 0 {
		return LoadAverages{}
	}

	tokens := strings.Fields(text[idx+len(loadAveragesLabel):])
	if len(tokens) < 3 {
		return LoadAverages{}
	}

	var vals [3]float64
	for i := range vals {
		v, ok := parseFloat(tokens[i])
		if !ok {
			return LoadAverages{}
		}
		vals[i] = max(0, v)
	}

	return LoadAverages{Load1: vals[0], Load5: vals[1], Load15: vals[2]}
}
