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
	"math"
	"strconv"
	"strings"
)

// clampPercent limits v to [0, 100]. NaN maps to 0.
func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// parseFloat parses a finite float; NaN and infinities are rejected.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// lines splits text on newlines, tolerating CRLF.
func lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// trailingInt returns the last whitespace-separated token of line as an
// integer, ignoring a trailing period ("100000." -> 100000).
func trailingInt(line string) (int64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	last := strings.TrimSuffix(fields[len(fields)-1], ".")
	v, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// labeledInt returns the trailing integer of the first line containing label.
func labeledInt(text, label string) (int64, bool) {
	for _, line := range lines(text) {
		if !strings.Contains(line, label) {
			continue
		}
		if v, ok := trailingInt(line); ok {
			return v, true
		}
	}
	return 0, false
}

// processRows returns the non-empty rows of a ps listing with the header removed.
func processRows(text string) [][]string {
	all := lines(text)
	if len(all) < 2 {
		return nil
	}
	rows := make([][]string, 0, len(all)-1)
	for _, line := range all[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}
