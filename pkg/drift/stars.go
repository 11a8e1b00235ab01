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

package drift

import (
	"math"
	"strings"

	"github.com/driftmon/driftmon/pkg/measurement"
)

const (
	starSlots = 5
	starFull  = "★"
	starHalf  = "⯪"
	starEmpty = "☆"

	breakdownSeparator = " · "
)

// Stars renders a component score as five star slots.
func Stars(score float64) string {
	p := min(max(score/MaxComponentScore, 0), 1) * starSlots
	full := int(math.Floor(p))
	half := 0
	if p-float64(full) >= 0.5 {
		half = 1
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(starFull, full))
	b.WriteString(strings.Repeat(starHalf, half))
	b.WriteString(strings.Repeat(starEmpty, starSlots-full-half))
	return b.String()
}

// StarBreakdown renders every component of s as stars, e.g.
//
//	Memory ★★★★☆ · Swap ★★★★★ · CPU ★★★★★ · Disk ★★★★★ · Indexing ★★★★★
func StarBreakdown(s measurement.Snapshot) string {
	named := Components(s).Named()
	parts := make([]string, 0, len(named))
	for _, c := range named {
		parts = append(parts, c.Name+" "+Stars(c.Score))
	}
	return strings.Join(parts, breakdownSeparator)
}
