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
)

func TestParseLoadAverages(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LoadAverages
	}{
		{
			name: "typical uptime output",
			text: "10:15  up 3 days,  2:30, 2 users, load averages: 1.23 2.45 3.67",
			want: LoadAverages{Load1: 1.23, Load5: 2.45, Load15: 3.67},
		},
		{
			name: "trailing newline",
			text: "14:02  up 12 mins, 1 user, load averages: 0.50 0.40 0.30\n",
			want: LoadAverages{Load1: 0.5, Load5: 0.4, Load15: 0.3},
		},
		{
			name: "label missing",
			text: "10:15  up 3 days, 2 users",
			want: LoadAverages{},
		},
		{
			name: "too few values",
			text: "load averages: 1.23 2.45",
			want: LoadAverages{},
		},
		{
			name: "non numeric value",
			text: "load averages: 1.23 abc 3.67",
			want: LoadAverages{},
		},
		{
			name: "negative clamped",
			text: "load averages: -1.00 2.00 3.00",
			want: LoadAverages{Load1: 0, Load5: 2, Load15: 3},
		},
		{
			name: "empty",
			text: "",
			want: LoadAverages{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLoadAverages(tt.text))
		})
	}
}
