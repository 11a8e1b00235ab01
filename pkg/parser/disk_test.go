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

func TestParseDiskUsage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DiskInfo
	}{
		{
			name: "gibibytes",
			text: "Filesystem     Size   Used  Avail Capacity iused ifree %iused  Mounted on\n" +
				"/dev/disk3s1s1  500Gi  350Gi  150Gi    70%  403k  1.5G    0%   /",
			want: DiskInfo{TotalGB: 500, UsedGB: 350, FreeGB: 150, FreePercent: 30},
		},
		{
			name: "mixed units",
			text: "Filesystem Size Used Avail Capacity Mounted on\n/dev/disk1 1.5Ti 1024Gi 512Mi 99% /",
			want: DiskInfo{TotalGB: 1536, UsedGB: 1024, FreeGB: 0.5, FreePercent: 1},
		},
		{
			name: "decimal suffixes",
			text: "Filesystem Size Used Avail Capacity Mounted on\n/dev/disk1 2TB 1048576KB 10GB 50% /",
			want: DiskInfo{TotalGB: 2048, UsedGB: 1, FreeGB: 10, FreePercent: 50},
		},
		{
			name: "unknown suffix",
			text: "Filesystem Size Used Avail Capacity Mounted on\n/dev/disk1 500Xi 350Gi 150Gi 70% /",
			want: DiskInfo{TotalGB: 0, UsedGB: 350, FreeGB: 150, FreePercent: 30},
		},
		{
			name: "header only",
			text: "Filesystem Size Used Avail Capacity Mounted on",
			want: DiskInfo{},
		},
		{
			name: "short row",
			text: "Filesystem Size Used Avail Capacity Mounted on\n/dev/disk1 500Gi 350Gi",
			want: DiskInfo{},
		},
		{
			name: "empty",
			text: "",
			want: DiskInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDiskUsage(tt.text)
			assert.InDelta(t, tt.want.TotalGB, got.TotalGB, 1e-9)
			assert.InDelta(t, tt.want.UsedGB, got.UsedGB, 1e-9)
			assert.InDelta(t, tt.want.FreeGB, got.FreeGB, 1e-9)
			assert.InDelta(t, tt.want.FreePercent, got.FreePercent, 1e-9)
		})
	}
}
