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

// DiskInfo describes the root volume in gigabytes.
type DiskInfo struct {
	TotalGB     float64 `json:"totalGB" yaml:"totalGB"`
	UsedGB      float64 `json:"usedGB" yaml:"usedGB"`
	FreeGB      float64 `json:"freeGB" yaml:"freeGB"`
	FreePercent float64 `json:"freePercent" yaml:"freePercent"`
}

// ParseDiskUsage reads the first data row of df -h output:
//
//	Filesystem     Size   Used  Avail Capacity  Mounted on
//	/dev/disk1s1   500Gi  350Gi  150Gi    70%    /
//
// Free percent is 100 minus the capacity column. Output with fewer than two
// lines or a row with fewer than five fields yields a zero DiskInfo.
func ParseDiskUsage(text string) DiskInfo {
	all := lines(text)
	if len(all) < 2 {
		return DiskInfo{}
	}

	fields := strings.Fields(all[1])
	if len(fields) < 5 {
		return DiskInfo{}
	}

	usedPercent, ok := parseFloat(strings.TrimSuffix(fields[4], "%"))
	if !ok {
		usedPercent = 0
	}

	return DiskInfo{
		TotalGB:     parseSizeGB(fields[1]),
		UsedGB:      parseSizeGB(fields[2]),
		FreeGB:      parseSizeGB(fields[3]),
		FreePercent: clampPercent(100 - usedPercent),
	}
}

// parseSizeGB converts a df size token such as "500Gi", "1.5TB" or "512Mi"
// to gigabytes. Unknown suffixes yield 0.
func parseSizeGB(token string) float64 {
	s := strings.ToUpper(token)
	if len(s) < 2 {
		return 0
	}

	var factor float64
	switch s[len(s)-2:] {
	case "TI", "TB":
		factor = 1024
	case "GI", "GB":
		factor = 1
	case "MI", "MB":
		factor = 1.0 / 1024
	case "KI", "KB":
		factor = 1.0 / (1024 * 1024)
	default:
		return 0
	}

	v, ok := parseFloat(s[:len(s)-2])
	if !ok || v < 0 {
		return 0
	}
	return v * factor
}
