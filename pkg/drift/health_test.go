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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftmon/driftmon/pkg/measurement"
)

func TestHealthFor(t *testing.T) {
	tests := []struct {
		name   string
		days   float64
		swapGB float64
		want   HealthStatus
	}{
		{"fresh", 1, 0, HealthOK},
		{"just under a week", 6.9, 0.9, HealthOK},
		{"one week", 7, 0, HealthWarning},
		{"one gigabyte swap", 0, 1, HealthWarning},
		{"two weeks", 14, 0, HealthCritical},
		{"three gigabytes swap", 2, 3, HealthCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthFor(tt.days, tt.swapGB))
		})
	}
}

func TestHealth(t *testing.T) {
	s := measurement.Snapshot{UptimeSeconds: 8 * 86400}
	assert.Equal(t, HealthWarning, Health(s))

	s = measurement.Snapshot{UptimeSeconds: 3600, SwapUsedMB: 4096}
	assert.Equal(t, HealthCritical, Health(s))
}

func TestHealthStatus_Labels(t *testing.T) {
	assert.Equal(t, "Restart Recommended", HealthCritical.Label())
	assert.Equal(t, "OK", HealthOK.Label())
	assert.Equal(t, "Consider monitoring system resources", HealthWarning.Explanation())
	assert.Equal(t, "Unknown", HealthStatus("Unknown").Label())
}
