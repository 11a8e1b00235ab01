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
	"github.com/driftmon/driftmon/pkg/measurement"
)

// HealthStatus is the legacy classification based on uptime and swap only.
type HealthStatus string

const (
	HealthOK       HealthStatus = "OK"
	HealthWarning  HealthStatus = "Warning"
	HealthCritical HealthStatus = "Critical"
)

const (
	criticalUptimeDays = 14
	criticalSwapGB     = 3
	warningUptimeDays  = 7
	warningSwapGB      = 1
)

// HealthFor classifies the given uptime and swap usage.
func HealthFor(uptimeDays, swapUsedGB float64) HealthStatus {
	switch {
	case uptimeDays >= criticalUptimeDays || swapUsedGB >= criticalSwapGB:
		return HealthCritical
	case uptimeDays >= warningUptimeDays || swapUsedGB >= warningSwapGB:
		return HealthWarning
	default:
		return HealthOK
	}
}

// Health classifies a snapshot.
func Health(s measurement.Snapshot) HealthStatus {
	return HealthFor(s.UptimeDays(), s.SwapUsedGB())
}

// Label returns the display name.
func (h HealthStatus) Label() string {
	switch h {
	case HealthOK:
		return "OK"
	case HealthWarning:
		return "Warning"
	case HealthCritical:
		return "Restart Recommended"
	default:
		return string(h)
	}
}

// Explanation returns a short description of the status.
func (h HealthStatus) Explanation() string {
	switch h {
	case HealthOK:
		return "System is running normally"
	case HealthWarning:
		return "Consider monitoring system resources"
	case HealthCritical:
		return "System restart recommended for optimal performance"
	default:
		return ""
	}
}
