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

// Package header provides the common header of driftmon reports.
//
// Every report printed by the CLI starts with a Kind, an APIVersion and a
// small metadata map, shaped like a Kubernetes resource:
//
//	kind: DriftReport
//	apiVersion: driftmon.dev/v1
//	metadata:
//	  timestamp: "2025-05-01T10:15:00Z"
//	  version: v0.3.0
//
// Reports embed Header and initialize it in place:
//
//	var r Report
//	r.Init(header.KindDriftReport, header.APIVersion, version, time.Now())
//
// Timestamps use RFC3339 in UTC.
package header
