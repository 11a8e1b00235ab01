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

// Package parser turns the text output of macOS diagnostic commands into typed
// metric values.
//
// # Overview
//
// Each parser owns one command's output format and is independent of the
// others. All of them are total functions: malformed, partial or empty input
// never produces an error or a panic, it produces the documented default.
//
// # Parsers
//
// Load averages (uptime):
//   - ParseLoadAverages: three floats after "load averages:", else (0, 0, 0)
//
// Virtual memory (vm_stat, sysctl vm.swapusage):
//   - ParseFreeMemoryMB: "Pages free:" × 16 KiB pages, whole MB
//   - ParseSwapUsedGB: max(0, swapouts − swapins) × 4 KiB pages, GiB
//   - ParseSwapUsageMB: the "used = " figure of vm.swapusage, MB
//   - ParseCompressedPages: "Pages stored in compressor:"
//   - ParseMemoryPressure: Low/Medium/High from page statistics
//
// CPU (top, ps):
//   - ParseCPUUsage: user/sys/idle percentages, else (0, 0, 100)
//   - ParseTopProcess: the row with the highest %CPU
//
// Disk (df -h /):
//   - ParseDiskUsage: size/used/avail in GB and free percent
//
// Spotlight (ps, mdutil, mdfind):
//   - ParseSpotlight: worker count, aggregate CPU, activity level
//   - ParseItemCount and ItemCountCache: cached indexed item count
//
// App activity (ps):
//   - ParseAppActivity: distinct user apps and heavy rows
//
// # Defaults
//
// Unavailable measurements present as healthy values (0% swap, 100% idle CPU).
// Optional fields use nil for "unknown" rather than a sentinel. Percentages are
// clamped to [0, 100] and counts are never negative.
package parser
