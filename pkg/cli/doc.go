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

// Package cli implements the driftmon command-line interface.
//
// # Commands
//
// snapshot - Sample the host once and print the snapshot:
//
//	driftmon snapshot --format yaml --output snapshot.yaml
//
// score - Print the Drift Score, its components and the star breakdown:
//
//	driftmon score
//	driftmon score --snapshot snapshot.yaml
//
// With --snapshot a previously saved snapshot report is scored instead of
// sampling the host.
//
// watch - Refresh on a fixed cadence and print one line per refresh:
//
//	driftmon watch --interval 10s --metrics-file /tmp/driftmon.prom
//
// The metrics file is rewritten after every refresh in the Prometheus text
// format, ready for the node_exporter textfile collector.
//
// version - Print build information.
//
// # Configuration
//
// Settings are resolved in this order: command-line flag, DRIFTMON_*
// environment variable, config file, built-in default. The config file is
// YAML and defaults to $HOME/.driftmon.yaml:
//
//	logLevel: info
//	format: table
//	interval: 30s
//	commandTimeout: 5s
//	metricsFile: /usr/local/var/driftmon/driftmon.prom
//	commands:
//	  disk:
//	    path: /bin/df
//	    args: ["-h", "/System/Volumes/Data"]
//
// # Output Formats
//
// yaml (default), json and table; watch defaults to table. Reports carry a
// kind/apiVersion/metadata header.
//
// # Timeouts
//
// --command-timeout bounds each external command (default 5s, the Spotlight
// item count query gets 15s). --timeout bounds a one-shot snapshot or score.
package cli
