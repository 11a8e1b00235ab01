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

package snapshotter

import (
	"fmt"
	"maps"

	"github.com/driftmon/driftmon/pkg/defaults"
	"github.com/driftmon/driftmon/pkg/runner"
)

// Source names one diagnostic command output.
type Source string

const (
	SourceUptime      Source = "uptime"
	SourceVMStat      Source = "vm_stat"
	SourceSwap        Source = "swap"
	SourceCPU         Source = "cpu"
	SourceProcesses   Source = "processes"
	SourceTopProcess  Source = "top_process"
	SourceApps        Source = "apps"
	SourceDisk        Source = "disk"
	SourceIndexStatus Source = "index_status"
	SourceItemCount   Source = "item_count"
)

// String returns the source name.
func (s Source) String() string {
	return string(s)
}

// AllSources lists every source in fetch order.
var AllSources = []Source{
	SourceUptime,
	SourceVMStat,
	SourceSwap,
	SourceCPU,
	SourceProcesses,
	SourceTopProcess,
	SourceApps,
	SourceDisk,
	SourceIndexStatus,
	SourceItemCount,
}

// ParseSource returns the Source named s.
func ParseSource(s string) (Source, error) {
	for _, src := range AllSources {
		if string(src) == s {
			return src, nil
		}
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// Sources maps each source to the command that produces it.
type Sources map[Source]runner.Command

// DefaultSources returns the stock macOS command table.
func DefaultSources() Sources {
	return Sources{
		SourceUptime:      runner.Cmd("/usr/bin/uptime"),
		SourceVMStat:      runner.Cmd("/usr/bin/vm_stat"),
		SourceSwap:        runner.Cmd("/usr/sbin/sysctl", "-n", "vm.swapusage"),
		SourceCPU:         runner.Cmd("/usr/bin/top", "-l", "1", "-n", "0"),
		SourceProcesses:   runner.Cmd("/bin/ps", "-eo", "pid,pcpu,comm,args"),
		SourceTopProcess:  runner.Cmd("/bin/ps", "-eo", "pid,pcpu,comm"),
		SourceApps:        runner.Cmd("/bin/ps", "-eo", "pid,pcpu,pmem,comm"),
		SourceDisk:        runner.Cmd("/bin/df", "-h", "/"),
		SourceIndexStatus: runner.Cmd("/usr/bin/mdutil", "-s", "/"),
		SourceItemCount: runner.Cmd("/usr/bin/mdfind", "-count", "kMDItemContentType == '*'").
			WithTimeout(defaults.ItemCountQueryTimeout),
	}
}

// Merge returns a copy of s with the commands of overrides replacing the
// matching entries.
func (s Sources) Merge(overrides Sources) Sources {
	out := make(Sources, len(s)+len(overrides))
	maps.Copy(out, s)
	maps.Copy(out, overrides)
	return out
}
