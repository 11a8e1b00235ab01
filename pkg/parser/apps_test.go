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

func TestParseAppActivity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want AppActivity
	}{
		{
			name: "mixed listing",
			text: `  PID  %CPU %MEM COMM
    0  12.0  0.5 kernel_task
    1   0.1  0.1 /sbin/launchd
  120   3.0  1.0 /System/Library/PrivateFrameworks/SkyLight.framework/Resources/WindowServer
  300   1.0  2.0 /Applications/Safari.app/Contents/MacOS/Safari
  301  60.0  1.0 /Applications/Safari.app/Contents/MacOS/Safari
  302   0.5  8.0 /Applications/Slack.app/Contents/MacOS/Slack
  400   0.0  0.1 /System/Library/CoreServices/com.apple.dock.extra
  401   2.0  0.3 /usr/libexec/fseventsd
`,
			want: AppActivity{ActiveApps: 2, HeavyApps: 2},
		},
		{
			name: "name with spaces",
			text: "PID %CPU %MEM COMM\n10 1.0 1.0 /Applications/Google Chrome.app/Contents/MacOS/Google Chrome\n",
			want: AppActivity{ActiveApps: 1},
		},
		{
			name: "case insensitive blocklist",
			text: "PID %CPU %MEM COMM\n10 99.0 9.0 /usr/sbin/KextD\n",
			want: AppActivity{},
		},
		{
			name: "heavy counted per row",
			text: "PID %CPU %MEM COMM\n1 70 1 Xcode\n2 70 1 Xcode\n3 70 1 Xcode\n",
			want: AppActivity{ActiveApps: 1, HeavyApps: 3},
		},
		{
			name: "thresholds are strict",
			text: "PID %CPU %MEM COMM\n1 50.0 5.0 Terminal\n",
			want: AppActivity{ActiveApps: 1},
		},
		{
			name: "malformed rows skipped",
			text: "PID %CPU %MEM COMM\n1 x 1 Bad\n2 1.0\n3 1.0 y Bad2\n",
			want: AppActivity{},
		},
		{
			name: "empty",
			text: "",
			want: AppActivity{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAppActivity(tt.text))
		})
	}
}
