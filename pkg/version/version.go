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

// Package version describes the running driftmon build.
//
// Build metadata is injected by the linker into package main and handed to
// NewInfo; when the binary was built with plain "go install" the module
// version from the embedded build info is used instead.
package version

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

// DefaultVersion is reported by builds without linker-provided metadata.
const DefaultVersion = "dev"

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Semver is a parsed "major.minor.patch" version. Missing components are 0.
type Semver struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Extras keeps pre-release or build suffixes such as "-rc.1" or "+dirty".
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns "major.minor.patch" followed by any extras.
func (v Semver) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Extras)
}

// Compare returns -1, 0 or 1 comparing v to other. Extras are ignored.
func (v Semver) Compare(other Semver) int {
	for _, d := range [3]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Parse parses "1", "1.2", "v1.2.3", "1.2.3-rc.1" or "1.2.3+meta".
func Parse(s string) (Semver, error) {
	if s == "" {
		return Semver{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Semver
	main := s
	// A '-' or '+' directly after a digit starts the extras; a leading '-' is
	// left in place so negative numbers fail as non-numeric.
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			main, v.Extras = s[:i], s[i:]
			break
		}
	}

	parts := strings.Split(main, ".")
	if len(parts) > 3 {
		return Semver{}, ErrTooManyComponents
	}

	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || strings.TrimSpace(part) != part || strings.HasPrefix(part, "+") {
			return Semver{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}
	return v, nil
}

// Info describes a driftmon build.
type Info struct {
	Version   string  `json:"version" yaml:"version"`
	Commit    string  `json:"commit" yaml:"commit"`
	Date      string  `json:"date" yaml:"date"`
	GoVersion string  `json:"goVersion" yaml:"goVersion"`
	Platform  string  `json:"platform" yaml:"platform"`
	Semver    *Semver `json:"semver,omitempty" yaml:"semver,omitempty"`
}

// NewInfo assembles build info from linker-provided values.
func NewInfo(version, commit, date string) Info {
	if version == "" || version == DefaultVersion {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
	}
	if version == "" {
		version = DefaultVersion
	}

	info := Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if v, err := Parse(version); err == nil {
		info.Semver = &v
	}
	return info
}

// IsRelease reports whether the build carries a plain release version.
func (i Info) IsRelease() bool {
	return i.Semver != nil && i.Semver.Extras == ""
}

// String returns a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("driftmon %s (commit %s, built %s, %s %s)", i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
