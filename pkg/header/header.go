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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every driftmon report.
const APIVersion = "driftmon.dev/v1"

// Kind names the type of a driftmon report.
type Kind string

const (
	KindSnapshot    Kind = "Snapshot"
	KindDriftReport Kind = "DriftReport"
	KindVersion     Kind = "Version"
)

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known report kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindSnapshot, KindDriftReport, KindVersion:
		return true
	default:
		return false
	}
}

// Header is embedded at the top of every serialized report.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and apiVersion and resets Metadata to the report time in
// UTC plus the tool version, when known.
func (h *Header) Init(kind Kind, apiVersion string, version string, at time.Time) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: at.UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Timestamp parses the report time recorded by Init.
func (h *Header) Timestamp() (time.Time, bool) {
	v, ok := h.Metadata[MetadataTimestamp]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
