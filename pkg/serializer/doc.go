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

// Package serializer writes and reads driftmon reports in JSON, YAML or a
// flattened table.
//
// # Formats
//
//   - json: indented JSON, the fallback for unknown formats
//   - yaml: two-space indented YAML
//   - table: one FIELD/VALUE row per leaf, keyed by the dotted json names in
//     field order; write only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer serializer.Close(w)
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// An empty path writes to stdout. A file that cannot be created also falls
// back to stdout with an error log.
//
// # Reading
//
// Saved snapshots are read back with the format taken from the extension:
//
//	r, err := serializer.NewFileReaderAuto("snapshot.json")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	var snap measurement.Snapshot
//	err = r.Deserialize(&snap)
package serializer
