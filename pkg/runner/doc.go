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

// Package runner executes external diagnostic commands and captures their
// standard output as text.
//
// The Runner interface is the only way the rest of driftmon reaches the host:
// parsers never spawn processes themselves, the snapshot assembler receives a
// Runner through its constructor. Production code uses Exec, tests use Fake
// to script command output without touching the machine.
//
// A failed command yields empty text plus a structured error (see pkg/errors);
// callers that must never fail use Output, which logs the error and returns "".
package runner
