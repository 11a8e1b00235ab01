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

package runner

import (
	"context"
	"sync"

	cerrors "github.com/driftmon/driftmon/pkg/errors"
)

// Fake is a scripted Runner. Responses are looked up by the full command line
// first ("path arg1 arg2") and by the bare path second. Unscripted commands
// fail with ErrCodeNotFound. Fake is safe for concurrent use.
type Fake struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []Command
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

// Set scripts the output for key, a full command line or a bare path.
func (f *Fake) Set(key, output string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = output
	return f
}

// Fail scripts an error for key.
func (f *Fake) Fail(key string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[key] = err
	return f
}

// Run records the call and returns the scripted output.
func (f *Fake) Run(ctx context.Context, cmd Command) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, key := range []string{cmd.String(), cmd.Path} {
		if err, ok := f.errs[key]; ok {
			return "", err
		}
		if out, ok := f.responses[key]; ok {
			return out, nil
		}
	}
	return "", cerrors.NewWithContext(cerrors.ErrCodeNotFound, "no scripted response",
		map[string]any{"command": cmd.String()})
}

// Calls returns a copy of the recorded invocations in call order.
func (f *Fake) Calls() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times the command line key was invoked.
func (f *Fake) CallCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.String() == key || c.Path == key {
			n++
		}
	}
	return n
}

// Reset clears scripted responses and recorded calls.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = make(map[string]string)
	f.errs = make(map[string]error)
	f.calls = nil
}
