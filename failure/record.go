// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package failure contains the data types describing assertion failures.
//
// A Record is a single violated expectation, produced by a predicate. An Error
// is what gets raised: either one Record verbatim (fail-fast mode) or an
// aggregate of all Records collected by a soft-assertion scope.
package failure

import "fmt"

// Record is one violated expectation.
//
// Records are created by predicates and are not modified after they have been
// reported.
type Record struct {
	// Message is the human-readable description of the violation.
	Message string

	// Cause is an optional underlying error (e.g. the unexpected error returned
	// by the code under test).
	Cause error
}

var _ error = (*Record)(nil)

// New returns a Record with the given message.
func New(msg string) *Record {
	return &Record{Message: msg}
}

// Newf returns a Record with a fmt.Sprintf formatted message.
func Newf(format string, args ...any) *Record {
	return &Record{Message: fmt.Sprintf(format, args...)}
}

// WithCause returns a Record with the same message and the given cause.
func (r *Record) WithCause(cause error) *Record {
	return &Record{Message: r.Message, Cause: cause}
}

// Error implements error.
//
// It returns Message unchanged.
func (r *Record) Error() string {
	return r.Message
}

// Unwrap returns Cause.
func (r *Record) Unwrap() error {
	return r.Cause
}
