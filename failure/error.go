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

package failure

import (
	"fmt"
	"strings"

	"go.chromium.org/fluent/internal/indented"
)

// DefaultLabel is the heading of an aggregate Error when none is given.
const DefaultLabel = "The following assertions failed"

const (
	bullet       = "\t- "
	bulletIndent = "\t  "
)

// Error is an "assertion failed" error.
//
// It is either a single-violation failure (see Single), whose message is
// exactly the Record's message, or an aggregate-violation failure (see
// Aggregate) summarizing every Record of a soft-assertion scope.
type Error struct {
	// Label is the heading of an aggregate error. Empty for single errors.
	Label string

	// Records are the violations carried by this error, in report order.
	Records []*Record

	aggregate bool
	msg       string
}

var _ error = (*Error)(nil)

// Single returns an Error which carries exactly one Record.
//
// Its message is the message of `rec`, unchanged.
func Single(rec *Record) *Error {
	return &Error{
		Records: []*Record{rec},
		msg:     rec.Message,
	}
}

// Aggregate returns an Error summarizing `recs`.
//
// If `label` is empty, DefaultLabel is used. The message is:
//
//	<label> (<N> failures):
//		- <message 1>
//		- <message 2>
//
// with one bullet per Record, in order. Continuation lines of multi-line
// messages are indented under their bullet.
func Aggregate(label string, recs []*Record) *Error {
	if label == "" {
		label = DefaultLabel
	}
	recs = append([]*Record(nil), recs...)

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s (%d failures):", label, len(recs))
	for _, rec := range recs {
		buf.WriteByte('\n')
		buf.WriteString(indented.Bullet(bullet, bulletIndent, rec.Message))
	}

	return &Error{
		Label:     label,
		Records:   recs,
		aggregate: true,
		msg:       buf.String(),
	}
}

// Error implements error.
func (e *Error) Error() string {
	return e.msg
}

// IsAggregate returns true iff this Error was built by Aggregate.
func (e *Error) IsAggregate() bool {
	return e.aggregate
}

// Unwrap exposes the Records so that errors.Is and errors.As can see them and
// their causes.
func (e *Error) Unwrap() []error {
	ret := make([]error, len(e.Records))
	for i, rec := range e.Records {
		ret[i] = rec
	}
	return ret
}

// AsRecord converts this Error into one Record, e.g. to report a resolved
// scope into an enclosing one.
//
// For single errors this is the original Record.
func (e *Error) AsRecord() *Record {
	if !e.aggregate && len(e.Records) == 1 {
		return e.Records[0]
	}
	return &Record{Message: e.msg, Cause: e}
}

// Catch calls `fn` and returns the *Error it panicked with, if any.
//
// Panics with any other value are propagated unchanged.
func Catch(fn func()) (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if ferr, ok := r.(*Error); ok {
				err = ferr
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
