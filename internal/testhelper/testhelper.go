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

// Package testhelper has a fake testing.TB which records failures instead of
// failing the real test.
package testhelper

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

// ExpectFailure wraps a *testing.T and swallows Log/Fail/FailNow calls.
//
// FailNow does not stop the calling goroutine, so everything after a failed
// immediate assertion keeps running. Use Check or CheckPassed at the end of
// the test case.
type ExpectFailure struct {
	*testing.T

	logCalls  []string
	failCalls int
}

var _ testing.TB = (*ExpectFailure)(nil)

// NewExpectFailure makes a new ExpectFailure around `t`.
func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records one log line. Operands are separated by spaces, like
// testing.TB.Log and unlike fmt.Sprint.
func (e *ExpectFailure) Log(args ...any) {
	var buf strings.Builder
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, arg)
	}
	e.logCalls = append(e.logCalls, buf.String())
}

// Logf records one formatted log line.
func (e *ExpectFailure) Logf(format string, args ...any) {
	e.Log(fmt.Sprintf(format, args...))
}

// Fail records a failure.
func (e *ExpectFailure) Fail() { e.failCalls++ }

// FailNow records a failure and returns.
func (e *ExpectFailure) FailNow() { e.failCalls++ }

// Logs returns the recorded log lines, in order.
func (e *ExpectFailure) Logs() []string {
	return append([]string(nil), e.logCalls...)
}

// Failures returns how many times Fail or FailNow was called.
func (e *ExpectFailure) Failures() int {
	return e.failCalls
}

// Check fails the real test unless Fail/FailNow was called and every one of
// `substrs` is contained in some logged line.
func (e *ExpectFailure) Check(substrs ...string) {
	e.Helper()

	var problems []string
	if e.failCalls == 0 {
		problems = append(problems, "test case never called Fail/FailNow")
	}
	for _, sub := range substrs {
		found := slices.ContainsFunc(e.logCalls, func(line string) bool {
			return strings.Contains(line, sub)
		})
		if !found {
			problems = append(problems, fmt.Sprintf("no log line contains %q", sub))
		}
	}
	if len(problems) > 0 {
		e.fatal(problems...)
	}
}

// CheckPassed fails the real test if Fail/FailNow was called.
func (e *ExpectFailure) CheckPassed() {
	e.Helper()

	if e.failCalls > 0 {
		e.fatal(fmt.Sprintf("test case failed %d time(s)", e.failCalls))
	}
}

func (e *ExpectFailure) fatal(problems ...string) {
	e.Helper()

	var buf strings.Builder
	buf.WriteString("ExpectFailure:")
	for _, p := range problems {
		buf.WriteString("\n  * " + p)
	}
	buf.WriteString("\nrecorded logs:")
	for i, line := range e.logCalls {
		fmt.Fprintf(&buf, "\n  [%d] %s", i, line)
	}
	e.T.Fatal(buf.String())
}
