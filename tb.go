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

package fluent

import (
	"fmt"
	"sync"

	"go.chromium.org/fluent/channel"
	"go.chromium.org/fluent/failure"
)

// TestingTB is the subset of testing.TB which fluent uses.
//
// testing.TB implements it.
type TestingTB interface {
	Helper()
	Log(args ...any)
	FailNow()
	Cleanup(func())
}

// stacks maps TestingTB to its *channel.Stack.
var stacks sync.Map

// stackOf returns the scope stack of `t`, making it on first use.
//
// The root channel of the stack logs the failure and calls t.FailNow. The
// failures of an All block which is left by t.FailNow or a panic are logged
// with t.Log.
func stackOf(t TestingTB) *channel.Stack {
	if s, ok := stacks.Load(t); ok {
		return s.(*channel.Stack)
	}

	root := channel.NewImmediate(t, func(err *failure.Error) {
		t.Helper()
		t.Log(err.Error())
		t.FailNow()
	}).WithNote(func(msg string) {
		t.Helper()
		t.Log(msg)
	})
	s := channel.NewStack(root)
	if existing, loaded := stacks.LoadOrStore(t, s); loaded {
		return existing.(*channel.Stack)
	}
	t.Cleanup(func() { stacks.Delete(t) })
	return s
}

// Report delivers `rec` to the current failure channel of `t`.
//
// Outside of an All block this fails the test immediately. A nil `rec` is
// ignored.
func Report(t TestingTB, rec *failure.Record) {
	t.Helper()

	if rec == nil {
		return
	}
	stackOf(t).Current().Report(rec)
}

// Fail reports a generic failure with message `msg`.
//
// Use it from Given callbacks to build custom predicates.
func Fail(t TestingTB, msg string) {
	t.Helper()
	Report(t, failure.New(msg))
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf(t TestingTB, format string, args ...any) {
	t.Helper()
	Report(t, failure.New(fmt.Sprintf(format, args...)))
}

// All runs `block` with failures on `t` collected, and reports them as one
// aggregate failure when `block` returns.
func All(t TestingTB, block func()) {
	t.Helper()
	channel.Run(stackOf(t), "", block)
}

// AllLabeled is All with a custom aggregate label.
func AllLabeled(t TestingTB, label string, block func()) {
	t.Helper()
	channel.Run(stackOf(t), label, block)
}

// AllValue is All for a block which returns a value.
//
// The value is returned even if failures were collected, when the channel
// reporting the aggregate returns (e.g. inside an enclosing All).
func AllValue[R any](t TestingTB, block func() R) R {
	t.Helper()
	return channel.Scoped(stackOf(t), "", block)
}
