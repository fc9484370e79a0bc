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
	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/should"
)

// Result is the outcome of a call returning (T, error).
type Result[T any] struct {
	Value T
	Err   error
}

// ResultOf wraps the return values of a (T, error) call:
//
//	n, err := strconv.Atoi("10")
//	fluent.IsSuccess(fluent.ResultOf(t, n, err)).Is(should.Equal(10))
func ResultOf[T any](t TestingTB, value T, err error) *Assert[Result[T]] {
	return That(t, Result[T]{Value: value, Err: err})
}

// Returns calls `fn` and wraps its return values.
func Returns[T any](t TestingTB, fn func() (T, error)) *Assert[Result[T]] {
	value, err := fn()
	return ResultOf(t, value, err)
}

// IsSuccess checks that the result has no error and returns an Assert on its
// value.
func IsSuccess[T any](a *Assert[Result[T]]) *Assert[T] {
	a.t.Helper()

	if !a.ok {
		return skipped[Result[T], T](a, "")
	}
	if err := a.subject.Err; err != nil {
		return narrowFailed[Result[T], T](a, "", comparison.NewRecordBuilder("fluent.IsSuccess").
			Because("expected success, but failed with an error").
			Actual(err).
			Cause(err).
			Record())
	}
	return derive(a, "", a.subject.Value)
}

// IsFailure checks that the result has an error and returns an Assert on it.
func IsFailure[T any](a *Assert[Result[T]]) *Assert[error] {
	a.t.Helper()

	if !a.ok {
		return skipped[Result[T], error](a, "")
	}
	if a.subject.Err == nil {
		return narrowFailed[Result[T], error](a, "", comparison.NewRecordBuilder("fluent.IsFailure").
			Because("expected an error, but succeeded").
			Actual(a.subject.Value).WarnIfLong().
			Record())
	}
	return derive(a, "", a.subject.Err)
}

// Panics calls `fn`, checks that it panics, and returns an Assert on the
// panic value.
func Panics(t TestingTB, fn func()) *Assert[any] {
	t.Helper()

	a := That[func()](t, fn)
	r := should.Catch(fn)
	if !r.Panicked {
		return narrowFailed[func(), any](a, "", comparison.NewRecordBuilder("fluent.Panics").
			Because("Function returned without panicking").
			Record())
	}
	return derive(a, "", r.Value)
}

// DoesNotPanic calls `fn` and checks that it returns normally.
func DoesNotPanic(t TestingTB, fn func()) {
	t.Helper()
	That(t, fn).Is(should.NotPanic)
}
