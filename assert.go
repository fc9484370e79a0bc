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
	"github.com/google/go-cmp/cmp"

	"go.chromium.org/fluent/channel"
	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
	"go.chromium.org/fluent/should"
)

// Assert wraps a subject value of a test.
//
// An Assert is never modified after creation: Named and the transformations
// return new values.
type Assert[T any] struct {
	t       TestingTB
	stack   *channel.Stack
	name    string
	subject T

	// ok is false if this Assert came from a failed narrowing. Such an Assert
	// ignores all predicates, since the failure was already reported.
	ok bool
}

// That wraps `subject` for assertions in the test `t`.
func That[T any](t TestingTB, subject T) *Assert[T] {
	return &Assert[T]{t: t, stack: stackOf(t), subject: subject, ok: true}
}

// Named returns a copy of `a` with a display name.
//
// Failures of a named Assert are prefixed with "name: ".
func (a *Assert[T]) Named(name string) *Assert[T] {
	ret := *a
	ret.name = name
	return &ret
}

// Subject returns the wrapped value.
func (a *Assert[T]) Subject() T { return a.subject }

// Name returns the display name, or "".
func (a *Assert[T]) Name() string { return a.name }

// OK returns false if `a` is the result of a failed narrowing.
func (a *Assert[T]) OK() bool { return a.ok }

func (a *Assert[T]) report(rec *failure.Record) {
	a.t.Helper()

	if a.name != "" {
		rec = &failure.Record{Message: a.name + ": " + rec.Message, Cause: rec.Cause}
	}
	a.stack.Current().Report(rec)
}

// Is checks the subject against every one of `cmps`, in order.
//
// Outside of an All block, the first failure stops the test.
func (a *Assert[T]) Is(cmps ...comparison.Func[T]) *Assert[T] {
	a.t.Helper()

	if !a.ok {
		return a
	}
	for _, cmp := range cmps {
		if rec := cmp(a.subject); rec != nil {
			a.report(rec)
		}
	}
	return a
}

// IsEqualTo checks that the subject is deeply equal to `expected`.
//
// It uses should.Match, so protobuf messages compare by content.
func (a *Assert[T]) IsEqualTo(expected T, opts ...cmp.Option) *Assert[T] {
	a.t.Helper()
	return a.Is(should.Match(expected, opts...))
}

// IsNotEqualTo checks that the subject is not deeply equal to `expected`.
func (a *Assert[T]) IsNotEqualTo(expected T, opts ...cmp.Option) *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record {
		if !cmp.Equal(expected, actual, append(comparison.DefaultCmpOptions(), opts...)...) {
			return nil
		}
		return comparison.NewRecordBuilder("fluent.IsNotEqualTo", expected).
			Actual(actual).WarnIfLong().
			Record()
	})
}

// IsIn checks that the subject is deeply equal to one of `options`.
func (a *Assert[T]) IsIn(options ...T) *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record {
		for _, option := range options {
			if cmp.Equal(option, actual, comparison.DefaultCmpOptions()...) {
				return nil
			}
		}
		return comparison.NewRecordBuilder("fluent.IsIn", actual).
			Actual(actual).WarnIfLong().
			AddFindingf("Options", "%s", comparison.FormatValue(options)).WarnIfLong().
			Record()
	})
}

// IsNotIn checks that the subject is deeply equal to none of `options`.
func (a *Assert[T]) IsNotIn(options ...T) *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record {
		for i, option := range options {
			if cmp.Equal(option, actual, comparison.DefaultCmpOptions()...) {
				return comparison.NewRecordBuilder("fluent.IsNotIn", actual).
					Actual(actual).WarnIfLong().
					AddFindingf("Index", "%d", i).
					Record()
			}
		}
		return nil
	})
}

// Satisfies checks that `pred` returns true for the subject.
//
// `description` completes the sentence "expected to ...".
func (a *Assert[T]) Satisfies(pred func(T) bool, description string) *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record {
		if pred(actual) {
			return nil
		}
		return comparison.NewRecordBuilder("fluent.Satisfies").
			Because("expected to %s", description).
			Actual(actual).WarnIfLong().
			Record()
	})
}

// IsZero checks that the subject is the zero value of its type.
func (a *Assert[T]) IsZero() *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record { return should.BeZero(actual) })
}

// IsNotZero checks that the subject is not the zero value of its type.
func (a *Assert[T]) IsNotZero() *Assert[T] {
	a.t.Helper()
	return a.Is(func(actual T) *failure.Record { return should.NotBeZero(actual) })
}

// Given calls `fn` with the subject.
//
// It is the escape hatch for checks which have no predicate: `fn` reports
// violations with Fail or Failf. It is skipped if `a` came from a failed
// narrowing.
func (a *Assert[T]) Given(fn func(T)) *Assert[T] {
	a.t.Helper()

	if a.ok {
		fn(a.subject)
	}
	return a
}

// All calls `block` with `a`, collecting its failures into one aggregate.
func (a *Assert[T]) All(block func(*Assert[T])) *Assert[T] {
	a.t.Helper()
	return a.AllLabeled("", block)
}

// AllLabeled is All with a custom aggregate label.
func (a *Assert[T]) AllLabeled(label string, block func(*Assert[T])) *Assert[T] {
	a.t.Helper()

	if !a.ok {
		return a
	}
	if label == "" && a.name != "" {
		label = "The following assertions on " + a.name + " failed"
	}
	channel.Run(a.stack, label, func() { block(a) })
	return a
}
