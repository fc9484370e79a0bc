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
	"reflect"

	"go.chromium.org/fluent/channel"
	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

// childName joins a parent display name with a derived part. `part` starting
// with "[" is appended as is, anything else after a ".".
func childName(parent, part string) string {
	switch {
	case part == "":
		return parent
	case parent == "":
		return part
	case part[0] == '[':
		return parent + part
	}
	return parent + "." + part
}

func derive[T, R any](a *Assert[T], part string, value R) *Assert[R] {
	return &Assert[R]{t: a.t, stack: a.stack, name: childName(a.name, part), subject: value, ok: true}
}

// narrowFailed reports `rec` on `a` and returns an Assert[R] which ignores
// every predicate.
func narrowFailed[T, R any](a *Assert[T], part string, rec *failure.Record) *Assert[R] {
	a.t.Helper()

	a.report(rec)
	return &Assert[R]{t: a.t, stack: a.stack, name: childName(a.name, part)}
}

func skipped[T, R any](a *Assert[T], part string) *Assert[R] {
	return &Assert[R]{t: a.t, stack: a.stack, name: childName(a.name, part)}
}

// Transform returns an Assert on fn(subject), named `name`.
func Transform[T, R any](a *Assert[T], name string, fn func(T) R) *Assert[R] {
	if !a.ok {
		return skipped[T, R](a, name)
	}
	return derive(a, name, fn(a.subject))
}

// Prop returns an Assert on a property of the subject, e.g.
//
//	fluent.Prop(that, "Name", func(u *User) string { return u.Name })
//
// It is Transform; failures on the result are prefixed with the property
// path.
func Prop[T, R any](a *Assert[T], name string, get func(T) R) *Assert[R] {
	return Transform(a, name, get)
}

// NotNil checks that the subject pointer is not nil and returns an Assert on
// the pointed-to value.
func NotNil[T any](a *Assert[*T]) *Assert[T] {
	a.t.Helper()

	if !a.ok {
		return skipped[*T, T](a, "")
	}
	if a.subject == nil {
		return narrowFailed[*T, T](a, "", comparison.NewRecordBuilder("fluent.NotNil", a.subject).
			Because("expected a non-nil pointer").
			Record())
	}
	return derive(a, "", *a.subject)
}

// As checks that the subject has dynamic type R and returns an Assert on the
// converted value.
//
//	fluent.As[*fs.PathError](fluent.That[error](t, err))
func As[R, T any](a *Assert[T]) *Assert[R] {
	a.t.Helper()

	if !a.ok {
		return skipped[T, R](a, "")
	}
	v, ok := any(a.subject).(R)
	if !ok {
		return narrowFailed[T, R](a, "", comparison.NewRecordBuilder("fluent.As").
			Because("`%T` is not a `%s`", a.subject, reflect.TypeFor[R]()).
			Record())
	}
	return derive(a, "", v)
}

// IsError checks that the subject is a non-nil error and returns an Assert
// on it.
func IsError[T any](a *Assert[T]) *Assert[error] {
	a.t.Helper()

	if !a.ok {
		return skipped[T, error](a, "")
	}
	err, ok := any(a.subject).(error)
	if !ok || err == nil {
		return narrowFailed[T, error](a, "", comparison.NewRecordBuilder("fluent.IsError").
			Because("expected a non-nil error").
			Actual(a.subject).
			Record())
	}
	return derive(a, "", err)
}

// Index checks that `i` is in range and returns an Assert on the i'th
// element, named `name[i]`.
func Index[E any](a *Assert[[]E], i int) *Assert[E] {
	a.t.Helper()

	part := fmt.Sprintf("[%d]", i)
	if !a.ok {
		return skipped[[]E, E](a, part)
	}
	if i < 0 || i >= len(a.subject) {
		return narrowFailed[[]E, E](a, part, comparison.NewRecordBuilder("fluent.Index").
			Because("index %d out of range [0, %d)", i, len(a.subject)).
			Record())
	}
	return derive(a, part, a.subject[i])
}

// Key checks that the subject map has `key` and returns an Assert on its
// value, named `name[key]`.
func Key[K comparable, V any](a *Assert[map[K]V], key K) *Assert[V] {
	a.t.Helper()

	part := "[" + Show(key) + "]"
	if !a.ok {
		return skipped[map[K]V, V](a, part)
	}
	v, ok := a.subject[key]
	if !ok {
		return narrowFailed[map[K]V, V](a, part, comparison.NewRecordBuilder("fluent.Key", key).
			Because("key %s not found in map of %d entries", Show(key), len(a.subject)).
			Record())
	}
	return derive(a, part, v)
}

// Len returns an Assert on the length of the subject, which must be an
// array, chan, map, slice or string.
func Len[T any](a *Assert[T]) *Assert[int] {
	a.t.Helper()

	const part = "len()"
	if !a.ok {
		return skipped[T, int](a, part)
	}
	switch v := reflect.ValueOf(a.subject); v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return derive(a, part, v.Len())
	}
	return narrowFailed[T, int](a, part, comparison.NewRecordBuilder("fluent.Len").
		Because("`%T` does not have a length", a.subject).
		Record())
}

// Each calls `fn` for every element of the subject, named `name[i]`, in one
// collecting scope.
func Each[E any](a *Assert[[]E], fn func(*Assert[E])) *Assert[[]E] {
	a.t.Helper()

	if !a.ok {
		return a
	}
	label := ""
	if a.name != "" {
		label = "The following assertions on elements of " + a.name + " failed"
	}
	channel.Run(a.stack, label, func() {
		for i, elem := range a.subject {
			fn(derive(a, fmt.Sprintf("[%d]", i), elem))
		}
	})
	return a
}
