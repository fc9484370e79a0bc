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

package should

import (
	"math"
	"reflect"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

func nanFailure[T any](cmpName string, expected T) comparison.Func[T] {
	return func(T) *failure.Record {
		return comparison.NewRecordBuilder(cmpName, expected).
			Because("Expected value is NaN, which never compares equal to anything. Use should.BeNaN instead.").
			Record()
	}
}

// Equal returns a comparison.Func which checks if `actual` == `expected`.
//
// For pointers this compares addresses; use should.Match to compare what they
// point to.
func Equal[T comparable](expected T) comparison.Func[T] {
	const cmpName = "should.Equal"

	if isNaN(expected) {
		return nanFailure(cmpName, expected)
	}

	return func(actual T) *failure.Record {
		if actual == expected {
			return nil
		}

		rb := comparison.NewRecordBuilder(cmpName, expected)
		av, ev := reflect.ValueOf(actual), reflect.ValueOf(expected)
		if av.Kind() == reflect.String && ev.Kind() == reflect.String {
			rb.SmartStringDiff(av.String(), ev.String())
		} else {
			rb.SmartCmpDiff(actual, expected)
		}
		if reflect.TypeFor[T]().Kind() == reflect.Pointer {
			rb.Because("Pointers are compared by address, did you want should.Match?")
		}
		return rb.Record()
	}
}

// NotEqual returns a comparison.Func which checks if `actual` != `expected`.
func NotEqual[T comparable](expected T) comparison.Func[T] {
	const cmpName = "should.NotEqual"

	if isNaN(expected) {
		return nanFailure(cmpName, expected)
	}

	return func(actual T) *failure.Record {
		if actual != expected {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, expected).
			Actual(actual).
			Record()
	}
}

// BeNaN checks that a floating point value is NaN.
func BeNaN[T ~float32 | ~float64](actual T) *failure.Record {
	if math.IsNaN(float64(actual)) {
		return nil
	}
	return comparison.NewRecordBuilder("should.BeNaN", actual).
		Actual(actual).
		Record()
}

// BeIn returns a comparison.Func which checks that `actual` is one of
// `options`.
func BeIn[T comparable](options ...T) comparison.Func[T] {
	const cmpName = "should.BeIn"

	return func(actual T) *failure.Record {
		for _, option := range options {
			if actual == option {
				return nil
			}
		}
		return comparison.NewRecordBuilder(cmpName, actual).
			Actual(actual).
			AddFindingf("Options", "%#v", options).
			WarnIfLong().
			Record()
	}
}

// NotBeIn returns a comparison.Func which checks that `actual` is none of
// `options`.
func NotBeIn[T comparable](options ...T) comparison.Func[T] {
	const cmpName = "should.NotBeIn"

	return func(actual T) *failure.Record {
		for i, option := range options {
			if actual == option {
				return comparison.NewRecordBuilder(cmpName, actual).
					Actual(actual).
					AddFindingf("Index", "%d", i).
					Record()
			}
		}
		return nil
	}
}
