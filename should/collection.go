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
	"reflect"
	"slices"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

// lengthOf returns the length of `actual` if it is an array, chan, map, slice
// or string (or a pointer to an array).
func lengthOf(actual any) (int, bool) {
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len(), true
	case reflect.Pointer:
		if v.Type().Elem().Kind() == reflect.Array {
			return v.Type().Elem().Len(), true
		}
	}
	return 0, false
}

// HaveLength returns a comparison.Func which checks the length of a value
// which supports len().
func HaveLength(expected int) comparison.Func[any] {
	const cmpName = "should.HaveLength"

	return func(actual any) *failure.Record {
		n, ok := lengthOf(actual)
		if !ok {
			return comparison.NewRecordBuilder(cmpName).
				Because("`%T` does not have a length", actual).
				Record()
		}
		if n == expected {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName).
			AddFindingf("Expected", "%d", expected).
			AddFindingf("Actual", "%d", n).
			Record()
	}
}

// BeEmpty checks that `actual` has a length of 0.
func BeEmpty(actual any) *failure.Record {
	const cmpName = "should.BeEmpty"

	n, ok := lengthOf(actual)
	if !ok {
		return comparison.NewRecordBuilder(cmpName).
			Because("`%T` does not have a length", actual).
			Record()
	}
	if n == 0 {
		return nil
	}
	return comparison.NewRecordBuilder(cmpName).
		Actual(actual).WarnIfLong().
		AddFindingf("Length", "%d", n).
		Record()
}

// NotBeEmpty checks that `actual` has a length greater than 0.
func NotBeEmpty(actual any) *failure.Record {
	const cmpName = "should.NotBeEmpty"

	n, ok := lengthOf(actual)
	if !ok {
		return comparison.NewRecordBuilder(cmpName).
			Because("`%T` does not have a length", actual).
			Record()
	}
	if n > 0 {
		return nil
	}
	return comparison.NewRecordBuilder(cmpName).Record()
}

// Contain returns a comparison.Func which checks that a slice contains
// `item`.
func Contain[T comparable](item T) comparison.Func[[]T] {
	const cmpName = "should.Contain"

	return func(actual []T) *failure.Record {
		if slices.Contains(actual, item) {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, item).
			AddFindingf("Item", "%s", comparison.FormatValue(item)).
			Actual(actual).WarnIfLong().
			Record()
	}
}

// NotContain returns a comparison.Func which checks that a slice does not
// contain `item`.
func NotContain[T comparable](item T) comparison.Func[[]T] {
	const cmpName = "should.NotContain"

	return func(actual []T) *failure.Record {
		idx := slices.Index(actual, item)
		if idx < 0 {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, item).
			AddFindingf("Item", "%s", comparison.FormatValue(item)).
			AddFindingf("Index", "%d", idx).
			Record()
	}
}

// ContainKey returns a comparison.Func which checks that a map has `key`.
func ContainKey[K comparable, V any](key K) comparison.Func[map[K]V] {
	const cmpName = "should.ContainKey"

	return func(actual map[K]V) *failure.Record {
		if _, ok := actual[key]; ok {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, key).
			AddFindingf("Key", "%s", comparison.FormatValue(key)).
			AddFindingf("Map size", "%d", len(actual)).
			Record()
	}
}
