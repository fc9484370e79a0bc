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

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

// nillable reports whether `actual` is nil, and whether its type can be
// nil at all. An untyped nil is nil.
func nillable(actual any) (isNil, canBeNil bool) {
	if actual == nil {
		return true, true
	}
	switch v := reflect.ValueOf(actual); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil(), true
	}
	return false, false
}

func notNillable(cmpName string, actual any) *failure.Record {
	return comparison.NewRecordBuilder(cmpName).
		Because("`%T` cannot be checked for nil", actual).
		Record()
}

// BeNil checks that `actual` is nil: either an untyped nil or a nil value of
// a nillable kind (pointer, slice, map, chan, func, interface).
//
// Errors are checked with ErrLikeError(nil), so the failure shows the error.
// This is stricter than BeZero: non-nillable values are failures, not
// checked for zero.
func BeNil(actual any) *failure.Record {
	const cmpName = "should.BeNil"

	if err, ok := actual.(error); ok {
		return ErrLikeError(nil)(err)
	}
	switch isNil, canBeNil := nillable(actual); {
	case !canBeNil:
		return notNillable(cmpName, actual)
	case isNil:
		return nil
	}
	return comparison.NewRecordBuilder(cmpName).Actual(actual).Record()
}

// NotBeNil checks that `actual` is a non-nil value of a nillable kind.
func NotBeNil(actual any) *failure.Record {
	const cmpName = "should.NotBeNil"

	switch isNil, canBeNil := nillable(actual); {
	case !canBeNil:
		return notNillable(cmpName, actual)
	case !isNil:
		return nil
	}
	return comparison.NewRecordBuilder(cmpName).Record()
}

func isZero(actual any) bool {
	return actual == nil || reflect.ValueOf(actual).IsZero()
}

// BeZero checks that reflect.Value.IsZero holds for `actual`. An untyped
// nil counts as zero.
func BeZero(actual any) *failure.Record {
	if isZero(actual) {
		return nil
	}
	return comparison.NewRecordBuilder("should.BeZero", actual).Actual(actual).Record()
}

// NotBeZero is the negation of BeZero.
func NotBeZero(actual any) *failure.Record {
	if !isZero(actual) {
		return nil
	}
	return comparison.NewRecordBuilder("should.NotBeZero", actual).Record()
}

// BeTrue checks that `actual` is true.
func BeTrue(actual bool) *failure.Record {
	if actual {
		return nil
	}
	return comparison.NewRecordBuilder("should.BeTrue").Record()
}

// BeFalse checks that `actual` is false.
func BeFalse(actual bool) *failure.Record {
	if !actual {
		return nil
	}
	return comparison.NewRecordBuilder("should.BeFalse").Record()
}
