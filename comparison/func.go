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

// Package comparison defines the predicate contract of the fluent library,
// and helpers to build readable failure records.
package comparison

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"go.chromium.org/fluent/failure"
)

// Func takes in a value-to-be-compared and returns a *failure.Record if the
// value does not meet the expectation of this comparison.Func.
//
// Example:
//
//	func BeTrue(value bool) *failure.Record {
//	  if !value {
//	    return comparison.NewRecordBuilder("should.BeTrue").Record()
//	  }
//	  return nil
//	}
//
// In this example, BeTrue is a comparison.Func[bool].
//
// A Func never raises anything by itself. The caller reports the returned
// record to the current failure channel.
type Func[T any] func(T) *failure.Record

// FullSourceContextFilenames makes WithLineContext render full paths instead
// of base names.
var FullSourceContextFilenames = false

// WithLineContext returns a transformed Func which appends an "(at
// file:line)" line to its failure records, pointing at the frame calling
// WithLineContext, plus skipFrames[0] (if provided).
//
// Example:
//
//	fluent.That(t, actual.field).Is(should.Equal(10).WithLineContext())
//
// This is handy inside test helper functions which call t.Helper(): the
// failure still points at the helper's caller, and the extra line points at
// the specific check inside the helper.
func (cmp Func[T]) WithLineContext(skipFrames ...int) Func[T] {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"comparison.Func.WithLineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return cmp
	}
	if !FullSourceContextFilenames {
		filename = filepath.Base(filename)
	}

	return func(actual T) *failure.Record {
		ret := cmp(actual)
		if ret != nil {
			ret = &failure.Record{
				Message: fmt.Sprintf("%s\n(at %s:%d)", ret.Message, filename, lineno),
				Cause:   ret.Cause,
			}
		}
		return ret
	}
}

// CastCompare converts `actual` to T and then applies this Func.
//
// The conversion succeeds if `actual` already is a T, if `actual` is an
// untyped nil and T is nillable, or if `actual` and T are both numeric and
// the conversion is lossless (e.g. `uint8(100)` to `int`). Otherwise this
// returns a failure from "builtin.LosslessConvertTo[T]".
func (cmp Func[T]) CastCompare(actual any) *failure.Record {
	if v, ok := actual.(T); ok {
		return cmp(v)
	}

	target := reflect.TypeFor[T]()
	if actual == nil {
		switch target.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			var zero T
			return cmp(zero)
		}
		return conversionFailure[T](actual)
	}

	av := reflect.ValueOf(actual)
	if !isNumeric(av.Kind()) || !isNumeric(target.Kind()) {
		return conversionFailure[T](actual)
	}
	cv := av.Convert(target)
	if cv.Convert(av.Type()).Interface() != actual {
		return conversionFailure[T](actual)
	}
	return cmp(cv.Interface().(T))
}

func conversionFailure[T any](actual any) *failure.Record {
	return NewRecordBuilder(fmt.Sprintf("builtin.LosslessConvertTo[%s]", reflect.TypeFor[T]())).
		Because("cannot losslessly convert %T", actual).
		Actual(actual).
		Record()
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
