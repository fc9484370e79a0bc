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
	"errors"
	"fmt"
	"strings"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

// Recovered is the result of calling a function under recover.
type Recovered struct {
	// Panicked is true if the function panicked, even with a nil value.
	Panicked bool
	Value    any
}

// Catch calls fn and reports whether and with what it panicked.
func Catch(fn func()) (ret Recovered) {
	ret.Panicked = true
	defer func() {
		if ret.Panicked {
			ret.Value = recover()
		}
	}()
	fn()
	ret.Panicked = false
	return
}

// Panic checks that `fn` panics with any value.
func Panic(fn func()) *failure.Record {
	if Catch(fn).Panicked {
		return nil
	}
	return comparison.NewRecordBuilder("should.Panic").
		Because("Function returned without panicking").
		Record()
}

// NotPanic checks that `fn` returns normally.
func NotPanic(fn func()) *failure.Record {
	r := Catch(fn)
	if !r.Panicked {
		return nil
	}
	rb := comparison.NewRecordBuilder("should.NotPanic").
		AddFindingf("Panic value", "%s", comparison.FormatValue(r.Value))
	if err, ok := r.Value.(error); ok {
		rb.Cause(err)
	}
	return rb.Record()
}

// PanicLike returns a comparison.Func which checks that a function panics
// with a value like `target`.
//
// `target` may be a string (the panic value, or its Error() for errors, must
// contain it) or an error (the panic value must be an error and
// errors.Is(value, target)).
func PanicLike(target any) comparison.Func[func()] {
	const cmpName = "should.PanicLike"

	switch target.(type) {
	case string, error:
	default:
		panic(fmt.Errorf("%s: expected string or error, got %T", cmpName, target))
	}

	return func(fn func()) *failure.Record {
		r := Catch(fn)
		if !r.Panicked {
			return comparison.NewRecordBuilder(cmpName).
				Because("Function returned without panicking").
				Record()
		}

		var ok bool
		switch x := target.(type) {
		case string:
			var msg string
			if err, isErr := r.Value.(error); isErr {
				msg = err.Error()
			} else {
				msg = fmt.Sprint(r.Value)
			}
			ok = strings.Contains(msg, x)
		case error:
			err, isErr := r.Value.(error)
			ok = isErr && errors.Is(err, x)
		}
		if ok {
			return nil
		}

		return comparison.NewRecordBuilder(cmpName).
			AddFindingf("Panic value", "%s", comparison.FormatValue(r.Value)).WarnIfLong().
			AddFindingf("Target", "%s", comparison.FormatValue(target)).WarnIfLong().
			Record()
	}
}
