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

// ErrLike returns a comparison.Func which checks an error against `target`.
//
// `target` may be:
//   - nil, in which case the error must be nil.
//   - a string, in which case the error message must contain it.
//   - an error, in which case errors.Is(actual, target) must hold.
//
// Any other `target` type is a programming error and panics.
func ErrLike(target any) comparison.Func[error] {
	switch x := target.(type) {
	case nil:
		return ErrLikeError(nil)
	case string:
		return ErrLikeString(x)
	case error:
		return ErrLikeError(x)
	}
	panic(fmt.Errorf("should.ErrLike: expected nil, string or error, got %T", target))
}

// ErrLikeString returns a comparison.Func which checks that an error is
// non-nil and its message contains `substr`.
func ErrLikeString(substr string) comparison.Func[error] {
	const cmpName = "should.ErrLike"

	return func(actual error) *failure.Record {
		if actual == nil {
			return comparison.NewRecordBuilder(cmpName).
				Because("Actual error is nil").
				AddFindingf("Substring", "%q", substr).
				Record()
		}
		if strings.Contains(actual.Error(), substr) {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName).
			Actual(actual).
			AddFindingf("Substring", "%q", substr).
			Cause(actual).
			Record()
	}
}

// ErrLikeError returns a comparison.Func which checks that
// errors.Is(actual, target).
//
// ErrLikeError(nil) checks that the error is nil.
func ErrLikeError(target error) comparison.Func[error] {
	const cmpName = "should.ErrLike"

	return func(actual error) *failure.Record {
		if errors.Is(actual, target) {
			return nil
		}
		rb := comparison.NewRecordBuilder(cmpName).
			Actual(actual).
			Expected(target).
			Cause(actual)
		if target != nil && actual != nil && strings.Contains(actual.Error(), target.Error()) {
			rb.Because("Actual message contains the target message, but the errors are unrelated. Did you forget to wrap with %%w?")
		}
		return rb.Record()
	}
}

// ErrorAs returns a comparison.Func which checks that some error in the chain
// of `actual` has the type E, as checked by errors.As.
func ErrorAs[E error]() comparison.Func[error] {
	return func(actual error) *failure.Record {
		var target E
		if errors.As(actual, &target) {
			return nil
		}
		return comparison.NewRecordBuilder("should.ErrorAs", target).
			Actual(actual).
			Cause(actual).
			Record()
	}
}
