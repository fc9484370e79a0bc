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
	"cmp"
	"fmt"
	"math"
	"reflect"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

func orderedCheck[T cmp.Ordered](cmpName, relation string, bound T, ok func(actual T) bool) comparison.Func[T] {
	return func(actual T) *failure.Record {
		if ok(actual) {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, bound).
			Actual(actual).
			AddFindingf("Expected", "%s %#v", relation, bound).
			Record()
	}
}

// BeGreaterThan checks that `actual` > `lower`.
func BeGreaterThan[T cmp.Ordered](lower T) comparison.Func[T] {
	return orderedCheck("should.BeGreaterThan", ">", lower, func(actual T) bool { return actual > lower })
}

// BeGreaterThanOrEqual checks that `actual` >= `lower`.
func BeGreaterThanOrEqual[T cmp.Ordered](lower T) comparison.Func[T] {
	return orderedCheck("should.BeGreaterThanOrEqual", ">=", lower, func(actual T) bool { return actual >= lower })
}

// BeLessThan checks that `actual` < `upper`.
func BeLessThan[T cmp.Ordered](upper T) comparison.Func[T] {
	return orderedCheck("should.BeLessThan", "<", upper, func(actual T) bool { return actual < upper })
}

// BeLessThanOrEqual checks that `actual` <= `upper`.
func BeLessThanOrEqual[T cmp.Ordered](upper T) comparison.Func[T] {
	return orderedCheck("should.BeLessThanOrEqual", "<=", upper, func(actual T) bool { return actual <= upper })
}

// BeBetween checks that `lower` <= `actual` <= `upper`.
func BeBetween[T cmp.Ordered](lower, upper T) comparison.Func[T] {
	const cmpName = "should.BeBetween"

	return func(actual T) *failure.Record {
		if lower <= actual && actual <= upper {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, lower).
			Actual(actual).
			AddFindingf("Expected", "in [%#v, %#v]", lower, upper).
			Record()
	}
}

// machineEpsilon is the gap between 1 and the next representable value of
// T.
func machineEpsilon[T ~float32 | ~float64]() T {
	var zero T
	if reflect.TypeOf(zero).Bits() == 32 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// AlmostEqual returns a comparison.Func which checks that a floating point
// value is within `epsilon` of `target`.
//
// `epsilon` is optional and defaults to the machine epsilon of T
// (FLT_EPSILON or DBL_EPSILON). More than one value, or a negative one, makes
// every comparison fail.
func AlmostEqual[T ~float32 | ~float64](target T, epsilon ...T) comparison.Func[T] {
	const cmpName = "should.AlmostEqual"

	var ep T
	var misuse string
	switch len(epsilon) {
	case 0:
		ep = machineEpsilon[T]()
	case 1:
		ep = epsilon[0]
		if ep < 0 {
			misuse = fmt.Sprintf("epsilon must not be negative, got %g", ep)
		}
	default:
		misuse = fmt.Sprintf("epsilon is a single optional value, got %d values", len(epsilon))
	}
	if misuse != "" {
		return func(actual T) *failure.Record {
			return comparison.NewRecordBuilder(cmpName, target).
				Because("%s", misuse).
				Record()
		}
	}

	return func(actual T) *failure.Record {
		delta := float64(actual) - float64(target)
		if math.Abs(delta) <= float64(ep) {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, target).
			Because("Actual value is %g away from the target.", delta).
			Actual(actual).
			AddFindingf("Expected", "%g ± %g", target, ep).
			Record()
	}
}
