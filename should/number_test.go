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
	"testing"
)

func TestOrdered(t *testing.T) {
	t.Parallel()

	t.Run("greater", shouldPass(BeGreaterThan(1)(2)))
	t.Run("greater fail", shouldFail(BeGreaterThan(2)(2), "should.BeGreaterThan[int]", "Expected: > 2"))
	t.Run("greater or equal", shouldPass(BeGreaterThanOrEqual(2)(2)))
	t.Run("greater or equal fail", shouldFail(BeGreaterThanOrEqual(2)(1), "Expected: >= 2"))
	t.Run("less", shouldPass(BeLessThan("b")("a")))
	t.Run("less fail", shouldFail(BeLessThan("b")("c"), `Expected: < "b"`))
	t.Run("less or equal", shouldPass(BeLessThanOrEqual(1.5)(1.5)))
	t.Run("less or equal fail", shouldFail(BeLessThanOrEqual(1.5)(2), "Expected: <= 1.5"))

	t.Run("between", shouldPass(BeBetween(1, 3)(3)))
	t.Run("between low", shouldPass(BeBetween(1, 3)(1)))
	t.Run("between fail", shouldFail(BeBetween(1, 3)(4), "should.BeBetween[int]", "Expected: in [1, 3]", "Actual: 4"))
}

func TestAlmostEqual(t *testing.T) {
	t.Parallel()

	t.Run("exact", shouldPass(AlmostEqual(1.0)(1.0)))
	t.Run("default epsilon", shouldFail(AlmostEqual(1.0)(1.001), "should.AlmostEqual[float64]", "away from the target"))
	t.Run("explicit epsilon", shouldPass(AlmostEqual(1.0, 0.01)(1.001)))
	t.Run("float32", shouldPass(AlmostEqual(float32(0.3))(float32(0.1)+float32(0.2))))
	t.Run("negative epsilon", shouldFail(AlmostEqual(1.0, -1)(1.0), "must not be negative"))
	t.Run("too many epsilons", shouldFail(AlmostEqual(1.0, 1, 2)(1.0), "single optional value, got 2"))
}
