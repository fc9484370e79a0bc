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

func TestHaveLength(t *testing.T) {
	t.Parallel()

	t.Run("slice", shouldPass(HaveLength(2)([]int{1, 2})))
	t.Run("map", shouldPass(HaveLength(1)(map[string]int{"a": 1})))
	t.Run("string", shouldPass(HaveLength(3)("abc")))
	t.Run("array pointer", shouldPass(HaveLength(4)(&[4]int{})))
	t.Run("nil slice", shouldPass(HaveLength(0)([]int(nil))))
	t.Run("wrong", shouldFail(HaveLength(1)([]int{1, 2}), "should.HaveLength", "Expected: 1", "Actual: 2"))
	t.Run("no length", shouldFail(HaveLength(1)(5), "`int` does not have a length"))
}

func TestBeEmpty(t *testing.T) {
	t.Parallel()

	t.Run("empty", shouldPass(BeEmpty("")))
	t.Run("empty map", shouldPass(BeEmpty(map[int]int{})))
	t.Run("full", shouldFail(BeEmpty([]int{1}), "should.BeEmpty", "Length: 1"))
	t.Run("no length", shouldFail(BeEmpty(struct{}{}), "does not have a length"))

	t.Run("not empty", shouldPass(NotBeEmpty([]string{"a"})))
	t.Run("not empty fail", shouldFail(NotBeEmpty(""), "should.NotBeEmpty"))
}

func TestContain(t *testing.T) {
	t.Parallel()

	t.Run("contain", shouldPass(Contain(2)([]int{1, 2, 3})))
	t.Run("contain fail", shouldFail(Contain("z")([]string{"a"}), "should.Contain[string]", `Item: "z"`))
	t.Run("not contain", shouldPass(NotContain(5)([]int{1, 2, 3})))
	t.Run("not contain fail", shouldFail(NotContain(3)([]int{1, 2, 3}), "should.NotContain", "Index: 2"))

	t.Run("key", shouldPass(ContainKey[string, int]("a")(map[string]int{"a": 1})))
	t.Run("key fail", shouldFail(ContainKey[string, int]("b")(map[string]int{"a": 1}), "should.ContainKey", `Key: "b"`, "Map size: 1"))
}
