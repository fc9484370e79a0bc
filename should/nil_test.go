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
	"testing"
)

func TestBeNil(t *testing.T) {
	t.Parallel()

	t.Run("untyped nil", shouldPass(BeNil(nil)))
	t.Run("nil pointer", shouldPass(BeNil((*int)(nil))))
	t.Run("nil slice", shouldPass(BeNil([]string(nil))))
	t.Run("nil map", shouldPass(BeNil(map[int]int(nil))))

	t.Run("pointer", shouldFail(BeNil(new(int)), "should.BeNil", "Actual:"))
	t.Run("empty slice", shouldFail(BeNil([]string{}), "should.BeNil"))
	t.Run("int", shouldFail(BeNil(0), "`int` cannot be checked for nil"))
	t.Run("error", shouldFail(BeNil(errors.New("bad")), "should.ErrLike", "bad"))
}

func TestNotBeNil(t *testing.T) {
	t.Parallel()

	t.Run("pointer", shouldPass(NotBeNil(new(int))))
	t.Run("error", shouldPass(NotBeNil(errors.New("x"))))
	t.Run("untyped nil", shouldFail(NotBeNil(nil), "should.NotBeNil"))
	t.Run("nil chan", shouldFail(NotBeNil((chan int)(nil)), "should.NotBeNil"))
	t.Run("struct", shouldFail(NotBeNil(struct{}{}), "cannot be checked for nil"))
}

func TestBeZero(t *testing.T) {
	t.Parallel()

	t.Run("nil", shouldPass(BeZero(nil)))
	t.Run("int", shouldPass(BeZero(0)))
	t.Run("string", shouldPass(BeZero("")))
	t.Run("struct", shouldPass(BeZero(struct{ A int }{})))
	t.Run("non-zero", shouldFail(BeZero(7), "should.BeZero[int]", "Actual: 7"))

	t.Run("not zero", shouldPass(NotBeZero("x")))
	t.Run("not zero fail", shouldFail(NotBeZero(0), "should.NotBeZero"))
	t.Run("not zero nil", shouldFail(NotBeZero(nil), "should.NotBeZero"))
}

func TestBool(t *testing.T) {
	t.Parallel()

	t.Run("true", shouldPass(BeTrue(true)))
	t.Run("true fail", shouldFail(BeTrue(false), "should.BeTrue"))
	t.Run("false", shouldPass(BeFalse(false)))
	t.Run("false fail", shouldFail(BeFalse(true), "should.BeFalse"))
}
