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
	"io/fs"
	"testing"

	"github.com/smarty/assertions"
)

var errSentinel = errors.New("sentinel")

type customErr struct{ code int }

func (c *customErr) Error() string { return fmt.Sprintf("custom %d", c.code) }

func TestErrLike(t *testing.T) {
	t.Parallel()

	t.Run("nil", shouldPass(ErrLike(nil)(nil)))
	t.Run("nil fail", shouldFail(ErrLike(nil)(errSentinel), "should.ErrLike", "sentinel"))
	t.Run("string", shouldPass(ErrLike("senti")(errSentinel)))
	t.Run("string fail", shouldFail(ErrLike("other")(errSentinel), `Substring: "other"`))
	t.Run("string nil error", shouldFail(ErrLike("other")(nil), "Actual error is nil"))
	t.Run("wrapped", shouldPass(ErrLike(errSentinel)(fmt.Errorf("ctx: %w", errSentinel))))
	t.Run("unwrapped", shouldFail(
		ErrLike(errSentinel)(fmt.Errorf("ctx: %s", errSentinel)),
		"Did you forget to wrap with %w?"))
	t.Run("bad target", func(t *testing.T) {
		mustPanic(t, "expected nil, string or error, got int", func() { ErrLike(1) })
	})
}

func TestErrorAs(t *testing.T) {
	t.Parallel()

	t.Run("found", shouldPass(ErrorAs[*customErr]()(fmt.Errorf("wrap: %w", &customErr{3}))))
	t.Run("fs", shouldPass(ErrorAs[*fs.PathError]()(&fs.PathError{Op: "open", Err: fs.ErrNotExist})))
	t.Run("missing", shouldFail(ErrorAs[*customErr]()(errSentinel), "should.ErrorAs[*should.customErr]"))
}

func TestPanics(t *testing.T) {
	t.Parallel()

	t.Run("panic", shouldPass(Panic(func() { panic("x") })))
	t.Run("panic nil value", shouldPass(Panic(func() { panic(nil) })))
	t.Run("no panic", shouldFail(Panic(func() {}), "should.Panic", "without panicking"))
	t.Run("not panic", shouldPass(NotPanic(func() {})))
	t.Run("not panic fail", shouldFail(NotPanic(func() { panic("boom") }), "should.NotPanic", `"boom"`))

	t.Run("like string", shouldPass(PanicLike("oo")(func() { panic("boom") })))
	t.Run("like error message", shouldPass(PanicLike("senti")(func() { panic(errSentinel) })))
	t.Run("like error", shouldPass(PanicLike(errSentinel)(func() { panic(fmt.Errorf("w: %w", errSentinel)) })))
	t.Run("like error not error", shouldFail(PanicLike(errSentinel)(func() { panic("sentinel") }), "should.PanicLike"))
	t.Run("like no panic", shouldFail(PanicLike("x")(func() {}), "without panicking"))
	t.Run("like mismatch", shouldFail(PanicLike("x")(func() { panic("boom") }), `Target: "x"`))
}

func TestConvey(t *testing.T) {
	t.Parallel()

	t.Run("pass", shouldPass(Convey(assertions.ShouldEqual, 5)(5)))
	t.Run("fail", shouldFail(Convey(assertions.ShouldEqual, 5)(4), "ShouldEqual FAILED"))
	t.Run("resemble", shouldPass(Convey(assertions.ShouldResemble, []int{1})([]int{1})))
	t.Run("contain key", shouldFail(Convey(assertions.ShouldContainKey, "b")(map[string]int{"a": 1}), "ShouldContainKey"))
}
