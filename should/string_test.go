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

func TestStrings(t *testing.T) {
	t.Parallel()

	t.Run("contain", shouldPass(ContainSubstring("ell")("hello")))
	t.Run("contain fail", shouldFail(ContainSubstring("xyz")("hello"), "should.ContainSubstring", `Substring: "xyz"`))
	t.Run("not contain", shouldPass(NotContainSubstring("xyz")("hello")))
	t.Run("not contain fail", shouldFail(NotContainSubstring("ell")("hello"), "should.NotContainSubstring"))
	t.Run("prefix", shouldPass(HavePrefix("he")("hello")))
	t.Run("prefix fail", shouldFail(HavePrefix("lo")("hello"), "should.HavePrefix", `Prefix: "lo"`))
	t.Run("suffix", shouldPass(HaveSuffix("lo")("hello")))
	t.Run("suffix fail", shouldFail(HaveSuffix("he")("hello"), "should.HaveSuffix"))
}

func TestMatchRegexp(t *testing.T) {
	t.Parallel()

	t.Run("match", shouldPass(MatchRegexp(`^h.*o$`)("hello")))
	t.Run("no match", shouldFail(MatchRegexp(`^\d+$`)("hello"), "should.MatchRegexp", `Pattern: "^\\d+$"`))
	t.Run("bad pattern", func(t *testing.T) {
		rec := MatchRegexp(`(`)("hello")
		shouldFail(rec, "Invalid pattern")(t)
		if rec.Cause == nil {
			t.Error("expected compile error as cause")
		}
	})
}
