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
	"regexp"
	"strings"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

func stringCheck(cmpName, findingName, arg string, ok func(actual string) bool) comparison.Func[string] {
	return func(actual string) *failure.Record {
		if ok(actual) {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName).
			Actual(actual).WarnIfLong().
			AddFindingf(findingName, "%q", arg).WarnIfLong().
			Record()
	}
}

// ContainSubstring returns a comparison.Func which checks to see if a string
// contains `substr`.
func ContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.ContainSubstring", "Substring", substr, func(actual string) bool {
		return strings.Contains(actual, substr)
	})
}

// NotContainSubstring returns a comparison.Func which checks to see if a
// string does not contain `substr`.
func NotContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.NotContainSubstring", "Substring", substr, func(actual string) bool {
		return !strings.Contains(actual, substr)
	})
}

// HavePrefix returns a comparison.Func which checks to see if a string
// starts with `prefix`.
func HavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.HavePrefix", "Prefix", prefix, func(actual string) bool {
		return strings.HasPrefix(actual, prefix)
	})
}

// HaveSuffix returns a comparison.Func which checks to see if a string
// ends with `suffix`.
func HaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.HaveSuffix", "Suffix", suffix, func(actual string) bool {
		return strings.HasSuffix(actual, suffix)
	})
}

// MatchRegexp returns a comparison.Func which checks that a string matches
// the regular expression `pattern`.
//
// An invalid pattern fails every comparison, with the compile error as cause.
func MatchRegexp(pattern string) comparison.Func[string] {
	const cmpName = "should.MatchRegexp"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(string) *failure.Record {
			return comparison.NewRecordBuilder(cmpName).
				Because("Invalid pattern %q: %s", pattern, err).
				Cause(err).
				Record()
		}
	}

	return stringCheck(cmpName, "Pattern", pattern, re.MatchString)
}
