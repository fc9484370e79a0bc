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
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

func matchWith[T any](cmpName string, expected T, opts []cmp.Option) comparison.Func[T] {
	opts = append(append(comparison.DefaultCmpOptions(), cmpopts.EquateErrors()), opts...)

	return func(actual T) *failure.Record {
		diff := cmp.Diff(expected, actual, opts...)
		if diff == "" {
			return nil
		}
		return comparison.NewRecordBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Record()
	}
}

// Match returns a comparison.Func which checks that `actual` is deeply equal
// to `expected`, using go-cmp.
//
// Protobuf messages are compared by content (protocmp.Transform), and errors
// with errors.Is (cmpopts.EquateErrors). Extra cmp.Options are applied after
// those.
//
// Like cmp.Diff, this panics on structs with unexported fields unless an
// option (e.g. cmpopts.IgnoreUnexported) handles them. See Resemble.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	return matchWith("should.Match", expected, opts)
}

// Resemble is like Match, but also compares unexported fields of structs.
func Resemble[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	allowAll := cmp.Exporter(func(reflect.Type) bool { return true })
	return matchWith("should.Resemble", expected, append([]cmp.Option{allowAll}, opts...))
}
