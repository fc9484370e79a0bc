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

package comparison

import (
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"google.golang.org/protobuf/testing/protocmp"
)

// DefaultCmpOptions returns the cmp.Options used by SmartCmpDiff and by
// should.Match. It includes protocmp.Transform, so protobuf messages compare
// by content.
func DefaultCmpOptions() []cmp.Option {
	return []cmp.Option{protocmp.Transform()}
}

// Diff returns cmp.Diff(expected, actual) with DefaultCmpOptions plus `opts`.
//
// If cmp panics (e.g. because of unexported fields), this returns "".
func Diff(expected, actual any, opts ...cmp.Option) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual, append(DefaultCmpOptions(), opts...)...)
}

// AddCmpDiff adds a 'Diff' finding which is type hinted to be the output of
// cmp.Diff.
//
// The diff is split into multiple lines, but is otherwise untouched.
func (rb *RecordBuilder) AddCmpDiff(diff string) *RecordBuilder {
	diff = strings.TrimRight(diff, "\n")
	if diff == "" {
		return rb
	}
	rb.Findings = append(rb.Findings, &Finding{
		Name:  "Diff",
		Value: strings.Split(diff, "\n"),
		Type:  TypeCmpDiff,
	})
	return rb
}

// AddUnifiedDiff adds a 'Diff' finding with a unified line diff from
// `expected` to `actual`.
func (rb *RecordBuilder) AddUnifiedDiff(expected, actual string) *RecordBuilder {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if err != nil || diff == "" {
		return rb
	}
	rb.Findings = append(rb.Findings, &Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimRight(diff, "\n"), "\n"),
		Type:  TypeUnifiedDiff,
	})
	return rb
}

// AddCharDiff adds a 'Diff' finding with an inline character diff from
// `expected` to `actual`.
//
// Deleted text is rendered as `[-text-]` and inserted text as `{+text+}`.
func (rb *RecordBuilder) AddCharDiff(expected, actual string) *RecordBuilder {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		default:
			buf.WriteString(d.Text)
		}
	}
	rb.Findings = append(rb.Findings, &Finding{
		Name:  "Diff",
		Value: strings.Split(buf.String(), "\n"),
		Type:  TypeCharDiff,
	})
	return rb
}

// SmartCmpDiff does a couple things:
//   - It adds "Actual" and "Expected" findings. If they have long renderings,
//     they will be marked as LevelWarn.
//   - If either text representation is long, or they are identical, this will
//     also add a Diff, using cmp.Diff with DefaultCmpOptions and `extraCmpOpts`.
//
// "Long" is defined as a value with multiple lines or which has > 30
// characters in one line.
func (rb *RecordBuilder) SmartCmpDiff(actual, expected any, extraCmpOpts ...cmp.Option) *RecordBuilder {
	rb = rb.Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong()

	added := rb.Findings[len(rb.Findings)-2:]
	hasLong := false
	for _, finding := range added {
		if finding.Level == LevelWarn {
			hasLong = true
			break
		}
	}

	if hasLong || slices.Equal(added[0].Value, added[1].Value) {
		rb.AddCmpDiff(Diff(expected, actual, extraCmpOpts...))
	}

	return rb
}

// SmartStringDiff adds "Actual" and "Expected" findings for two strings, and
// a Diff if they are long: a unified diff for multi-line strings, otherwise
// a character diff.
func (rb *RecordBuilder) SmartStringDiff(actual, expected string) *RecordBuilder {
	rb = rb.Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong()

	switch {
	case strings.Contains(actual, "\n") || strings.Contains(expected, "\n"):
		rb.AddUnifiedDiff(expected, actual)
	case len(actual) > 30 || len(expected) > 30:
		rb.AddCharDiff(expected, actual)
	}
	return rb
}
