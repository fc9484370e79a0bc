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
	"fmt"
	"strings"

	"go.chromium.org/fluent/failure"
)

// FindingLevel says how important a Finding is for understanding a failure.
type FindingLevel int

const (
	// LevelError findings are always rendered.
	LevelError FindingLevel = iota
	// LevelWarn findings are only rendered in verbose mode.
	LevelWarn
)

// FindingType is a rendering hint for a Finding's value.
type FindingType int

const (
	// TypeText is plain text.
	TypeText FindingType = iota
	// TypeCmpDiff is the output of cmp.Diff.
	TypeCmpDiff
	// TypeUnifiedDiff is a unified diff.
	TypeUnifiedDiff
	// TypeCharDiff is an inline character diff with [-deleted-] and {+added+}
	// markers.
	TypeCharDiff
)

// Finding is one named piece of information about a failure, e.g. the
// "Actual" value.
type Finding struct {
	Name  string
	Value []string
	Level FindingLevel
	Type  FindingType
}

// RecordBuilder builds a *failure.Record for a failed comparison.
//
// Example:
//
//	comparison.NewRecordBuilder("should.Equal", expected).
//	  Actual(actual).
//	  Expected(expected).
//	  Record()
type RecordBuilder struct {
	// Name is the name of the comparison, e.g. "should.Equal".
	Name string
	// TypeArgs are the rendered type arguments of the comparison.
	TypeArgs []string
	// Findings are rendered in order below the name.
	Findings []*Finding

	cause error
}

// NewRecordBuilder returns a RecordBuilder for the comparison `name`.
//
// The types of `typeArgs` (not their values) are rendered as the type
// arguments of the comparison, e.g. `should.Equal[int]`.
func NewRecordBuilder(name string, typeArgs ...any) *RecordBuilder {
	ret := &RecordBuilder{Name: name}
	for _, arg := range typeArgs {
		ret.TypeArgs = append(ret.TypeArgs, fmt.Sprintf("%T", arg))
	}
	return ret
}

// AddFinding adds a Finding with a pre-split value.
func (rb *RecordBuilder) AddFinding(name string, lines ...string) *RecordBuilder {
	rb.Findings = append(rb.Findings, &Finding{Name: name, Value: lines})
	return rb
}

// AddFindingf adds a Finding with a fmt.Sprintf formatted value.
//
// The value is split into lines.
func (rb *RecordBuilder) AddFindingf(name, format string, args ...any) *RecordBuilder {
	return rb.AddFinding(name, strings.Split(fmt.Sprintf(format, args...), "\n")...)
}

// Because adds a "Because" finding explaining the failure.
func (rb *RecordBuilder) Because(format string, args ...any) *RecordBuilder {
	return rb.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" finding rendering `actual`.
func (rb *RecordBuilder) Actual(actual any) *RecordBuilder {
	return rb.AddFindingf("Actual", "%s", FormatValue(actual))
}

// Expected adds an "Expected" finding rendering `expected`.
func (rb *RecordBuilder) Expected(expected any) *RecordBuilder {
	return rb.AddFindingf("Expected", "%s", FormatValue(expected))
}

// WarnIfLong marks the last Finding as LevelWarn if its value is long.
//
// "Long" is a value with multiple lines or a line with more than 30
// characters.
func (rb *RecordBuilder) WarnIfLong() *RecordBuilder {
	if len(rb.Findings) == 0 {
		return rb
	}
	last := rb.Findings[len(rb.Findings)-1]
	if isLong(last.Value) {
		last.Level = LevelWarn
	}
	return rb
}

// Cause attaches an underlying error to the resulting Record.
func (rb *RecordBuilder) Cause(err error) *RecordBuilder {
	rb.cause = err
	return rb
}

// Record renders the builder with the default RenderCLI and returns the
// resulting *failure.Record.
func (rb *RecordBuilder) Record() *failure.Record {
	return rb.RecordWith(DefaultRenderCLI())
}

// RecordWith renders the builder with `r`.
func (rb *RecordBuilder) RecordWith(r RenderCLI) *failure.Record {
	return &failure.Record{Message: r.Render(rb), Cause: rb.cause}
}

// FullName returns Name followed by the type arguments, if any.
func (rb *RecordBuilder) FullName() string {
	name := rb.Name
	if name == "" {
		name = "UNKNOWN COMPARISON"
	}
	if len(rb.TypeArgs) > 0 {
		name = fmt.Sprintf("%s[%s]", name, strings.Join(rb.TypeArgs, ", "))
	}
	return name
}

func isLong(lines []string) bool {
	if len(lines) > 1 {
		return true
	}
	return len(lines) == 1 && len(lines[0]) > 30
}

// FormatValue renders a value for an "Actual" or "Expected" finding.
//
// Errors render as their message, everything else in Go syntax.
func FormatValue(v any) string {
	if err, ok := v.(error); ok && err != nil {
		return fmt.Sprintf("%T(%q)", err, err.Error())
	}
	return fmt.Sprintf("%#v", v)
}
