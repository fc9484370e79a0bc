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

	"github.com/mgutz/ansi"

	"go.chromium.org/fluent/internal/config"
)

var (
	// Colorize is the default for RenderCLI.Colorize.
	//
	// Initialized from the FLUENT_COLOR environment variable.
	Colorize = config.Get().Colorize

	// Verbose is the default for RenderCLI.Verbose.
	//
	// Initialized from the FLUENT_VERBOSE environment variable.
	Verbose = config.Get().Verbose
)

// DefaultRenderCLI returns a RenderCLI configured from Colorize and Verbose.
func DefaultRenderCLI() RenderCLI {
	return RenderCLI{Verbose: Verbose, Colorize: Colorize}
}

// RenderCLI renders failed comparisons as text for `go test` output.
type RenderCLI struct {
	// If true, will render all LevelWarn findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and how to see it.
	Verbose bool

	// If true, will add ANSI color codes to diff findings.
	Colorize bool
}

// Finding renders one Finding.
func (r RenderCLI) Finding(f *Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s [no value]", f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s [blank one-line value]", f.Name)
	}

	if f.Level > LevelError && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s [verbose value len=%d (set FLUENT_VERBOSE=1 to see)]", f.Name, valLen)
	}

	if len(f.Value) == 1 {
		return fmt.Sprintf("%s: %s", f.Name, f.Value[0])
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize && (f.Type == TypeCmpDiff || f.Type == TypeUnifiedDiff) {
		for i, line := range value {
			if code := diffLineColor(line); code != "" {
				value[i] = code + line + ansi.Reset
			}
		}
	}
	for i, line := range value {
		value[i] = "    " + line
	}
	return fmt.Sprintf("%s: \\\n%s", f.Name, strings.Join(value, "\n"))
}

// diffLineColor returns the color of one line of a diff of (expected,
// actual): removed (expected) lines are green, added (actual) lines red.
func diffLineColor(line string) string {
	switch {
	case strings.HasPrefix(line, "--- "):
		return ansi.LightGreen
	case strings.HasPrefix(line, "-"):
		return ansi.Green
	case strings.HasPrefix(line, "+++ "):
		return ansi.LightRed
	case strings.HasPrefix(line, "+"):
		return ansi.Red
	case strings.HasPrefix(line, "@@ "):
		return ansi.Red
	}
	return ""
}

// Render renders a whole failed comparison.
//
// The first line is "<name>[<type args>] FAILED", followed by one or more
// lines per finding.
func (r RenderCLI) Render(rb *RecordBuilder) string {
	header := rb.FullName() + " FAILED"
	if len(rb.Findings) == 0 {
		return header
	}

	lines := make([]string, 0, len(rb.Findings)+1)
	lines = append(lines, header)
	for _, finding := range rb.Findings {
		lines = append(lines, r.Finding(finding))
	}
	return strings.Join(lines, "\n")
}
