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

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		env      map[string]string
		tty      bool
		expected Settings
	}{
		{
			name:     "defaults without tty",
			expected: Settings{LogLevel: DefaultLogLevel},
		},
		{
			name:     "defaults with tty",
			tty:      true,
			expected: Settings{Colorize: true, LogLevel: DefaultLogLevel},
		},
		{
			name:     "color never beats tty",
			env:      map[string]string{ColorEnv: "never"},
			tty:      true,
			expected: Settings{LogLevel: DefaultLogLevel},
		},
		{
			name:     "color always",
			env:      map[string]string{ColorEnv: " Always "},
			expected: Settings{Colorize: true, LogLevel: DefaultLogLevel},
		},
		{
			name:     "auto follows tty",
			env:      map[string]string{ColorEnv: "auto"},
			expected: Settings{LogLevel: DefaultLogLevel},
		},
		{
			name:     "verbose and level",
			env:      map[string]string{VerboseEnv: "1", LogLevelEnv: "debug"},
			expected: Settings{Verbose: true, LogLevel: "DEBUG"},
		},
		{
			name:     "bad verbose is ignored",
			env:      map[string]string{VerboseEnv: "sure"},
			expected: Settings{LogLevel: DefaultLogLevel},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(env(tc.env), tc.tty)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("unexpected settings (-want +got):\n%s", diff)
			}
		})
	}
}
