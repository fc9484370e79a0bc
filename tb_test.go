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

package fluent

import (
	"testing"

	"go.chromium.org/fluent/internal/testhelper"
)

func TestStackRegistry(t *testing.T) {
	t.Parallel()

	var sub *testing.T
	t.Run("sub", func(t *testing.T) {
		sub = t

		s := stackOf(t)
		if stackOf(t) != s {
			t.Fatal("stackOf is not stable for one TB")
		}
		if _, ok := stacks.Load(t); !ok {
			t.Fatal("stack not registered")
		}

		ef := testhelper.NewExpectFailure(t)
		if stackOf(ef) == s {
			t.Fatal("two TBs share a stack")
		}
		ef.CheckPassed()
	})

	if _, ok := stacks.Load(sub); ok {
		t.Error("stack not released by Cleanup")
	}
}

func TestStackInsideAll(t *testing.T) {
	t.Parallel()

	ef := testhelper.NewExpectFailure(t)
	s := stackOf(ef)
	if s.Depth() != 0 {
		t.Fatalf("fresh stack has depth %d", s.Depth())
	}
	All(ef, func() {
		if s.Depth() != 1 {
			t.Errorf("depth inside All: %d", s.Depth())
		}
		All(ef, func() {
			if s.Depth() != 2 {
				t.Errorf("depth inside nested All: %d", s.Depth())
			}
		})
	})
	if s.Depth() != 0 {
		t.Errorf("depth after All: %d", s.Depth())
	}
	ef.CheckPassed()
}

func TestChildName(t *testing.T) {
	t.Parallel()

	cases := []struct{ parent, part, want string }{
		{"", "", ""},
		{"user", "", "user"},
		{"", "Name", "Name"},
		{"user", "Name", "user.Name"},
		{"tags", "[1]", "tags[1]"},
		{"", "[1]", "[1]"},
	}
	for _, tc := range cases {
		if got := childName(tc.parent, tc.part); got != tc.want {
			t.Errorf("childName(%q, %q) = %q, want %q", tc.parent, tc.part, got, tc.want)
		}
	}
}
