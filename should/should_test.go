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
	"strings"
	"testing"

	"go.chromium.org/fluent/failure"
)

func shouldPass(rec *failure.Record) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()

		if rec != nil {
			t.Errorf("expected pass, got failure:\n%s", rec.Message)
		}
	}
}

// shouldFail checks that `rec` is a failure whose message contains all of
// `substrings`.
func shouldFail(rec *failure.Record, substrings ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()

		if rec == nil {
			t.Fatal("expected failure, got pass")
		}
		for _, sub := range substrings {
			if !strings.Contains(rec.Message, sub) {
				t.Errorf("failure message missing %q:\n%s", sub, rec.Message)
			}
		}
	}
}

func mustPanic(t *testing.T, substr string, fn func()) {
	t.Helper()

	r := Catch(fn)
	if !r.Panicked {
		t.Fatal("expected panic")
	}
	if msg := strings.TrimSpace(stringify(r.Value)); !strings.Contains(msg, substr) {
		t.Fatalf("panic %q does not contain %q", msg, substr)
	}
}

func stringify(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
