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

package logging

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	gol "github.com/op/go-logging"
)

var ansiRegexp = regexp.MustCompile(`\033\[.+?m`)

func normalizeLog(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, gol.INFO)

	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug message was logged at INFO: %q", buf.String())
	}

	l.Warningf("shown %d", 2)
	out := normalizeLog(buf.String())
	if !strings.Contains(out, "WARN") {
		t.Errorf("missing level in %q", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "shown 2") {
		t.Errorf("missing message in %q", out)
	}
}

func TestLevelOf(t *testing.T) {
	t.Parallel()

	if lvl := levelOf("DEBUG"); lvl != gol.DEBUG {
		t.Errorf("levelOf(DEBUG) = %v", lvl)
	}
	if lvl := levelOf("bogus"); lvl != gol.WARNING {
		t.Errorf("levelOf(bogus) = %v", lvl)
	}
}
