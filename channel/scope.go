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

package channel

import (
	"errors"
	"fmt"

	"go.chromium.org/fluent/internal/logging"
)

// Run calls `block` in a new collecting scope on `s`.
//
// See Scoped.
func Run(s *Stack, label string, block func()) {
	if h := s.Root().helper; h != nil {
		h.Helper()
	}
	Scoped(s, label, func() struct{} {
		block()
		return struct{}{}
	})
}

// Scoped calls `block` in a new collecting scope on `s` and returns its
// result.
//
// While `block` runs, a fresh Collecting channel labeled `label` (or
// failure.DefaultLabel) is the current channel of `s`, so every record
// reported to `s` is collected instead of raised.
//
// The channel is popped when `block` exits, including by panic or
// runtime.Goexit. Then, if any record was collected, one aggregate
// failure.Error is reported to the channel which is now current:
//
//   - at top level, the root Immediate channel raises it;
//   - inside an enclosing scope, the enclosing Collecting channel records it
//     as a single violation.
//
// If `block` panics or calls runtime.Goexit (e.g. through t.FailNow), the
// unwinding continues after the pop, and the collected records are passed to
// the note function of the root (see Immediate.WithNote) and logged.
//
// If another scope was pushed on `s` after this one and is still active when
// `block` exits, Scoped panics with an error describing the misuse.
//
// A nil Stack has no scopes: `block` is called directly, and records
// reported to the nil Stack raise through Panic as usual.
func Scoped[R any](s *Stack, label string, block func() R) R {
	if s == nil {
		return block()
	}
	if h := s.Root().helper; h != nil {
		h.Helper()
	}

	c := &Collecting{label: label}
	ret := runPushed(s, c, block)

	if err := c.aggregate(); err != nil {
		s.Current().Report(err.AsRecord())
	}
	return ret
}

func runPushed[R any](s *Stack, c *Collecting, block func() R) R {
	root := s.Root()
	if root.helper != nil {
		root.helper.Helper()
	}
	log := logging.Get()

	s.push(c)
	log.Debugf("entered scope %q (depth %d)", c.Label(), s.Depth())

	returned := false
	defer func() {
		if root.helper != nil {
			root.helper.Helper()
		}
		misuse := s.pop(c)
		log.Debugf("exited scope %q (depth %d, %d failures)", c.Label(), s.Depth(), c.Len())
		if misuse != nil {
			msg := fmt.Sprintf("channel: scope %q: %s; scopes of one Stack must nest", c.Label(), misuse)
			if err := c.aggregate(); err != nil {
				msg += "; its failures:\n" + err.Error()
			}
			panic(errors.New(msg))
		}
		if !returned {
			if err := c.aggregate(); err != nil {
				msg := fmt.Sprintf("scope %q did not return, its failures were not raised:\n%s", c.Label(), err)
				root.notify(msg)
				log.Warningf("%s", msg)
			}
		}
	}()

	ret := block()
	returned = true
	return ret
}
