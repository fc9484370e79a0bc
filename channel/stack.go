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
	"context"
	"fmt"
	"sync"
)

// Stack tracks which Channel is current for one logical execution context
// (typically one test).
//
// The bottom of the Stack is its root Immediate channel, and every active
// collecting scope sits on top of it, innermost last. Only Run and Scoped
// push and pop.
//
// Current and the channels it returns may be used from several goroutines,
// but scopes must nest: a scope has to exit before the scope which was
// pushed before it. Overlapping scopes, e.g. two goroutines running Run on
// one Stack, panic when the outer one exits first.
//
// Never share a Stack between independent tests: a soft-assertion scope of
// one would swallow the failures of the other. A nil *Stack behaves as an
// empty Stack rooted at Panic.
type Stack struct {
	root Immediate

	mu     sync.Mutex
	scopes []*Collecting
}

// NewStack returns an empty Stack rooted at `root`.
func NewStack(root Immediate) *Stack {
	return &Stack{root: root}
}

// Root returns the Immediate channel at the bottom of the Stack.
func (s *Stack) Root() Immediate {
	if s == nil {
		return Panic
	}
	return s.root
}

// Current returns the innermost active channel, or Root if no scope is
// active.
func (s *Stack) Current() Channel {
	if s == nil {
		return Panic
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.scopes) == 0 {
		return s.root
	}
	return s.scopes[len(s.scopes)-1]
}

// Depth returns the number of active collecting scopes.
func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scopes)
}

func (s *Stack) push(c *Collecting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scopes = append(s.scopes, c)
}

// pop removes `c`, which should be the innermost channel.
//
// Popping an empty Stack does nothing. If `c` is not innermost, it is still
// removed, so the channels pushed after it stay current, and pop returns an
// error.
func (s *Stack) pop(c *Collecting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.scopes)
	if n == 0 {
		return nil
	}
	if s.scopes[n-1] == c {
		s.scopes[n-1] = nil
		s.scopes = s.scopes[:n-1]
		return nil
	}
	for i := n - 2; i >= 0; i-- {
		if s.scopes[i] == c {
			copy(s.scopes[i:], s.scopes[i+1:])
			s.scopes[n-1] = nil
			s.scopes = s.scopes[:n-1]
			return fmt.Errorf("scope exited while %d scope(s) pushed after it were still active", n-1-i)
		}
	}
	return fmt.Errorf("scope exited but is not on the stack")
}

type stackKey struct{}

// NewContext returns a context carrying `s`.
func NewContext(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the Stack carried by `ctx`, or nil.
func FromContext(ctx context.Context) *Stack {
	s, _ := ctx.Value(stackKey{}).(*Stack)
	return s
}
