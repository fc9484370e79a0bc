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

// Package channel implements the failure-reporting engine of the fluent
// library.
//
// Predicates never decide whether a violation should stop the test. They
// report a failure.Record to the current Channel of a Stack, and the Channel
// decides:
//
//   - Immediate raises the record right away (fail-fast).
//   - Collecting keeps it, and the scope which owns the Collecting channel
//     (see Run and Scoped) raises a single aggregate when it exits.
package channel

import (
	"sync"

	"go.chromium.org/fluent/failure"
)

// Channel receives reported failure records.
//
// The set of implementations is closed: Immediate and *Collecting.
type Channel interface {
	// Report delivers one violation to the channel.
	Report(rec *failure.Record)

	isChannel()
}

// Immediate is the fail-fast Channel.
//
// Report raises the record as a single failure.Error synchronously. It is the
// bottom of every Stack.
type Immediate struct {
	helper Helper
	raise  func(*failure.Error)
	note   func(string)
}

// Helper is the subset of testing.TB used to mark the library's frames as
// test helpers, so that failures point at the caller's line.
type Helper interface {
	Helper()
}

var _ Channel = Immediate{}

// Panic is the Immediate channel which raises by panicking with the
// *failure.Error. Use failure.Catch to recover it.
var Panic = Immediate{}

// NewImmediate returns an Immediate channel which raises through `raise`.
//
// `raise` should not return (e.g. it ends with testing.TB.FailNow). If it
// does return, Report returns too.
//
// If `helper` is not nil, its Helper method is called on the way to
// `raise`.
func NewImmediate(helper Helper, raise func(*failure.Error)) Immediate {
	return Immediate{helper: helper, raise: raise}
}

// WithNote returns a copy of `i` which writes diagnostics through `note`
// (e.g. testing.TB.Log).
//
// A scope which exits by panic or runtime.Goexit cannot raise its aggregate;
// its collected failures are passed to the note function of the Stack root
// instead.
func (i Immediate) WithNote(note func(msg string)) Immediate {
	i.note = note
	return i
}

// Report implements Channel.
func (i Immediate) Report(rec *failure.Record) {
	if i.helper != nil {
		i.helper.Helper()
	}
	err := failure.Single(rec)
	if i.raise == nil {
		panic(err)
	}
	i.raise(err)
}

func (Immediate) isChannel() {}

func (i Immediate) notify(msg string) {
	if i.note == nil {
		return
	}
	if i.helper != nil {
		i.helper.Helper()
	}
	i.note(msg)
}

// Collecting is the soft-assertion Channel.
//
// It keeps every reported record in order. Collecting channels only exist
// inside Run and Scoped, which raise the aggregate when the scope exits.
type Collecting struct {
	label string

	mu      sync.Mutex
	records []*failure.Record
}

var _ Channel = (*Collecting)(nil)

// Report implements Channel.
func (c *Collecting) Report(rec *failure.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

func (*Collecting) isChannel() {}

// Label returns the heading of the aggregate this channel raises.
func (c *Collecting) Label() string {
	if c.label == "" {
		return failure.DefaultLabel
	}
	return c.label
}

// Len returns the number of records collected so far.
func (c *Collecting) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// aggregate returns the aggregate error for the collected records, or nil if
// there are none.
func (c *Collecting) aggregate() *failure.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.records) == 0 {
		return nil
	}
	return failure.Aggregate(c.label, c.records)
}
