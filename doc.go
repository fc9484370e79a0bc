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

// Package fluent implements chainable assertions for Go tests.
//
// A test wraps a value with That and checks it with predicates from
// go.chromium.org/fluent/should (or any comparison.Func):
//
//	fluent.That(t, resp.Code).Is(should.Equal(200))
//	fluent.That(t, names).IsEqualTo([]string{"a", "b"})
//
// # Immediate and collected failures
//
// By default the first failed predicate logs its message and stops the test
// with t.FailNow.
//
// Inside All (or Assert.All, Each) failures are collected instead, and one
// aggregate failure is raised when the block returns:
//
//	fluent.All(t, func() {
//		fluent.That(t, user.Name).Is(should.Equal("bob"))
//		fluent.That(t, user.Age).Is(should.BeGreaterThan(18))
//	})
//
// reports, if both fail:
//
//	The following assertions failed (2 failures):
//		- should.Equal[string] FAILED
//		  ...
//		- should.BeGreaterThan[int] FAILED
//		  ...
//
// All blocks nest. An inner block which collected failures reports its
// aggregate as one failure of the enclosing block. The inner block does not
// raise, so wrapping it in failure.Catch catches nothing.
//
// If a block is left by t.FailNow (e.g. t.Fatal) or a panic, its collected
// failures cannot be raised; they are logged with t.Log instead.
//
// Scopes must nest. Running All on one test from several goroutines at once
// panics if the blocks overlap.
//
// # Narrowing
//
// Transformations such as NotNil, As, Index, Key and Prop return an Assert
// on a derived value. If the value cannot be derived (e.g. NotNil on a nil
// pointer) the failure is reported and the returned Assert ignores every
// further predicate.
//
// # Isolation
//
// Each testing.TB has its own scope stack, so parallel tests and subtests do
// not observe each other's All blocks. The stack for t is released in
// t.Cleanup.
package fluent
