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

// Package should contains comparison.Func implementations to use with
// fluent.That(...).Is(...).
//
// Every function here either is a comparison.Func (e.g. BeNil, BeTrue) or
// returns one (e.g. Equal(10), ContainSubstring("x")). They are pure: they
// return a *failure.Record on violation, and the caller decides whether it
// stops the test or gets collected.
package should
