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

package fluent_test

import (
	"fmt"
	"strings"

	"go.chromium.org/fluent"
	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/should"
)

// fakeTB is a minimal TestingTB for the examples. In a real test, this would
// be *testing.T, *testing.B, etc.
type fakeTB struct{}

func (fakeTB) Helper()        {}
func (fakeTB) FailNow()       {}
func (fakeTB) Cleanup(func()) {}
func (fakeTB) Log(args ...any) {
	fmt.Println("--- FAIL: FakeTestName (0.00s)")
	for _, line := range strings.Split(fmt.Sprint(args...), "\n") {
		fmt.Println("    " + line)
	}
}

func disableColorization() func() {
	old := comparison.Colorize
	comparison.Colorize = false
	return func() { comparison.Colorize = old }
}

func Example() {
	defer disableColorization()()

	t := &fakeTB{}
	fluent.That(t, 1+1).Is(should.Equal(3))
	// Output:
	// --- FAIL: FakeTestName (0.00s)
	//     should.Equal[int] FAILED
	//     Actual: 2
	//     Expected: 3
}

func ExampleAll() {
	defer disableColorization()()

	t := &fakeTB{}
	fluent.AllLabeled(t, "user checks", func() {
		fluent.That(t, "bob").Named("name").Is(should.HavePrefix("j"))
		fluent.That(t, 17).Named("age").Is(should.BeGreaterThanOrEqual(18))
		fluent.That(t, true).Is(should.BeTrue)
	})
	// Output:
	// --- FAIL: FakeTestName (0.00s)
	//     user checks (2 failures):
	//     	- name: should.HavePrefix FAILED
	//     	  Actual: "bob"
	//     	  Prefix: "j"
	//     	- age: should.BeGreaterThanOrEqual[int] FAILED
	//     	  Actual: 17
	//     	  Expected: >= 18
}

func ExampleAssert_Given() {
	t := &fakeTB{}
	fluent.That(t, []string{"a", "b"}).Given(func(v []string) {
		if len(v) != 3 {
			fluent.Failf(t, "expected 3 items, got %s", fluent.Show(v))
		}
	})
	// Output:
	// --- FAIL: FakeTestName (0.00s)
	//     expected 3 items, got []string{"a", "b"}
}
