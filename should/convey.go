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
	"encoding/json"
	"reflect"
	"runtime"
	"strings"

	"go.chromium.org/fluent/comparison"
	"go.chromium.org/fluent/failure"
)

// ConveyAssertion is the signature of the assertions in
// github.com/smarty/assertions (e.g. assertions.ShouldResemble).
//
// They return "" on success and a failure message otherwise.
type ConveyAssertion func(actual any, expected ...any) string

// conveyFailure is the JSON shape smarty/assertions uses for failure messages
// carrying expected and actual renderings.
type conveyFailure struct {
	Message  string `json:"Message"`
	Expected string `json:"Expected"`
	Actual   string `json:"Actual"`
}

func conveyName(fn ConveyAssertion) string {
	name := "should.Convey"
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		full := f.Name()
		name = full[strings.LastIndexByte(full, '.')+1:]
	}
	return name
}

// Convey adapts a smarty/assertions style assertion (e.g.
// assertions.ShouldAlmostEqual) into a comparison.Func.
//
// `expected` is passed through to the assertion unchanged.
func Convey(fn ConveyAssertion, expected ...any) comparison.Func[any] {
	cmpName := conveyName(fn)

	return func(actual any) *failure.Record {
		msg := fn(actual, expected...)
		if msg == "" {
			return nil
		}

		rb := comparison.NewRecordBuilder(cmpName)
		var parsed conveyFailure
		if err := json.Unmarshal([]byte(msg), &parsed); err == nil && parsed.Message != "" {
			rb.Because("%s", parsed.Message)
			if parsed.Expected != "" || parsed.Actual != "" {
				rb.AddFinding("Expected", parsed.Expected).WarnIfLong()
				rb.AddFinding("Actual", parsed.Actual).WarnIfLong()
			}
		} else {
			rb.Because("%s", msg)
		}
		return rb.Record()
	}
}
