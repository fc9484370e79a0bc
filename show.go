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
	"fmt"
	"reflect"
	"strconv"

	"github.com/kr/pretty"
)

// Show renders `v` for failure messages.
//
//   - nil is "<nil>".
//   - strings are quoted: "abc".
//   - int, float64 and bool print bare; other numeric types name their type, e.g.
//     int64(3), uint8(255), float32(1.5). A rune is an int32.
//   - errors are error("message").
//   - everything else is rendered by github.com/kr/pretty.
func Show(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case int, bool:
		return fmt.Sprint(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case error:
		return fmt.Sprintf("error(%q)", x.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s(%q)", rv.Type(), rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%s(%v)", rv.Type(), v)
	}
	return pretty.Sprintf("%# v", v)
}
