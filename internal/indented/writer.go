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

// Package indented implements an io.Writer which prefixes every line written
// through it.
package indented

import (
	"bytes"
	"io"
	"strings"
)

// Writer inserts Prefix before each line.
//
// Blank lines are written as-is, without a Prefix.
type Writer struct {
	io.Writer // underlying writer.

	// Prefix is written at the beginning of every non-blank line.
	Prefix string

	// Continue indicates that the underlying writer is currently in the middle
	// of a line, so the next written line (up to its newline) gets no Prefix.
	//
	// This lets a caller write a bullet itself and have only continuation lines
	// indented.
	Continue bool
}

// Write writes data inserting Prefix before each line.
func (w *Writer) Write(data []byte) (n int, err error) {
	prefix := []byte(w.Prefix)

	for len(data) > 0 {
		var printUntil int
		endsWithNewLine := false

		lineBeginning := !w.Continue
		if data[0] == '\n' && lineBeginning {
			// Blank line, print it as is.
			printUntil = 1
		} else {
			if lineBeginning && len(prefix) > 0 {
				if _, err := w.Writer.Write(prefix); err != nil {
					return n, err
				}
			}
			w.Continue = true

			lineEnd := bytes.IndexByte(data, '\n')
			if lineEnd < 0 {
				printUntil = len(data)
			} else {
				printUntil = lineEnd + 1
				endsWithNewLine = true
			}
		}
		toPrint := data[:printUntil]
		data = data[printUntil:]

		m, err := w.Writer.Write(toPrint)
		n += m

		if m == len(toPrint) && endsWithNewLine {
			w.Continue = false
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Bullet renders `text` as a bulleted item.
//
// The first line is preceded by `bullet`, and every following non-blank line
// is preceded by `indent`.
func Bullet(bullet, indent, text string) string {
	var buf strings.Builder
	buf.WriteString(bullet)
	w := &Writer{Writer: &buf, Prefix: indent, Continue: true}
	// strings.Builder never returns errors.
	_, _ = io.WriteString(w, text)
	return buf.String()
}
