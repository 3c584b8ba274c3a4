// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diffview

import (
	"strings"
	"unsafe"
)

// Span describes the position of one line in the text of a document. The span excludes the line
// terminator.
type Span struct {
	Off, Len int
}

// LineTable is the ordered sequence of line spans of a document.
//
// A LineTable is immutable once built. It refers to the text it was built from without copying
// it; when built from a []byte, the caller must not modify the slice afterwards.
type LineTable struct {
	text           string
	spans          []Span
	missingNewline bool
}

// Segment splits text on '\n' and returns the resulting line table.
//
// Every '\n' terminates a line. A final chunk without terminator is still a line, an empty input
// has no lines. Any byte sequence is valid input.
func Segment[T string | []byte](text T) LineTable {
	var s string
	switch text := any(text).(type) {
	case string:
		s = text
	case []byte:
		s = unsafe.String(unsafe.SliceData(text), len(text))
	default:
		panic("never reached")
	}

	n := strings.Count(s, "\n")
	missing := len(s) > 0 && s[len(s)-1] != '\n'
	if missing {
		n++
	}
	spans := make([]Span, n)
	off := 0
	for i := range n {
		m := strings.IndexByte(s[off:], '\n')
		if m < 0 {
			m = len(s) - off // last line without terminator
		}
		spans[i] = Span{off, m}
		off += m + 1
	}
	return LineTable{text: s, spans: spans, missingNewline: missing}
}

// Len returns the number of lines.
func (t LineTable) Len() int { return len(t.spans) }

// Span returns the span of the i-th line.
func (t LineTable) Span(i int) Span { return t.spans[i] }

// Line returns the content of the i-th line without its terminator.
func (t LineTable) Line(i int) string {
	sp := t.spans[i]
	return t.text[sp.Off : sp.Off+sp.Len]
}

// MissingNewline reports whether the last line is not terminated by '\n'.
func (t LineTable) MissingNewline() bool { return t.missingNewline }

// lines returns the contents of all lines. The returned strings share memory with the text.
func (t LineTable) lines() []string {
	out := make([]string, len(t.spans))
	for i := range t.spans {
		out[i] = t.Line(i)
	}
	return out
}
