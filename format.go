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
	"fmt"
	"strconv"
	"strings"
)

// FormatStyle selects the output of [Format].
type FormatStyle int

const (
	// Standard renders a normal diff, the default output format of the Unix diff tool.
	Standard FormatStyle = iota

	// Debug renders one line per op: the kind followed by the 0-based inclusive ranges in a and b,
	// e.g. "Change 1 1 1 1".
	Debug

	// CountOnly renders the number of ops as a decimal number.
	CountOnly
)

const (
	prefixA = "< "
	prefixB = "> "
	divider = "---\n"
)

// Format renders the edit script ops that transforms a into b.
//
// If dir is [BToA], the ops are rendered as if b had been diffed against a: the ranges in a and b
// are swapped and additions become deletions and vice versa. A deletion followed by an addition in
// the same gap is reordered and re-anchored the way [Diff] would emit it. The LCS is not
// recomputed.
//
// In the [Standard] style, every op starts with a header made of the range in the old document,
// a letter ('a', 'd', or 'c'), and the range in the new document. Ranges are 1-based and are
// printed as "N" for a single line or "N,M" for several lines. An addition anchors on the number
// of old lines before it, a deletion on the new line that follows it. The header is followed by
// the affected lines, prefixed with "< " for old lines and "> " for new lines, with a "---"
// line between them for changes.
func Format(a, b LineTable, ops []EditOp, dir Direction, style FormatStyle) string {
	if style == CountOnly {
		return strconv.Itoa(len(ops))
	}
	if dir == BToA {
		a, b = b, a
		ops = reverseOps(ops)
	}

	var sb strings.Builder
	for _, op := range ops {
		if style == Debug {
			fmt.Fprintf(&sb, "%v %d %d %d %d\n", op.Kind, op.FromA, op.ToA, op.FromB, op.ToB)
			continue
		}
		switch op.Kind {
		case Add:
			fmt.Fprintf(&sb, "%da%s\n", op.FromA, lineRange(op.FromB, op.ToB))
			writeLines(&sb, prefixB, b, op.FromB, op.ToB)
		case Delete:
			fmt.Fprintf(&sb, "%sd%d\n", lineRange(op.FromA, op.ToA), op.FromB+1)
			writeLines(&sb, prefixA, a, op.FromA, op.ToA)
		case Change:
			fmt.Fprintf(&sb, "%sc%s\n", lineRange(op.FromA, op.ToA), lineRange(op.FromB, op.ToB))
			writeLines(&sb, prefixA, a, op.FromA, op.ToA)
			sb.WriteString(divider)
			writeLines(&sb, prefixB, b, op.FromB, op.ToB)
		default:
			panic(fmt.Sprintf("unknown edit kind: %v", op.Kind))
		}
	}
	return sb.String()
}

// lineRange formats the 0-based inclusive range from..to as 1-based line numbers.
func lineRange(from, to int) string {
	if from == to {
		return strconv.Itoa(from + 1)
	}
	return strconv.Itoa(from+1) + "," + strconv.Itoa(to+1)
}

func writeLines(sb *strings.Builder, prefix string, t LineTable, from, to int) {
	for i := from; i <= to; i++ {
		sb.WriteString(prefix)
		sb.WriteString(t.Line(i))
		sb.WriteByte('\n')
	}
}
