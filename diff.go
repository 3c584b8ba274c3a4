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

import "znkr.io/diffview/internal/hunt"

// Kind describes the kind of an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind,Style
type Kind int

const (
	Add    Kind = iota // Lines only present in b
	Delete             // Lines only present in a
	Change             // The same number of lines in a replaced by lines in b
)

// EditOp is one contiguous block of an edit script.
//
// All positions are 0-based line indices and all ranges are inclusive. The side without lines,
// that is a for [Add] and b for [Delete], holds an insertion point instead of a range: From and To
// are both set to the index of the line that follows the edit on that side.
//
//   - Add:    b[FromB:ToB+1] is inserted into a before line FromA (== ToA).
//   - Delete: a[FromA:ToA+1] is removed, it was located before line FromB (== ToB) in b.
//   - Change: a[FromA:ToA+1] is replaced by b[FromB:ToB+1]; both ranges have the same length.
//
// FromWorld and ToWorld are the first and last index of the rows this op occupies in the world
// view. They are -1 until the op has been passed through [Project].
type EditOp struct {
	Kind               Kind
	FromA, ToA         int
	FromB, ToB         int
	FromWorld, ToWorld int
}

// LenA returns the number of lines of a that are affected by the op.
func (op EditOp) LenA() int {
	if op.Kind == Add {
		return 0
	}
	return op.ToA - op.FromA + 1
}

// LenB returns the number of lines of b that are affected by the op.
func (op EditOp) LenB() int {
	if op.Kind == Delete {
		return 0
	}
	return op.ToB - op.FromB + 1
}

// reverse returns the op that describes the same edit when diffing b against a.
func (op EditOp) reverse() EditOp {
	r := op
	r.FromA, r.ToA, r.FromB, r.ToB = op.FromB, op.ToB, op.FromA, op.ToA
	switch op.Kind {
	case Add:
		r.Kind = Delete
	case Delete:
		r.Kind = Add
	}
	return r
}

// reverseOps returns the edit script that Diff(b, a) produces when it finds the same LCS as ops.
//
// Reversing every op on its own isn't enough for a gap that holds a [Delete] immediately followed
// by an [Add]: Diff(b, a) emits the deletion of the lines in b first and anchors both ops
// differently.
func reverseOps(ops []EditOp) []EditOp {
	out := make([]EditOp, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		if i+1 < len(ops) && gapPair(op, ops[i+1]) {
			add := ops[i+1]
			out = append(out,
				EditOp{Delete, add.FromB, add.ToB, op.FromA, op.FromA, add.FromWorld, add.ToWorld},
				EditOp{Add, add.ToB + 1, add.ToB + 1, op.FromA, op.ToA, op.FromWorld, op.ToWorld},
			)
			i++
			continue
		}
		out = append(out, op.reverse())
	}
	return out
}

// gapPair reports whether del and add were created from the same gap between two matches.
func gapPair(del, add EditOp) bool {
	return del.Kind == Delete && add.Kind == Add && add.FromA == del.ToA+1 && add.FromB == del.FromB
}

// Diff compares the lines of a and b and returns an edit script that transforms a into b.
//
// The edit script is derived from a longest common subsequence of both documents. Lines are equal
// if their bytes are equal, there's no normalization of whitespace or line endings. Between two
// consecutive matches:
//
//   - lines left over on both sides become a single [Change] if both sides have the same number of
//     lines, otherwise a [Delete] immediately followed by an [Add],
//   - lines left over only in a become a [Delete],
//   - lines left over only in b become an [Add].
//
// If a and b are identical, the output has length zero.
func Diff(a, b LineTable) []EditOp {
	pairs := hunt.LCS(a.lines(), b.lines())

	var ops []EditOp
	s, t := 0, 0
	for _, p := range pairs {
		ops = appendGap(ops, s, p.X, t, p.Y)
		s, t = p.X+1, p.Y+1
	}
	return appendGap(ops, s, a.Len(), t, b.Len())
}

// appendGap appends the ops for the unmatched lines a[s0:s1] and b[t0:t1].
func appendGap(ops []EditOp, s0, s1, t0, t1 int) []EditOp {
	n, m := s1-s0, t1-t0
	switch {
	case n == 0 && m == 0:
		return ops
	case n == m:
		return append(ops, EditOp{Change, s0, s1 - 1, t0, t1 - 1, -1, -1})
	}
	if n > 0 {
		ops = append(ops, EditOp{Delete, s0, s1 - 1, t0, t0, -1, -1})
	}
	if m > 0 {
		ops = append(ops, EditOp{Add, s1, s1, t0, t1 - 1, -1, -1})
	}
	return ops
}

// Apply applies ops to the lines of a and returns the resulting lines. The lines added or changed
// are taken from b.
//
// Apply(a, b, Diff(a, b)) returns the lines of b.
func Apply(a, b LineTable, ops []EditOp) []string {
	out := make([]string, 0, b.Len())
	s := 0
	for _, op := range ops {
		for ; s < op.FromA; s++ {
			out = append(out, a.Line(s))
		}
		for t := op.FromB; t < op.FromB+op.LenB(); t++ {
			out = append(out, b.Line(t))
		}
		s += op.LenA()
	}
	for ; s < a.Len(); s++ {
		out = append(out, a.Line(s))
	}
	return out
}
