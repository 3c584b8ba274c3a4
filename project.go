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
	"slices"
)

// Style is the presentation tag of a row in the world view.
type Style int

const (
	Normal  Style = iota // Unchanged line
	Added                // Line only present on the new side
	Deleted              // Line only present on the old side
	Changed              // Line of the new side that replaces lines of the old side
)

// Doc identifies one of the two documents.
type Doc int

const (
	DocA Doc = iota
	DocB
)

func (d Doc) String() string {
	switch d {
	case DocA:
		return "A"
	case DocB:
		return "B"
	default:
		return fmt.Sprintf("Doc(%d)", int(d))
	}
}

const (
	// Blank is the Line of a world line that is a filler and doesn't render any source line.
	Blank = -1

	// NoOp is the Op of a world line that doesn't belong to any edit op.
	NoOp = -1
)

// WorldLine is one row of the world view.
type WorldLine struct {
	Style Style
	Doc   Doc // Document the row is taken from
	Line  int // Line index in Doc or Blank
	Op    int // Index into the edit script or NoOp
}

// ProjectionConfig holds the parameters of [Project].
type ProjectionConfig struct {
	Mode      Mode
	Direction Direction
}

// Project maps two documents and the edit script that transforms a into b onto a single sequence
// of rows, the world view.
//
// Lines outside of ops are emitted once as [Normal] rows taken from a. Ops are laid out depending
// on cfg. Lines that only exist on the new side are [Added], lines that only exist on the old side
// are [Deleted]:
//
//   - Inline: every line of an op gets its own row. For a [Change], the rows of the old side come
//     first.
//   - SideBySide: a [Change] is shown as one [Changed] row per line of the new side; the old side
//     isn't shown row by row. Lines that only exist on the old side are collapsed into a single
//     [Deleted] row with Line set to [Blank].
//
// The direction decides which document is the old side, it doesn't change the edit script.
//
// Project returns the world view and a copy of ops where FromWorld and ToWorld are set to the
// first and last row of every op. It panics if ops isn't an edit script for a and b, as returned by
// [Diff].
func Project(a, b LineTable, ops []EditOp, cfg ProjectionConfig) ([]WorldLine, []EditOp) {
	p := projector{
		cfg:   cfg,
		world: make([]WorldLine, 0, max(a.Len(), b.Len())),
	}
	n, m := a.Len(), b.Len()
	s, t, d := 0, 0, 0 // cursors into a, b, and ops
	for s < n || t < m {
		if d < len(ops) && s == ops[d].FromA && t == ops[d].FromB {
			p.op(d, ops[d])
			s += ops[d].LenA()
			t += ops[d].LenB()
			d++
			continue
		}
		if s >= n || t >= m {
			panic(fmt.Sprintf("edit script doesn't match documents: unmatched line at a[%d], b[%d]", s, t))
		}
		p.emit(Normal, DocA, s, NoOp)
		s++
		t++
	}
	if d != len(ops) {
		panic(fmt.Sprintf("edit script doesn't match documents: %d of %d ops used", d, len(ops)))
	}

	out := slices.Clone(ops)
	for i := range out {
		out[i].FromWorld, out[i].ToWorld = -1, -1
	}
	for w, line := range p.world {
		if line.Op == NoOp {
			continue
		}
		op := &out[line.Op]
		if op.FromWorld < 0 {
			op.FromWorld = w
		}
		op.ToWorld = w
	}
	return p.world, out
}

type projector struct {
	cfg   ProjectionConfig
	world []WorldLine
}

func (p *projector) emit(style Style, doc Doc, line, op int) {
	p.world = append(p.world, WorldLine{style, doc, line, op})
}

func (p *projector) emitRange(style Style, doc Doc, from, to, op int) {
	for line := from; line <= to; line++ {
		p.emit(style, doc, line, op)
	}
}

// sides returns the old and new document for the configured direction.
func (p *projector) sides() (old, new Doc) {
	if p.cfg.Direction == BToA {
		return DocB, DocA
	}
	return DocA, DocB
}

func (p *projector) op(d int, op EditOp) {
	old, new := p.sides()
	rangeOf := func(doc Doc) (int, int) {
		if doc == DocA {
			return op.FromA, op.ToA
		}
		return op.FromB, op.ToB
	}

	switch op.Kind {
	case Change:
		if p.cfg.Mode == SideBySide {
			f, t := rangeOf(new)
			p.emitRange(Changed, new, f, t, d)
			return
		}
		f, t := rangeOf(old)
		p.emitRange(Deleted, old, f, t, d)
		f, t = rangeOf(new)
		p.emitRange(Added, new, f, t, d)
	case Add:
		p.oneSided(d, DocB, op.FromB, op.ToB)
	case Delete:
		p.oneSided(d, DocA, op.FromA, op.ToA)
	default:
		panic(fmt.Sprintf("unknown edit kind: %v", op.Kind))
	}
}

// oneSided emits the rows for lines from..to that only exist in doc.
func (p *projector) oneSided(d int, doc Doc, from, to int) {
	old, _ := p.sides()
	switch {
	case doc != old:
		p.emitRange(Added, doc, from, to, d)
	case p.cfg.Mode == SideBySide:
		p.emit(Deleted, doc, Blank, d)
	default:
		p.emitRange(Deleted, doc, from, to, d)
	}
}
