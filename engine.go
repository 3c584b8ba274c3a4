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
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"znkr.io/diffview/internal/config"
)

// ErrOutOfRange is returned by queries for an op or a world line that doesn't exist.
var ErrOutOfRange = errors.New("index out of range")

// Engine holds two documents and provides the edit script and world view for them.
//
// Results are computed lazily: setting a document, the layout mode, or the direction invalidates
// the current results and the next query rebuilds them. A rebuild always runs to completion and is
// published as a new immutable [View], so queries never observe a partially rebuilt state. Changing
// only the mode or the direction reuses the edit script.
//
// An Engine is safe for concurrent use. Callers that issue several queries and need them to be
// consistent with each other should use [Engine.View] and query the returned snapshot.
type Engine struct {
	mu     sync.Mutex // guards everything below and serializes rebuilds
	text   [2]string
	tables [2]*LineTable // nil if stale
	ops    []EditOp      // valid if diffed is set
	diffed bool
	cfg    config.Config

	view atomic.Pointer[View] // nil if stale
}

// NewEngine returns an engine with two empty documents.
//
// The following options are supported: [SideBySideLayout], [Reversed]
func NewEngine(opts ...Option) *Engine {
	return &Engine{
		cfg: config.FromOptions(opts, config.SideBySideLayout|config.Reversed),
	}
}

// SetText replaces the text of a document.
func (e *Engine) SetText(doc Doc, text string) {
	i := docIndex(doc)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text[i] = text
	e.tables[i] = nil
	e.ops, e.diffed = nil, false
	e.view.Store(nil)
}

// SetLayout changes the layout mode of the world view.
func (e *Engine) SetLayout(mode Mode) {
	if mode != Inline && mode != SideBySide {
		panic(fmt.Sprintf("unknown mode: %v", mode))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg.Mode != mode {
		e.cfg.Mode = mode
		e.view.Store(nil)
	}
}

// SetDirection changes which document is treated as the old side.
func (e *Engine) SetDirection(dir Direction) {
	if dir != AToB && dir != BToA {
		panic(fmt.Sprintf("unknown direction: %v", dir))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cfg.Direction != dir {
		e.cfg.Direction = dir
		e.view.Store(nil)
	}
}

// View returns the current results, rebuilding them if necessary.
func (e *Engine) View() *View {
	if v := e.view.Load(); v != nil {
		return v
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if v := e.view.Load(); v != nil {
		return v // rebuilt while waiting for the lock
	}
	for i := range e.tables {
		if e.tables[i] == nil {
			t := Segment(e.text[i])
			e.tables[i] = &t
		}
	}
	a, b := *e.tables[0], *e.tables[1]
	if !e.diffed {
		e.ops, e.diffed = Diff(a, b), true
	}
	cfg := ProjectionConfig{Mode: e.cfg.Mode, Direction: e.cfg.Direction}
	world, ops := Project(a, b, e.ops, cfg)
	v := &View{
		tables: [2]LineTable{a, b},
		ops:    ops,
		world:  world,
		cfg:    cfg,
	}
	e.view.Store(v)
	return v
}

// WorldView returns the rows of the current world view. The returned slice must not be modified.
func (e *Engine) WorldView() []WorldLine { return e.View().WorldView() }

// OpCount returns the number of ops in the current edit script.
func (e *Engine) OpCount() int { return e.View().OpCount() }

// Op returns the n-th op of the current edit script, counting from 1.
func (e *Engine) Op(n int) (EditOp, error) { return e.View().Op(n) }

// ResolveLine returns the op the i-th row of the current world view belongs to. See
// [View.ResolveLine].
func (e *Engine) ResolveLine(i int) (EditOp, bool, error) { return e.View().ResolveLine(i) }

// FormatDiff renders the current edit script. See [Format].
func (e *Engine) FormatDiff(style FormatStyle) string { return e.View().FormatDiff(style) }

// Lines returns the line table of a document.
func (e *Engine) Lines(doc Doc) LineTable { return e.View().Lines(doc) }

// View is an immutable snapshot of the results of an [Engine].
type View struct {
	tables [2]LineTable
	ops    []EditOp
	world  []WorldLine
	cfg    ProjectionConfig
}

// Config returns the projection parameters the view was built with.
func (v *View) Config() ProjectionConfig { return v.cfg }

// Lines returns the line table of a document.
func (v *View) Lines(doc Doc) LineTable { return v.tables[docIndex(doc)] }

// WorldView returns the rows of the world view. The returned slice must not be modified.
func (v *View) WorldView() []WorldLine { return v.world }

// Ops returns the edit script with world ranges. The returned slice must not be modified.
func (v *View) Ops() []EditOp { return v.ops }

// OpCount returns the number of ops in the edit script.
func (v *View) OpCount() int { return len(v.ops) }

// Op returns the n-th op of the edit script, counting from 1.
func (v *View) Op(n int) (EditOp, error) {
	if n < 1 || n > len(v.ops) {
		return EditOp{}, fmt.Errorf("op %d: %w, have %d ops", n, ErrOutOfRange, len(v.ops))
	}
	return v.ops[n-1], nil
}

// ResolveLine returns the op the i-th row (counting from 0) of the world view belongs to. ok is
// false for rows that don't belong to an op.
func (v *View) ResolveLine(i int) (op EditOp, ok bool, err error) {
	if i < 0 || i >= len(v.world) {
		return EditOp{}, false, fmt.Errorf("world line %d: %w, have %d lines", i, ErrOutOfRange, len(v.world))
	}
	d := v.world[i].Op
	if d == NoOp {
		return EditOp{}, false, nil
	}
	return v.ops[d], true, nil
}

// Text returns the content of a row of the world view. It's empty for [Blank] rows.
func (v *View) Text(w WorldLine) string {
	if w.Line == Blank {
		return ""
	}
	return v.tables[docIndex(w.Doc)].Line(w.Line)
}

// FormatDiff renders the edit script in the direction of the view. See [Format].
func (v *View) FormatDiff(style FormatStyle) string {
	return Format(v.tables[0], v.tables[1], v.ops, v.cfg.Direction, style)
}

func docIndex(doc Doc) int {
	switch doc {
	case DocA:
		return 0
	case DocB:
		return 1
	default:
		panic(fmt.Sprintf("unknown document: %v", doc))
	}
}
