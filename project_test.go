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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpEmpty = cmpopts.EquateEmpty()

func TestProject(t *testing.T) {
	var (
		inline            = ProjectionConfig{Inline, AToB}
		inlineReversed    = ProjectionConfig{Inline, BToA}
		sideBySide        = ProjectionConfig{SideBySide, AToB}
		sideBySideReverse = ProjectionConfig{SideBySide, BToA}
	)

	type world = []WorldLine
	type ranges = [][2]int

	tests := []struct {
		name       string
		a, b       []string
		cfg        ProjectionConfig
		want       world
		wantRanges ranges
	}{
		{
			name: "empty",
			cfg:  inline,
			want: world{},
		},
		{
			name: "identical",
			a:    []string{"a", "b"},
			b:    []string{"a", "b"},
			cfg:  sideBySide,
			want: world{{Normal, DocA, 0, NoOp}, {Normal, DocA, 1, NoOp}},
		},
		{
			name:       "a-empty",
			b:          []string{"x"},
			cfg:        inline,
			want:       world{{Added, DocB, 0, 0}},
			wantRanges: ranges{{0, 0}},
		},
		{
			name:       "a-empty-side-by-side-reversed",
			b:          []string{"x", "y"},
			cfg:        sideBySideReverse,
			want:       world{{Deleted, DocB, Blank, 0}},
			wantRanges: ranges{{0, 0}},
		},
		{
			name: "change-inline",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "x", "c"},
			cfg:  inline,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocA, 1, 0},
				{Added, DocB, 1, 0},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 2}},
		},
		{
			name: "change-inline-reversed",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "x", "c"},
			cfg:  inlineReversed,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocB, 1, 0},
				{Added, DocA, 1, 0},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 2}},
		},
		{
			name: "change-side-by-side",
			a:    []string{"a", "b", "c", "d"},
			b:    []string{"a", "x", "y", "d"},
			cfg:  sideBySide,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Changed, DocB, 1, 0},
				{Changed, DocB, 2, 0},
				{Normal, DocA, 3, NoOp},
			},
			wantRanges: ranges{{1, 2}},
		},
		{
			name: "change-side-by-side-reversed",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "x", "c"},
			cfg:  sideBySideReverse,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Changed, DocA, 1, 0},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 1}},
		},
		{
			name: "add",
			a:    []string{"a", "b"},
			b:    []string{"a", "b", "c"},
			cfg:  sideBySide,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Normal, DocA, 1, NoOp},
				{Added, DocB, 2, 0},
			},
			wantRanges: ranges{{2, 2}},
		},
		{
			name: "add-inline-reversed",
			a:    []string{"a", "b"},
			b:    []string{"a", "b", "c"},
			cfg:  inlineReversed,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Normal, DocA, 1, NoOp},
				{Deleted, DocB, 2, 0},
			},
			wantRanges: ranges{{2, 2}},
		},
		{
			name: "add-side-by-side-reversed",
			a:    []string{"a", "b"},
			b:    []string{"a", "b", "c"},
			cfg:  sideBySideReverse,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Normal, DocA, 1, NoOp},
				{Deleted, DocB, Blank, 0},
			},
			wantRanges: ranges{{2, 2}},
		},
		{
			name: "delete-inline",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "c"},
			cfg:  inline,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocA, 1, 0},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 1}},
		},
		{
			name: "delete-side-by-side",
			a:    []string{"a", "b", "b2", "c"},
			b:    []string{"a", "c"},
			cfg:  sideBySide,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocA, Blank, 0},
				{Normal, DocA, 3, NoOp},
			},
			wantRanges: ranges{{1, 1}},
		},
		{
			name: "delete-reversed",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "c"},
			cfg:  sideBySideReverse,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Added, DocA, 1, 0},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 1}},
		},
		{
			name: "delete-then-add",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "x", "y", "c"},
			cfg:  inline,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocA, 1, 0},
				{Added, DocB, 1, 1},
				{Added, DocB, 2, 1},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 1}, {2, 3}},
		},
		{
			name: "delete-then-add-side-by-side",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "x", "y", "c"},
			cfg:  sideBySide,
			want: world{
				{Normal, DocA, 0, NoOp},
				{Deleted, DocA, Blank, 0},
				{Added, DocB, 1, 1},
				{Added, DocB, 2, 1},
				{Normal, DocA, 2, NoOp},
			},
			wantRanges: ranges{{1, 1}, {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := table(tt.a...), table(tt.b...)
			ops := Diff(a, b)
			got, gotOps := Project(a, b, ops, tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Project(...) world view is different [-want,+got]:\n%s", diff)
			}
			var gotRanges ranges
			for _, op := range gotOps {
				gotRanges = append(gotRanges, [2]int{op.FromWorld, op.ToWorld})
			}
			if diff := cmp.Diff(tt.wantRanges, gotRanges); diff != "" {
				t.Errorf("Project(...) world ranges are different [-want,+got]:\n%s", diff)
			}
			for _, op := range ops {
				if op.FromWorld != -1 || op.ToWorld != -1 {
					t.Errorf("Project(...) modified its input: %+v", op)
				}
			}
		})
	}
}

func TestProjectProperties(t *testing.T) {
	configs := []ProjectionConfig{
		{Inline, AToB},
		{Inline, BToA},
		{SideBySide, AToB},
		{SideBySide, BToA},
	}
	for i := range 200 {
		name := fmt.Sprintf("case-%d", i)
		rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
		a := randomTable(rng, rng.IntN(30), 4)
		b := randomTable(rng, rng.IntN(30), 4)
		ops := Diff(a, b)

		for _, cfg := range configs {
			t.Run(fmt.Sprintf("%s/%v/%v", name, cfg.Mode, cfg.Direction), func(t *testing.T) {
				world, annotated := Project(a, b, ops, cfg)
				checkWorldRanges(t, world, annotated)

				again, annotatedAgain := Project(a, b, ops, cfg)
				if diff := cmp.Diff(world, again); diff != "" {
					t.Errorf("Project(...) is not deterministic [-first,+second]:\n%s", diff)
				}
				if diff := cmp.Diff(annotated, annotatedAgain); diff != "" {
					t.Errorf("Project(...) is not deterministic [-first,+second]:\n%s", diff)
				}

				if cfg.Mode == Inline {
					checkCoverage(t, a, b, ops, world)
				}
			})
		}
	}
}

// checkWorldRanges verifies that the world ranges of ops are monotonic and consistent with the
// world view.
func checkWorldRanges(t *testing.T, world []WorldLine, ops []EditOp) {
	t.Helper()
	for i, op := range ops {
		if op.FromWorld < 0 || op.ToWorld < op.FromWorld || op.ToWorld >= len(world) {
			t.Errorf("op %d has invalid world range [%d, %d]", i, op.FromWorld, op.ToWorld)
			continue
		}
		if i > 0 && ops[i-1].ToWorld >= op.FromWorld {
			t.Errorf("world ranges of op %d and %d overlap", i-1, i)
		}
		for w := op.FromWorld; w <= op.ToWorld; w++ {
			if world[w].Op != i {
				t.Errorf("world line %d = %+v inside range of op %d", w, world[w], i)
			}
		}
	}
	for w, line := range world {
		if line.Op == NoOp && line.Style != Normal || line.Op != NoOp && line.Style == Normal {
			t.Errorf("world line %d = %+v has inconsistent style and op", w, line)
		}
	}
}

// checkCoverage verifies that every line of a and b is shown exactly once. Unchanged lines of b are
// shown by the normal rows taken from a.
func checkCoverage(t *testing.T, a, b LineTable, ops []EditOp, world []WorldLine) {
	t.Helper()
	var gotA, gotB []int
	normal := 0
	for _, line := range world {
		switch {
		case line.Line == Blank:
			t.Errorf("inline world view contains a blank line: %+v", line)
		case line.Doc == DocA:
			gotA = append(gotA, line.Line)
		default:
			gotB = append(gotB, line.Line)
		}
		if line.Style == Normal {
			normal++
		}
	}

	wantA := make([]int, a.Len())
	for i := range wantA {
		wantA[i] = i
	}
	if diff := cmp.Diff(wantA, gotA, cmpEmpty); diff != "" {
		t.Errorf("lines of a in the world view are different [-want,+got]:\n%s", diff)
	}

	var wantB []int
	for _, op := range ops {
		for i := range op.LenB() {
			wantB = append(wantB, op.FromB+i)
		}
	}
	if diff := cmp.Diff(wantB, gotB, cmpEmpty); diff != "" {
		t.Errorf("changed lines of b in the world view are different [-want,+got]:\n%s", diff)
	}
	if normal+len(gotB) != b.Len() {
		t.Errorf("world view shows %d lines of b, want %d", normal+len(gotB), b.Len())
	}
}

func TestProjectIdentity(t *testing.T) {
	lt := table("a", "b", "a", "c")
	world, ops := Project(lt, lt, nil, ProjectionConfig{SideBySide, BToA})
	if len(ops) != 0 {
		t.Errorf("Project(...) returned ops %v, want none", ops)
	}
	if len(world) != lt.Len() {
		t.Fatalf("len(world) = %v, want %v", len(world), lt.Len())
	}
	for i, line := range world {
		if want := (WorldLine{Normal, DocA, i, NoOp}); line != want {
			t.Errorf("world[%d] = %+v, want %+v", i, line, want)
		}
	}
}

func TestProjectPanics(t *testing.T) {
	tests := []struct {
		name string
		a, b LineTable
		ops  []EditOp
	}{
		{
			name: "unknown-kind",
			a:    table("a"),
			b:    table("b"),
			ops:  []EditOp{{Kind: Kind(42), FromA: 0, ToA: 0, FromB: 0, ToB: 0}},
		},
		{
			name: "missing-op",
			a:    table("a"),
			b:    table("a", "b"),
			ops:  nil,
		},
		{
			name: "unused-op",
			a:    table("a"),
			b:    table("a"),
			ops:  []EditOp{{Kind: Change, FromA: 5, ToA: 5, FromB: 5, ToB: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Project(...) did not panic")
				}
			}()
			Project(tt.a, tt.b, tt.ops, ProjectionConfig{})
		})
	}
}
