package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/diffview"
	"znkr.io/diffview/textdiff"
)

// Impl is a diff implementation. Diff returns the difference between x and y in a line based
// format where every added line starts with '+' or '>' and every deleted line starts with '-' or
// '<'.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "diffview",
		Diff: func(x, y []byte) []byte {
			return textdiff.NormalBytes(x, y)
		},
	},
	{
		Name: "diffview-reversed",
		Diff: func(x, y []byte) []byte {
			return textdiff.NormalBytes(x, y, diffview.Reversed())
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			prefixes := map[diffmatchpatch.Operation]string{
				diffmatchpatch.DiffInsert: "+",
				diffmatchpatch.DiffDelete: "-",
				diffmatchpatch.DiffEqual:  " ",
			}
			var buf bytes.Buffer
			for _, diff := range diffs {
				for line := range strings.SplitAfterSeq(diff.Text, "\n") {
					writeLine(&buf, prefixes[diff.Type], []byte(line))
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a := 0
			for _, ch := range changes {
				for ; a < ch.A; a++ {
					writeLine(&buf, " ", d.x[a])
				}
				for _, line := range d.x[ch.A : ch.A+ch.Del] {
					writeLine(&buf, "-", line)
				}
				for _, line := range d.y[ch.B : ch.B+ch.Ins] {
					writeLine(&buf, "+", line)
				}
				a += ch.Del
			}
			for ; a < len(d.x); a++ {
				writeLine(&buf, " ", d.x[a])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

// writeLine writes a line prefixed with prefix, empty lines are skipped.
func writeLine(buf *bytes.Buffer, prefix string, line []byte) {
	if len(line) == 0 {
		return
	}
	buf.WriteString(prefix)
	buf.Write(line)
}
