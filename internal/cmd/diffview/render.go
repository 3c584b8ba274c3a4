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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"znkr.io/diffview"
)

// renderer writes the results of a [diffview.View] in one of the supported formats.
type renderer struct {
	style  diffview.FormatStyle
	view   bool                              // print the world view instead of a diff
	styles map[diffview.Style]lipgloss.Style // nil if colors are disabled
}

func newRenderer(format string, color bool) (*renderer, error) {
	r := &renderer{}
	switch format {
	case "standard":
		r.style = diffview.Standard
	case "debug":
		r.style = diffview.Debug
	case "count":
		r.style = diffview.CountOnly
	case "view":
		r.view = true
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
	if color {
		r.styles = map[diffview.Style]lipgloss.Style{
			diffview.Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			diffview.Deleted: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			diffview.Changed: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		}
	}
	return r, nil
}

var markers = [...]string{
	diffview.Normal:  " ",
	diffview.Added:   "+",
	diffview.Deleted: "-",
	diffview.Changed: "~",
}

func (r *renderer) render(w io.Writer, v *diffview.View) error {
	if !r.view {
		out := v.FormatDiff(r.style)
		if r.style == diffview.CountOnly {
			out += "\n"
		}
		_, err := io.WriteString(w, out)
		return err
	}

	// Rows are "<marker> <doc> <line number> <text>", blank rows have no line number.
	width := len(strconv.Itoa(max(v.Lines(diffview.DocA).Len(), v.Lines(diffview.DocB).Len())))
	var sb strings.Builder
	for _, l := range v.WorldView() {
		num := ""
		if l.Line != diffview.Blank {
			num = strconv.Itoa(l.Line + 1)
		}
		row := fmt.Sprintf("%s %v %*s %s", markers[l.Style], l.Doc, width, num, v.Text(l))
		if st, ok := r.styles[l.Style]; ok {
			row = st.Render(row)
		}
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
