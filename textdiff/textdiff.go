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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"znkr.io/diffview"
	"znkr.io/diffview/internal/config"
)

// Normal compares the lines in x and y and returns the changes necessary to convert from one to
// the other in the normal diff format.
//
// The following options are supported: [diffview.Reversed]
//
// The output doesn't mark a missing newline at the end of x or y.
func Normal(x, y string, opts ...diffview.Option) string {
	return normal(diffview.Segment(x), diffview.Segment(y), opts)
}

// NormalBytes compares the lines in x and y and returns the changes necessary to convert from
// one to the other in the normal diff format.
//
// The following options are supported: [diffview.Reversed]
func NormalBytes(x, y []byte, opts ...diffview.Option) []byte {
	// Segment doesn't copy x and y, only the output needs to be converted.
	return []byte(normal(diffview.Segment(x), diffview.Segment(y), opts))
}

func normal(a, b diffview.LineTable, opts []diffview.Option) string {
	cfg := config.FromOptions(opts, config.Reversed)
	return diffview.Format(a, b, diffview.Diff(a, b), cfg.Direction, diffview.Standard)
}

// View compares the lines in x and y and returns the world view of the differences together with
// the edit script. Every [diffview.WorldLine] with Doc set to [diffview.DocA] refers to a line in
// x, all others refer to a line in y.
//
// The following options are supported: [diffview.SideBySideLayout], [diffview.Reversed]
func View(x, y string, opts ...diffview.Option) ([]diffview.WorldLine, []diffview.EditOp) {
	cfg := config.FromOptions(opts, config.SideBySideLayout|config.Reversed)
	a, b := diffview.Segment(x), diffview.Segment(y)
	return diffview.Project(a, b, diffview.Diff(a, b), diffview.ProjectionConfig{
		Mode:      cfg.Mode,
		Direction: cfg.Direction,
	})
}

// Ops compares the lines in x and y and returns the edit script that transforms x into y.
func Ops(x, y string) []diffview.EditOp {
	return diffview.Diff(diffview.Segment(x), diffview.Segment(y))
}
