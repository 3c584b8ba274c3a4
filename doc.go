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

// Package diffview compares two text documents line by line and projects the result onto a single
// sequence of display lines for an inline or side-by-side diff viewer.
//
// The work is split into four steps that can be used on their own:
//
//   - [Segment] splits a text into a [LineTable].
//   - [Diff] computes the longest common subsequence of two line tables with the Hunt-McIlroy
//     algorithm and turns it into an ordered edit script of [Add], [Delete], and [Change] ops.
//   - [Project] walks both documents and the edit script in lock-step and produces the world
//     view, one [WorldLine] per displayed row. It also annotates every op with the range of world
//     lines it occupies.
//   - [Format] renders the edit script as a normal diff (the default output format of the Unix
//     diff tool).
//
// [Engine] ties these steps together for a viewer: it holds both documents, rebuilds lazily when
// a document, the layout mode, or the direction changes, and publishes every rebuild as an
// immutable [View].
//
// Performance: The LCS computation runs in O((R + N) log N) time where R is the number of pairs
// of equal lines and N = len(a) + len(b). Common prefixes and suffixes are stripped first.
//
// Note: For diffs of plain strings, please see [znkr.io/diffview/textdiff].
//
// [znkr.io/diffview/textdiff]: https://pkg.go.dev/znkr.io/diffview/textdiff
package diffview
