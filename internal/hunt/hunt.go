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

// Package hunt implements the Hunt-McIlroy algorithm to find a longest common subsequence of two
// slices.
//
// The algorithm processes x front to back. For every element of x, it looks up the positions in y
// that hold an equal element (the equivalence class of the element) and uses them to extend the
// best common subsequences found so far. For every subsequence length k it only remembers the
// candidate that ends at the smallest position in y. These thresholds are strictly increasing,
// which allows finding the length a match extends with a binary search.
//
// Candidates are stored in an arena and link to their predecessor by index. Unwinding the chain
// of the longest candidate yields the LCS.
//
// The run time is O((R + N) log N) where R is the number of pairs of equal elements in x and y.
// For typical line based inputs R is close to N, the worst case (e.g., many identical lines) is
// O(N² log N).
package hunt

import "slices"

// Pair is a match between x[X] and y[Y].
type Pair struct {
	X, Y int
}

// candidate is the last match of a common subsequence. prev is the index of the preceding
// candidate in the arena or -1.
type candidate struct {
	x, y int
	prev int
}

// LCS returns a longest common subsequence of x and y as an ordered list of matches. Both X and Y
// are strictly increasing.
//
// If x and y are identical, every element is matched. If either is empty, the result is empty.
func LCS[T comparable](x, y []T) []Pair {
	smin, smax, tmin, tmax := findChangeBounds(x, y)

	pairs := make([]Pair, 0, smin+len(x)-smax)
	for s := range smin {
		pairs = append(pairs, Pair{s, s})
	}
	pairs = lcs(pairs, x, y, smin, smax, tmin, tmax)
	for s, t := smax, tmax; s < len(x); s, t = s+1, t+1 {
		pairs = append(pairs, Pair{s, t})
	}
	if len(pairs) == 0 {
		return nil
	}
	return pairs
}

// lcs appends the LCS of x[smin:smax] and y[tmin:tmax] to pairs.
func lcs[T comparable](pairs []Pair, x, y []T, smin, smax, tmin, tmax int) []Pair {
	if smin == smax || tmin == tmax {
		return pairs
	}

	// Equivalence classes: for every element of y, the positions it occurs at in ascending order.
	classes := make(map[T][]int, tmax-tmin)
	for t := tmin; t < tmax; t++ {
		classes[y[t]] = append(classes[y[t]], t)
	}

	var (
		thresh []int // thresh[k] is the smallest t ending a common subsequence of length k+1
		links  []int // links[k] is the arena index of the candidate for thresh[k]
		arena  []candidate
	)
	for s := smin; s < smax; s++ {
		class := classes[x[s]]
		// Walk the class backwards, otherwise a match of x[s] could extend another match of x[s].
		for i := len(class) - 1; i >= 0; i-- {
			t := class[i]
			k, found := slices.BinarySearch(thresh, t)
			if found {
				continue // there's already an equally good candidate
			}
			prev := -1
			if k > 0 {
				prev = links[k-1]
			}
			arena = append(arena, candidate{s, t, prev})
			if k == len(thresh) {
				thresh = append(thresh, t)
				links = append(links, len(arena)-1)
			} else {
				thresh[k] = t
				links[k] = len(arena) - 1
			}
		}
	}

	n := len(links)
	if n == 0 {
		return pairs
	}
	start := len(pairs)
	pairs = slices.Grow(pairs, n)[:start+n]
	for c, k := links[n-1], start+n-1; c >= 0; c, k = arena[c].prev, k-1 {
		pairs[k] = Pair{arena[c].x, arena[c].y}
	}
	return pairs
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	return
}
