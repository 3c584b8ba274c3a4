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

import "znkr.io/diffview/internal/config"

// Option configures the behavior of functions in this module.
type Option = config.Option

// Mode describes how edits are laid out in the world view.
type Mode = config.Mode

const (
	Inline     = config.Inline     // Deleted rows followed by added rows in a single column.
	SideBySide = config.SideBySide // Changes collapsed onto the rows of the new side.
)

// Direction describes which document is the old side when framing additions and deletions.
type Direction = config.Direction

const (
	AToB = config.AToB // A is old, B is new.
	BToA = config.BToA // B is old, A is new.
)

// SideBySideLayout projects the world view for a side-by-side presentation. By default, the world
// view is laid out inline.
func SideBySideLayout() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = SideBySide
		return config.SideBySideLayout
	}
}

// Reversed treats document B as the old side and document A as the new side. The edit script is
// not recomputed, only the way additions and deletions are presented changes.
func Reversed() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Direction = BToA
		return config.Reversed
	}
}
