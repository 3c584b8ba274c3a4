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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diffview.Option.
package config

import "fmt"

// Mode describes how edits are laid out in the world view.
type Mode int

const (
	// Changes are shown as consecutive deleted and added rows in a single column.
	Inline Mode = iota

	// Old and new are shown in parallel, changes are collapsed onto the rows of the new side.
	SideBySide
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case SideBySide:
		return "side-by-side"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Direction describes which document is treated as the old side.
type Direction int

const (
	AToB Direction = iota // A is old, B is new
	BToA                  // B is old, A is new
)

func (d Direction) String() string {
	switch d {
	case AToB:
		return "a->b"
	case BToA:
		return "b->a"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Layout mode of the world view.
	Mode Mode

	// Direction used to frame additions and deletions.
	Direction Direction
}

// Default is the default configuration.
var Default = Config{
	Mode:      Inline,
	Direction: AToB,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	SideBySideLayout Flag = 1 << iota
	Reversed
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case SideBySideLayout:
		return "diffview.SideBySideLayout"
	case Reversed:
		return "diffview.Reversed"
	default:
		panic("never reached")
	}
}
