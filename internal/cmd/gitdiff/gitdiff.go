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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It prints the changes of every file in the normal diff format, e.g.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Setting DIFFVIEW_REVERSED=1 in the environment prints every diff from new to old.
package main

import (
	"fmt"
	"os"

	"znkr.io/diffview"
	"znkr.io/diffview/textdiff"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, oldMode, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]
	_ = oldMode

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	var opts []diffview.Option
	if os.Getenv("DIFFVIEW_REVERSED") == "1" {
		opts = append(opts, diffview.Reversed())
	}
	diff := textdiff.NormalBytes(old, new, opts...)

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
	os.Stdout.Write(diff)

	return nil
}

// readFile reads a file, /dev/null is read as an empty file.
func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
