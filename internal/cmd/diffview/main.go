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

// diffview compares two files line by line and prints the result.
//
// Usage:
//
//	diffview [flags] <a> <b>
//
// By default, the output is a normal diff like the one produced by diff(1) without any flags.
// With -format=view, the world view is printed instead: one row per line with a marker for the
// kind of change. With -watch, the output is printed again whenever one of the files changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"znkr.io/diffview"
)

var (
	sideBySide = flag.Bool("side-by-side", false, "lay out changes side by side in the world view")
	reverse    = flag.Bool("reverse", false, "treat <b> as the old file and <a> as the new file")
	format     = flag.String("format", "standard", "output `format`: standard, debug, count, or view")
	color      = flag.Bool("color", false, "color the world view if the terminal supports it")
	watch      = flag.Bool("watch", false, "print the output again whenever one of the files changes")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: diffview [flags] <a> <b>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 files, got %d", len(args))
	}
	r, err := newRenderer(*format, *color)
	if err != nil {
		return err
	}

	var opts []diffview.Option
	if *sideBySide {
		opts = append(opts, diffview.SideBySideLayout())
	}
	if *reverse {
		opts = append(opts, diffview.Reversed())
	}
	e := diffview.NewEngine(opts...)
	files := [2]string{args[0], args[1]}
	for i, name := range files {
		if err := load(e, diffview.Doc(i), name); err != nil {
			return err
		}
	}
	if err := r.render(w, e.View()); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	err = watchFiles(ctx, files, func(changed []diffview.Doc) error {
		for _, doc := range changed {
			// Editors often replace files in several steps, keep the old text until the next
			// change.
			if err := load(e, doc, files[doc]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
		return r.render(w, e.View())
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func load(e *diffview.Engine, doc diffview.Doc, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %v", name, err)
	}
	e.SetText(doc, string(data))
	return nil
}
