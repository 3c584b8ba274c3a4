// diff is a small CLI to manually run the diffing implementations used for benchmarking.
//
// Usage:
//
//	diff [-lib name] [-reverse] [-view] <x> <y>
//	diff [-lib name] [-reverse] [-view] -txtar <file>
//
// With -reverse, y is treated as the old input. diffview renders the reversed edit script, all
// other libraries diff y against x. With -view, the world view of diffview is printed instead of
// a diff.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"znkr.io/diffview"
	"znkr.io/diffview/internal/benchmarks"
	"znkr.io/diffview/textdiff"
)

type config struct {
	lib     string
	reverse bool
	view    bool
	x, y    string
	txtar   string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "diffview", "library to use for diffing: "+strings.Join(libNames(), ", "))
	flag.BoolVar(&cfg.reverse, "reverse", false, "treat y as the old input")
	flag.BoolVar(&cfg.view, "view", false, "print the world view instead of a diff (diffview only)")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	switch {
	case cfg.txtar != "" && flag.NArg() != 0:
		fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
		os.Exit(1)
	case cfg.txtar == "" && flag.NArg() != 2:
		fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
		os.Exit(1)
	case cfg.txtar == "":
		cfg.x, cfg.y = flag.Arg(0), flag.Arg(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func libNames() []string {
	names := make([]string, len(benchmarks.Impls))
	for i, impl := range benchmarks.Impls {
		names[i] = impl.Name
	}
	return names
}

func run(cfg config, w io.Writer) error {
	x, y, err := readInputs(cfg)
	if err != nil {
		return err
	}

	if cfg.view {
		if cfg.lib != "diffview" {
			return fmt.Errorf("-view is only supported for diffview, not %q", cfg.lib)
		}
		var opts []diffview.Option
		if cfg.reverse {
			opts = append(opts, diffview.Reversed())
		}
		world, _ := textdiff.View(string(x), string(y), opts...)
		docs := map[diffview.Doc]diffview.LineTable{
			diffview.DocA: diffview.Segment(x),
			diffview.DocB: diffview.Segment(y),
		}
		for _, l := range world {
			fmt.Fprintf(w, "%-7v %v %s\n", l.Style, l.Doc, docs[l.Doc].Line(l.Line))
		}
		return nil
	}

	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var out []byte
	switch {
	case cfg.reverse && lib.Name == "diffview":
		out = textdiff.NormalBytes(x, y, diffview.Reversed())
	case cfg.reverse:
		out = lib.Diff(y, x)
	default:
		out = lib.Diff(x, y)
	}
	_, err = w.Write(out)
	return err
}

func readInputs(cfg config) (x, y []byte, err error) {
	if cfg.txtar == "" {
		if x, err = os.ReadFile(cfg.x); err != nil {
			return nil, nil, err
		}
		if y, err = os.ReadFile(cfg.y); err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = f.Data
		case "y":
			y = f.Data
		}
	}
	if x == nil && y == nil {
		return nil, nil, errors.New("txtar file has neither an x nor a y section")
	}
	return x, y, nil
}
