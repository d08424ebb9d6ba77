// Command path2d builds the paths described by a scene file or a path
// string and prints their segments and last points.
//
// Usage:
//
//	path2d [-v] [-format text|geom] scene.toml
//	path2d [-v] [-format text|geom] -d "M0 0 L10 10 z"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/geom/path"

	"github.com/gogpu/path2d"
	"github.com/gogpu/path2d/internal/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("path2d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "log debug messages to stderr")
		format  = fs.String("format", "text", "output format: text or geom")
		data    = fs.String("d", "", "SVG path data to build instead of a scene file")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *format != "text" && *format != "geom" {
		fmt.Fprintf(stderr, "path2d: unknown format %q\n", *format)
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	path2d.SetLogger(logger)
	defer path2d.SetLogger(nil)

	paths, err := load(*data, fs.Args())
	if err != nil {
		logger.Error("failed to build paths", "err", err)
		return 1
	}

	for _, n := range paths {
		report(stdout, n, *format)
	}
	return 0
}

func load(data string, args []string) ([]scene.Named, error) {
	switch {
	case data != "" && len(args) == 0:
		return []scene.Named{{Name: "d", Path: path2d.FromString(data)}}, nil
	case data == "" && len(args) == 1:
		s, err := scene.LoadFile(args[0])
		if err != nil {
			return nil, err
		}
		return s.Build()
	}
	return nil, errors.New("expected either -d or exactly one scene file")
}

func report(w io.Writer, n scene.Named, format string) {
	fmt.Fprintf(w, "%s: %d segments\n", n.Name, n.Path.Len())
	fmt.Fprintf(w, "  segments: %s\n", n.Path)
	if pt, ok := n.Path.LastPoint(); ok {
		fmt.Fprintf(w, "  last point: %g %g\n", pt.X, pt.Y)
	} else {
		fmt.Fprintln(w, "  last point: none")
	}

	if format != "geom" {
		return
	}
	for cmd, pts := range n.Path.Geom() {
		fmt.Fprintf(w, "  %s", geomName(cmd))
		for _, p := range pts {
			fmt.Fprintf(w, " %.4g,%.4g", p.X, p.Y)
		}
		fmt.Fprintln(w)
	}
	if r, ok := n.Path.Bounds(); ok {
		fmt.Fprintf(w, "  bounds: %.4g,%.4g %.4g,%.4g\n", r.LLx, r.LLy, r.URx, r.URy)
	}
}

func geomName(cmd path.Command) string {
	switch cmd {
	case path.CmdMoveTo:
		return "moveto"
	case path.CmdLineTo:
		return "lineto"
	case path.CmdQuadTo:
		return "quadto"
	case path.CmdCubeTo:
		return "cubeto"
	case path.CmdClose:
		return "close"
	}
	return "unknown"
}
