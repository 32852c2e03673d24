// Package cli implements the interactive maze console: it asks for the maze size,
// prints a freshly generated maze and then the same maze with its solution.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

const banner = "=== Maze Generator and Solver ==="

// Options configures a console run. Zero Width or Height are prompted for.
type Options struct {
	Width  int
	Height int
	Seed   *int64
	Plain  bool // Print the raw '#' grid instead of the boxed drawing.
}

// ParseOptions parses command line flags into Options.
func ParseOptions(name string, args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.Width, "width", 0, "maze width in cells (prompted when unset)")
	fs.IntVar(&opts.Height, "height", 0, "maze height in cells (prompted when unset)")
	seed := fs.Int64("seed", 0, "random seed for a reproducible maze")
	fs.BoolVar(&opts.Plain, "plain", false, "print the raw # grid")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.Seed = seed
		}
	})
	return opts, nil
}

// Run reads any missing dimensions from in, then writes the maze and its solution to out.
// The start is the top-left cell and the goal the bottom-right one.
func Run(in io.Reader, out io.Writer, opts Options) error {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, banner)

	width, err := dimension(reader, out, "width", opts.Width)
	if err != nil {
		return err
	}
	height, err := dimension(reader, out, "height", opts.Height)
	if err != nil {
		return err
	}

	var mazeOpts []maze.Option
	if opts.Seed != nil {
		mazeOpts = append(mazeOpts, maze.WithSeed(*opts.Seed))
	}
	m, err := maze.New(width, height, mazeOpts...)
	if err != nil {
		return err
	}

	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: height - 1, Col: width - 1}
	if err := m.Generate(&start); err != nil {
		return err
	}

	path, err := maze.NewSolver(m).Solve(start, goal)
	if err != nil {
		return err
	}

	grid := render.Build(m, &start, &goal)
	fmt.Fprintln(out, "\nGenerated Maze:")
	fmt.Fprint(out, draw(grid, start, goal, nil, opts.Plain))

	if len(path) == 0 {
		fmt.Fprintln(out, "\nNo path found from start to goal.")
		return nil
	}
	fmt.Fprintln(out, "\nMaze Solver:")
	fmt.Fprint(out, draw(grid, start, goal, path, opts.Plain))
	return nil
}

func draw(grid [][]byte, start, goal maze.Cell, path []maze.Cell, plain bool) string {
	if plain {
		return render.Plain(render.OverlayPath(grid, path))
	}
	return render.Pretty(grid, &start, &goal, path)
}

// dimension returns preset when it is set, otherwise prompts for the value.
func dimension(r *bufio.Reader, out io.Writer, name string, preset int) (int, error) {
	if preset != 0 {
		return preset, nil
	}
	fmt.Fprintf(out, "Enter maze %s: ", name)
	var value int
	if _, err := fmt.Fscan(r, &value); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading %s: unexpected end of input", name)
		}
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	return value, nil
}
