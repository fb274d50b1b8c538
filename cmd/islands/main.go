// SPDX-License-Identifier: MIT

// islands counts orthogonally connected regions of 1s in a comma-separated
// 0/1 grid by eroding it to a fixed point in two passes.
//
//	islands [flags] <expectedRows> <expectedColumns> <filename>
//
// The initial and final grids (with their water border) are printed,
// followed by "Total islands: N".
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/islands/erosion"
	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/render"
)

var (
	flagIntermediate = flag.Bool("intermediate", false, "Print the grid after every scan of every pass.")
	flagColor        = flag.String("color", "auto", "Colour land and water cells: auto, always or never.")
	flagStrict       = flag.Bool("strict", false, "Reject cell values other than 0 and 1.")
	flagPasses       = flag.String("passes", "1;1,2",
		"Erosion schedule: trigger sets separated by ';', neighbour counts by ','.")
	flagTally = flag.String("tally", string(tallyResidual),
		"Island count to report: residual (land left after erosion) or eroded (cells removed).")
)

// tally selects which Result total is printed as the island count.
type tally string

const (
	tallyResidual tally = "residual"
	tallyEroded   tally = "eroded"
)

func (t tally) pick(res erosion.Result) int {
	if t == tallyEroded {
		return res.Eroded
	}
	return res.Islands()
}

// config is the validated command line.
type config struct {
	rows, cols   int
	path         string
	passes       []erosion.TriggerSet
	strict       bool
	intermediate bool
	color        bool
	tally        tally
}

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "USAGE:  %s [flags] expected-rows expected-columns filename\n\n", filepath.Base(os.Args[0]))
	prev := flag.CommandLine.Output()
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	flag.CommandLine.SetOutput(prev)
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()
	code := execute(flag.Args(), os.Stdout, os.Stderr)
	klog.Flush()
	os.Exit(code)
}

// execute runs the command on the positional arguments left after flag
// parsing and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		usage(stderr)
		return exitUsage
	}
	cfg, err := parseConfig(args, *flagPasses, *flagColor, *flagTally)
	if err != nil {
		klog.Errorf("%v", err)
		return exitFailure
	}
	cfg.strict = *flagStrict
	cfg.intermediate = *flagIntermediate

	if err := run(cfg, stdout); err != nil {
		klog.Error(diagnostic(err, cfg.path))
		return exitFailure
	}
	return exitOK
}

// parseConfig validates the positional arguments and string flags.
func parseConfig(args []string, passes, color, tallyName string) (config, error) {
	var cfg config
	if len(args) != 3 {
		return cfg, errors.Errorf("expected 3 arguments, got %d", len(args))
	}
	var err error
	if cfg.rows, err = strconv.Atoi(args[0]); err != nil {
		return cfg, errors.Wrapf(err, "invalid expected-rows %q", args[0])
	}
	if cfg.cols, err = strconv.Atoi(args[1]); err != nil {
		return cfg, errors.Wrapf(err, "invalid expected-columns %q", args[1])
	}
	cfg.path = args[2]

	if cfg.passes, err = erosion.ParsePasses(passes); err != nil {
		return cfg, errors.WithMessagef(err, "invalid --passes=%q", passes)
	}

	switch strings.ToLower(color) {
	case "auto":
		cfg.color = render.IsTerminal(os.Stdout)
	case "always":
		cfg.color = true
	case "never":
		cfg.color = false
	default:
		return cfg, errors.Errorf("invalid --color=%q, valid values are auto, always or never", color)
	}

	switch t := tally(strings.ToLower(tallyName)); t {
	case tallyResidual, tallyEroded:
		cfg.tally = t
	default:
		return cfg, errors.Errorf("invalid --tally=%q, valid values are %q or %q", tallyName, tallyResidual, tallyEroded)
	}
	return cfg, nil
}

// run loads the grid, erodes it and prints the snapshots and the total.
func run(cfg config, w io.Writer) error {
	var loadOpts []grid.Option
	if cfg.strict {
		loadOpts = append(loadOpts, grid.WithStrictValues())
	}
	g, err := grid.Load(cfg.path, cfg.rows, cfg.cols, loadOpts...)
	if err != nil {
		return err
	}
	klog.V(1).Infof("loaded %s: %dx%d, %d land cells", cfg.path, g.Rows(), g.Cols(), g.LandCount())

	p := render.NewPrinter(w, render.WithColor(cfg.color))
	if err := p.Grid("Initial data:", g); err != nil {
		return err
	}

	opts := []erosion.Option{erosion.WithPasses(cfg.passes...)}
	var printErr error
	if cfg.intermediate {
		opts = append(opts, erosion.WithOnScan(func(ev erosion.ScanEvent) {
			if printErr != nil {
				return
			}
			if ev.Scan == 0 {
				if printErr = p.Printf("\nPass %d %s:\n", ev.Pass, ev.Trigger); printErr != nil {
					return
				}
			}
			printErr = p.Grid(fmt.Sprintf("After loop %d changes = %d", ev.Scan, ev.Changes), ev.Grid)
		}))
	}
	// Options are built from an already validated schedule.
	res := must.M1(erosion.Count(g, opts...))
	if printErr != nil {
		return printErr
	}
	klog.V(1).Infof("initial=%d eroded=%d residual=%d", res.Initial, res.Eroded, res.Residual)

	if err := p.Grid("Final data:", g); err != nil {
		return err
	}
	return p.Printf("\nTotal islands: %d\n\n", cfg.tally.pick(res))
}

// diagnostic turns a load failure into the one-line message shown to users.
func diagnostic(err error, path string) string {
	var (
		se  *grid.ShapeError
		src *grid.SourceError
	)
	switch {
	case errors.As(err, &se):
		return se.Error()
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("File %s was not found", path)
	case errors.As(err, &src):
		return fmt.Sprintf("File %s could not be read: %v", path, src.Err)
	default:
		return err.Error()
	}
}
