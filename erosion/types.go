// SPDX-License-Identifier: MIT

package erosion

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/islands/grid"
)

// Rule decides the fate of interior cell (r,c) under trigger set t. It may
// clear that one cell and reports whether it did. Rules must not touch any
// other cell.
type Rule func(g *grid.Grid, r, c int, t TriggerSet) bool

// ScanEvent describes the grid right after one full scan.
// Grid is the live grid, valid only for the duration of the callback.
type ScanEvent struct {
	Pass    int // index into the pass schedule; 0 for a lone Stabilize
	Trigger TriggerSet
	Scan    int // 0-based scan number within the pass
	Changes int
	Grid    *grid.Grid
}

// PassStats summarises one Stabilize run.
type PassStats struct {
	Trigger TriggerSet
	Scans   int   // completed scans, always ≥ 1
	Eroded  int   // cells cleared across all scans
	Changes []int // cells cleared per scan; the last entry is 0
}

// Result is the outcome of Count.
type Result struct {
	Initial  int // land before the first pass
	Eroded   int // cells cleared by all passes
	Residual int // land left after the last pass
	Passes   []PassStats
}

// Islands returns the island count: the land cells left after erosion.
func (r Result) Islands() int {
	return r.Residual
}

// Option configures erosion via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// pass is invoked.
type Option func(*Options)

// Options holds the rule, schedule and callbacks of an erosion run.
type Options struct {
	// OnScan is called after every full scan.
	OnScan func(ScanEvent)

	// Rule is applied to each interior cell. Defaults to Erode.
	Rule Rule

	// Passes is the trigger schedule used by Count.
	Passes []TriggerSet

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Erode rule, the default
// Peninsulas→Mass schedule and a no-op OnScan hook.
func DefaultOptions() Options {
	return Options{
		OnScan: func(ScanEvent) {},
		Rule:   Erode,
		Passes: DefaultPasses(),
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithOnScan registers a callback run after each scan.
func WithOnScan(fn func(ScanEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScan = fn
		}
	}
}

// WithRule replaces the per-cell rule. A nil rule is a violation.
func WithRule(rule Rule) Option {
	return func(o *Options) {
		if rule == nil {
			o.err = errors.Wrap(ErrOptionViolation, "rule cannot be nil")
			return
		}
		o.Rule = rule
	}
}

// WithPasses replaces the trigger schedule used by Count.
// At least one pass is required.
func WithPasses(passes ...TriggerSet) Option {
	return func(o *Options) {
		if len(passes) == 0 {
			o.err = errors.Wrap(ErrOptionViolation, "at least one pass is required")
			return
		}
		o.Passes = append([]TriggerSet(nil), passes...)
	}
}
