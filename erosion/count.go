// SPDX-License-Identifier: MIT

package erosion

import (
	"k8s.io/klog/v2"

	"github.com/katalvlaran/islands/grid"
)

// Count erodes g in place with each trigger set of the schedule (by default
// Peninsulas then Mass), each run to its fixed point, and returns the land
// totals. Result.Islands is the land left after the last pass.
//
// Returns ErrNilGrid or ErrOptionViolation for bad arguments.
// Complexity: O(S·R·C) where S is the total number of scans, S ≤ land+passes.
func Count(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return Result{}, o.err
	}

	res := Result{Initial: g.LandCount()}
	for i, t := range o.Passes {
		stats := stabilize(g, t, i, &o)
		klog.V(1).Infof("pass %d %s: %d scans, %d cells eroded", i, t, stats.Scans, stats.Eroded)
		res.Passes = append(res.Passes, stats)
		res.Eroded += stats.Eroded
	}
	res.Residual = g.LandCount()
	return res, nil
}
