// SPDX-License-Identifier: MIT

package erosion

import (
	"k8s.io/klog/v2"

	"github.com/katalvlaran/islands/grid"
)

// Erode clears land cell (r,c) when its orthogonal land-neighbour sum is in t.
// Water cells are left alone. Reports whether the cell was cleared.
func Erode(g *grid.Grid, r, c int, t TriggerSet) bool {
	if g.At(r, c) != grid.Land {
		return false
	}
	if !t.Contains(g.NeighborSum(r, c)) {
		return false
	}
	g.Clear(r, c)
	return true
}

// Stabilize applies the rule to every interior cell of g in row-major order,
// repeating full scans until one changes nothing. At least one scan runs.
//
// On return no interior cell satisfies the rule for t, so calling Stabilize
// again is a no-op. Returns ErrNilGrid or ErrOptionViolation for bad
// arguments; the pass itself cannot fail.
func Stabilize(g *grid.Grid, t TriggerSet, opts ...Option) (PassStats, error) {
	if g == nil {
		return PassStats{}, ErrNilGrid
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return PassStats{}, o.err
	}
	return stabilize(g, t, 0, &o), nil
}

// stabilize is the fixed-point loop shared by Stabilize and Count.
func stabilize(g *grid.Grid, t TriggerSet, pass int, o *Options) PassStats {
	stats := PassStats{Trigger: t}
	for {
		changes := scan(g, t, o.Rule)
		stats.Changes = append(stats.Changes, changes)
		stats.Eroded += changes
		o.OnScan(ScanEvent{Pass: pass, Trigger: t, Scan: stats.Scans, Changes: changes, Grid: g})
		klog.V(2).Infof("pass %d %s: after loop %d changes = %d", pass, t, stats.Scans, changes)
		stats.Scans++
		if changes == 0 {
			return stats
		}
	}
}

// scan visits interior cells top-to-bottom, left-to-right. A change is only
// counted when the cell value actually moved, so the land count bounds the
// number of productive scans whatever the rule reports.
func scan(g *grid.Grid, t TriggerSet, rule Rule) int {
	changes := 0
	for r := 1; r <= g.Rows(); r++ {
		for c := 1; c <= g.Cols(); c++ {
			before := g.At(r, c)
			if rule(g, r, c, t) && g.At(r, c) != before {
				changes++
			}
		}
	}
	return changes
}
