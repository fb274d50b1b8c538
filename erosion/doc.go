// SPDX-License-Identifier: MIT

// Package erosion counts islands on a padded grid by repeatedly stripping
// land cells whose orthogonal land-neighbour count falls in a trigger set.
//
// What:
//
//   - Erode is the per-cell rule: a land cell whose neighbour sum is in the
//     TriggerSet becomes water.
//   - Stabilize scans every interior cell in row-major order, applying the
//     rule, and repeats until a full scan changes nothing. At least one scan
//     always runs. Cells see erosions made earlier in the same scan.
//   - Count runs the default schedule, Peninsulas ({1}) then Mass ({1,2}),
//     on the same grid and reports the land left over.
//
// Counting:
//
//	Row-major erosion shrinks each island until one isolated cell is left.
//	That cell has neighbour sum 0, and no default trigger set contains 0,
//	so the cells remaining after both passes are the islands:
//
//	  0 1 1 1 0   pass {1}, scan 0   0 0 0 1 0
//	              ───────────────▶
//
//	Result.Eroded keeps the number of cells removed, which is always
//	Initial - Residual.
//
// The schedule is a heuristic, not a connected-components labelling: shapes
// that split into several pieces during erosion are counted once per piece.
//
// Termination:
//
//	Every scan either clears at least one land cell or ends the pass, so a
//	pass runs at most LandCount()+1 scans.
//
// Options:
//
//   - WithOnScan: observe the grid after every scan (intermediate snapshots).
//   - WithRule: replace Erode with another cell rule.
//   - WithPasses: replace the default trigger schedule in Count.
//
// Errors:
//
//   - ErrNilGrid: nil grid supplied.
//   - ErrTriggerOutOfRange: trigger count outside [0,4].
//   - ErrInvalidPasses: malformed pass schedule string.
//   - ErrOptionViolation: invalid option supplied.
package erosion
