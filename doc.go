// Package islands counts islands of 1s in a 0/1 grid without labelling
// components: the grid is eroded to a fixed point and the survivors are
// counted.
//
// What is inside?
//
//	grid/        — padded land/water buffer, CSV loader, shape errors
//	erosion/     — trigger sets, the erosion rule, fixed-point passes, Count
//	render/      — snapshot printing (plain or coloured)
//	cmd/islands/ — command line: islands <rows> <cols> <file>
//
// Quick example:
//
//	0 1 1 0          pass {1}           0 1 0 0
//	1 1 0 0   ───────────────────▶      0 0 0 0      Total islands: 2
//	0 0 1 1     pass {1,2} (idle)       0 0 0 1
//
// Only orthogonal neighbours connect; the grid is assumed to be surrounded
// by water, and a one-cell water border is added on load.
//
//	go install github.com/katalvlaran/islands/cmd/islands@latest
package islands
