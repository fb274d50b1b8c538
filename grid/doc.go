// SPDX-License-Identifier: MIT

// Package grid holds the padded land/water buffer consumed by the erosion
// passes, together with the comma-separated loader that produces it.
//
// What:
//
//   - Grid stores rows×cols interior cells inside a one-cell water border,
//     flattened into a single row-major []int of (rows+2)×(cols+2) entries.
//   - The border is never written, so every interior cell has four in-bounds
//     orthogonal neighbours and NeighborSum needs no bounds checks.
//   - FromRows, Read and Load validate the declared shape exactly.
//
// Coordinates:
//
//	Interior cells are addressed by padded coordinates: r ∈ [1, Rows()],
//	c ∈ [1, Cols()]. Row 0, row Rows()+1, column 0 and column Cols()+1 are
//	the border.
//
// Input format:
//
//	0,1,1,0
//	1,1,0,0
//	0,0,1,1
//
// One row per line, no header. Surrounding whitespace is trimmed per line
// and per token.
//
// Errors:
//
//   - ErrBadShape: negative declared dimensions.
//   - ErrShapeMismatch: a row length or the row count differs from the
//     declaration (returned as *ShapeError).
//   - ErrSourceUnavailable: the backing file cannot be opened or read; the
//     *SourceError carrying it unwraps to the OS error.
//   - ErrValueOutOfRange: a token is not an integer, or (WithStrictValues)
//     is outside {0,1}.
package grid
