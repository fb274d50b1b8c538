// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: " so log lines can be grepped.
// Callers branch with errors.Is; ShapeError additionally carries the
// offending row and lengths for diagnostics.
var (
	// ErrBadShape is returned when a declared dimension is negative.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrShapeMismatch is returned when parsed content does not match the
	// declared rows/cols.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrSourceUnavailable is returned when the input cannot be opened or read.
	ErrSourceUnavailable = errors.New("grid: source unavailable")

	// ErrValueOutOfRange is returned for tokens that are not integers, or
	// for values outside {0,1} when strict validation is enabled.
	ErrValueOutOfRange = errors.New("grid: value out of range")
)

// ShapeError describes a declared-vs-actual shape mismatch.
//
// When Row > 0 the mismatch is in that row's length (1-based row number);
// when Row == 0 the total row count is wrong. Got and Want hold the actual
// and declared lengths respectively.
type ShapeError struct {
	Row  int
	Got  int
	Want int
}

// Error formats the mismatch the same way the command-line diagnostic does.
func (e *ShapeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("Row %d had invalid length %d instead of %d", e.Row, e.Got, e.Want)
	}
	return fmt.Sprintf("Data file contained %d rows instead of %d", e.Got, e.Want)
}

// Is makes errors.Is(err, ErrShapeMismatch) hold for every *ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// SourceError reports an input that could not be opened or read. Err is the
// underlying I/O error, so errors.Is(err, fs.ErrNotExist) tells a missing
// file apart from one that exists but cannot be read.
type SourceError struct {
	Path string // empty when reading from an io.Reader
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("grid: source unavailable: %v", e.Err)
	}
	return fmt.Sprintf("grid: source %s unavailable: %v", e.Path, e.Err)
}

// Unwrap exposes the I/O error.
func (e *SourceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSourceUnavailable) hold for every *SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
