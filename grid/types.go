// SPDX-License-Identifier: MIT

package grid

// Cell values.
const (
	// Water is the value of an eroded or never-land cell.
	Water = 0
	// Land is the value of a cell that may still be eroded.
	Land = 1
)

// Grid is a padded rows×cols land/water buffer.
//
// cells has (rows+2)×(cols+2) entries in row-major order; stride = cols+2.
// The border ring is water for the lifetime of the Grid: nothing in this
// package writes it, and Clear is the only mutator, so cells move from land
// to water and never back.
type Grid struct {
	rows, cols int
	stride     int
	cells      []int
}

// Option configures grid construction.
type Option func(*options)

type options struct {
	// strict rejects values outside {Water, Land}.
	strict bool
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStrictValues makes construction fail with ErrValueOutOfRange when a
// cell value is neither 0 nor 1. By default such values are stored as-is.
func WithStrictValues() Option {
	return func(o *options) {
		o.strict = true
	}
}
