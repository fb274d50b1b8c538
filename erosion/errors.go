// SPDX-License-Identifier: MIT

package erosion

import "errors"

var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("erosion: grid is nil")

	// ErrTriggerOutOfRange is returned for neighbour counts outside [0, MaxNeighbors].
	ErrTriggerOutOfRange = errors.New("erosion: trigger count out of range")

	// ErrInvalidPasses is returned when a pass schedule cannot be parsed.
	ErrInvalidPasses = errors.New("erosion: invalid pass schedule")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("erosion: invalid option supplied")
)
