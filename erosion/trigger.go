// SPDX-License-Identifier: MIT

package erosion

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest orthogonal neighbour sum of a 0/1 grid.
const MaxNeighbors = 4

// TriggerSet is an immutable set of neighbour counts in [0, MaxNeighbors].
// Bit n is set when a land cell with n land neighbours must erode.
type TriggerSet uint8

// Default trigger sets.
const (
	// Peninsulas removes dangling cells with a single land neighbour.
	Peninsulas TriggerSet = 1 << 1
	// Mass also removes cells with two land neighbours, eating island bodies
	// layer by layer.
	Mass TriggerSet = 1<<1 | 1<<2
)

// DefaultPasses returns the two-pass schedule used by Count: Peninsulas then Mass.
func DefaultPasses() []TriggerSet {
	return []TriggerSet{Peninsulas, Mass}
}

// NewTriggerSet builds a set from neighbour counts. Duplicates are ignored.
// Returns ErrTriggerOutOfRange for counts outside [0, MaxNeighbors].
func NewTriggerSet(counts ...int) (TriggerSet, error) {
	var t TriggerSet
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, errors.Wrapf(ErrTriggerOutOfRange, "count %d not in [0,%d]", n, MaxNeighbors)
		}
		t |= 1 << n
	}
	return t, nil
}

// Contains reports whether neighbour count n triggers erosion.
func (t TriggerSet) Contains(n int) bool {
	return n >= 0 && n <= MaxNeighbors && t&(1<<n) != 0
}

// Counts returns the members in ascending order.
func (t TriggerSet) Counts() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if t.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// String formats the set as "{1,2}".
func (t TriggerSet) String() string {
	parts := make([]string, 0, MaxNeighbors+1)
	for _, n := range t.Counts() {
		parts = append(parts, strconv.Itoa(n))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ParseTriggerSet parses a comma-separated list of counts such as "1,2".
func ParseTriggerSet(s string) (TriggerSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrInvalidPasses, "empty trigger set")
	}
	var counts []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidPasses, "trigger %q is not an integer", field)
		}
		counts = append(counts, n)
	}
	return NewTriggerSet(counts...)
}

// ParsePasses parses a semicolon-separated schedule of trigger sets, e.g.
// "1;1,2" for the default Peninsulas then Mass schedule.
func ParsePasses(s string) ([]TriggerSet, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.Wrap(ErrInvalidPasses, "no passes")
	}
	var passes []TriggerSet
	for i, field := range strings.Split(s, ";") {
		t, err := ParseTriggerSet(field)
		if err != nil {
			return nil, errors.WithMessagef(err, "pass %d", i)
		}
		passes = append(passes, t)
	}
	return passes, nil
}
