// SPDX-License-Identifier: MIT
package erosion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/erosion"
)

// TestNewTriggerSet covers membership, duplicates and range checks.
func TestNewTriggerSet(t *testing.T) {
	ts, err := erosion.NewTriggerSet(2, 1, 2)
	require.NoError(t, err)
	require.Equal(t, erosion.Mass, ts)
	require.Equal(t, []int{1, 2}, ts.Counts())

	for n := -1; n <= erosion.MaxNeighbors+1; n++ {
		assert.Equalf(t, n == 1 || n == 2, ts.Contains(n), "Contains(%d)", n)
	}

	_, err = erosion.NewTriggerSet(5)
	require.ErrorIs(t, err, erosion.ErrTriggerOutOfRange)
	_, err = erosion.NewTriggerSet(-1)
	require.ErrorIs(t, err, erosion.ErrTriggerOutOfRange)

	empty, err := erosion.NewTriggerSet()
	require.NoError(t, err)
	require.Empty(t, empty.Counts())
}

// TestTriggerSet_String pins the display format used in logs.
func TestTriggerSet_String(t *testing.T) {
	assert.Equal(t, "{1}", erosion.Peninsulas.String())
	assert.Equal(t, "{1,2}", erosion.Mass.String())
	assert.Equal(t, "{}", erosion.TriggerSet(0).String())
}

// TestParsePasses covers the schedule syntax "a,b;c".
func TestParsePasses(t *testing.T) {
	passes, err := erosion.ParsePasses("1;1,2")
	require.NoError(t, err)
	require.Equal(t, erosion.DefaultPasses(), passes)

	passes, err = erosion.ParsePasses(" 0 , 1 ; 3 ")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, passes[0].Counts())
	require.Equal(t, []int{3}, passes[1].Counts())

	bad := []struct {
		in   string
		want error
	}{
		{"", erosion.ErrInvalidPasses},
		{"1;;2", erosion.ErrInvalidPasses},
		{"1;x", erosion.ErrInvalidPasses},
		{"1;7", erosion.ErrTriggerOutOfRange},
	}
	for _, tc := range bad {
		_, err := erosion.ParsePasses(tc.in)
		assert.ErrorIsf(t, err, tc.want, "ParsePasses(%q)", tc.in)
	}
}
