package backtrack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/backtrack"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/probe"
	"github.com/katalvlaran/nonogrid/propagate"
)

func one() color.Description {
	return color.Description{{Size: 1, Color: color.Black}}
}

// The 2x2 "exactly one black per row/column" puzzle has exactly two
// solutions; MaxSolutions=1 should find one of them.
func TestRunFindsOneSolution(t *testing.T) {
	rows := []color.Description{one(), one()}
	cols := []color.Description{one(), one()}
	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)

	drv := propagate.NewDriver()
	require.NoError(t, drv.Run(b))
	eng := probe.NewEngine()

	s := backtrack.NewSearch()
	result, err := s.Run(context.Background(), b, eng, drv, backtrack.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
	assert.True(t, result.Solutions[0].IsSolvedFull())
}

// With MaxSolutions=2 the search finds both permutation solutions; it stops
// on reaching the cap, so it reports the tree as not exhausted.
func TestRunFindsAllSolutions(t *testing.T) {
	rows := []color.Description{one(), one()}
	cols := []color.Description{one(), one()}
	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)

	drv := propagate.NewDriver()
	require.NoError(t, drv.Run(b))
	eng := probe.NewEngine()

	s := backtrack.NewSearch()
	cfg := backtrack.Config{MaxSolutions: 2}
	result, err := s.Run(context.Background(), b, eng, drv, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Solutions, 2)
	assert.False(t, result.Exhausted)

	a, bb := result.Solutions[0], result.Solutions[1]
	same := true
	for i := 0; i < a.Height(); i++ {
		ra, _ := a.GetRow(i)
		rb, _ := bb.GetRow(i)
		for j := range ra {
			if !ra[j].Equal(rb[j]) {
				same = false
			}
		}
	}
	assert.False(t, same, "the two permutation solutions should differ")
}

// An already-cancelled context stops the search immediately and reports a
// non-exhausted result rather than an error.
func TestRunRespectsCancellation(t *testing.T) {
	rows := []color.Description{one(), one()}
	cols := []color.Description{one(), one()}
	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)

	drv := propagate.NewDriver()
	require.NoError(t, drv.Run(b))
	eng := probe.NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := backtrack.NewSearch()
	result, err := s.Run(ctx, b, eng, drv, backtrack.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, result.Solutions)
	assert.False(t, result.Exhausted)
}
