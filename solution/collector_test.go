package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/solution"
)

func oneCellBoard(t *testing.T, c color.Color) *board.Board {
	t.Helper()
	rows := []color.Description{{{Size: 1, Color: color.Black}}}
	cols := []color.Description{{{Size: 1, Color: color.Black}}}
	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)
	if c != nil {
		_, err := b.SetColor(board.Point{Row: 0, Col: 0}, c)
		require.NoError(t, err)
	}

	return b
}

func TestNewCollectorRejectsNonPositive(t *testing.T) {
	_, err := solution.NewCollector(0)
	assert.ErrorIs(t, err, solution.ErrMaxSolutionsNonPositive)
}

func TestCollectorDedup(t *testing.T) {
	c, err := solution.NewCollector(2)
	require.NoError(t, err)

	b1 := oneCellBoard(t, color.Black)
	accepted, err := c.Submit(b1)
	require.NoError(t, err)
	assert.True(t, accepted)

	b2 := oneCellBoard(t, color.Black)
	accepted, err = c.Submit(b2)
	require.NoError(t, err)
	assert.False(t, accepted, "identical grid must be rejected as a duplicate")

	assert.Len(t, c.Solutions(), 1)
}

func TestCollectorMaxSolutions(t *testing.T) {
	c, err := solution.NewCollector(1)
	require.NoError(t, err)

	b1 := oneCellBoard(t, color.Black)
	accepted, err := c.Submit(b1)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.True(t, c.Full())

	b2 := oneCellBoard(t, color.White)
	accepted, err = c.Submit(b2)
	require.NoError(t, err)
	assert.False(t, accepted, "distinct grid must still be rejected once full")
}

func TestCollectorStatus(t *testing.T) {
	c, err := solution.NewCollector(2)
	require.NoError(t, err)

	assert.Equal(t, solution.Status{Kind: solution.StatusUnsolvable}, c.Status(true))

	_, err = c.Submit(oneCellBoard(t, color.Black))
	require.NoError(t, err)
	assert.Equal(t, solution.Status{Kind: solution.StatusUnique, FoundCount: 1}, c.Status(true))

	_, err = c.Submit(oneCellBoard(t, color.White))
	require.NoError(t, err)
	assert.Equal(t, solution.Status{Kind: solution.StatusMultiple, FoundCount: 2}, c.Status(true))

	assert.Equal(t, solution.StatusMultiple, c.Status(false).Kind)
}

func TestCollectorNotify(t *testing.T) {
	c, err := solution.NewCollector(1)
	require.NoError(t, err)

	var got []board.Point
	c.Subscribe(func(p board.Point, before, after color.Color) {
		got = append(got, p)
	})

	c.Notify(board.Point{Row: 0, Col: 1}, color.Undefined, color.Black)
	require.Len(t, got, 1)
	assert.Equal(t, board.Point{Row: 0, Col: 1}, got[0])
}
