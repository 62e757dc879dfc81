package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/format"
)

func TestDecodeBinaryPuzzle(t *testing.T) {
	doc := `
rows:
  - [{size: 1}]
cols:
  - [{size: 1}]
`
	b, err := format.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Height())
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, color.Description{{Size: 1, Color: color.Black}}, b.RowDescription(0))
}

func TestDecodeRejectsEmptyPuzzle(t *testing.T) {
	_, err := format.Decode(strings.NewReader("rows: []\ncols: []\n"))
	require.ErrorIs(t, err, format.ErrEmptyPuzzle)
}

func TestDecodeRejectsBadBlockSize(t *testing.T) {
	doc := "rows:\n  - [{size: 0}]\ncols:\n  - [{size: 1}]\n"
	_, err := format.Decode(strings.NewReader(doc))
	require.ErrorIs(t, err, format.ErrMissingBlockSize)
}

func TestDecodeMultiColorPuzzle(t *testing.T) {
	doc := `
palette:
  blank: blank
  colors:
    - {name: red, rgb: [220, 20, 60]}
    - {name: green, rgb: [34, 139, 34]}
rows:
  - [{size: 1, color: red}, {size: 1, color: green}]
cols:
  - [{size: 1, color: red}]
  - [{size: 1, color: green}]
  - []
`
	b, err := format.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, b.Palette())

	cell, err := b.Cell(board.Point{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.False(t, cell.IsSolved())
	assert.Equal(t, 3, len(cell.Variants()))
}

func TestDecodeRejectsUnknownColorName(t *testing.T) {
	doc := `
palette:
  blank: blank
  colors:
    - {name: red, rgb: [220, 20, 60]}
rows:
  - [{size: 1, color: blue}]
cols:
  - [{size: 1, color: red}]
`
	_, err := format.Decode(strings.NewReader(doc))
	require.ErrorIs(t, err, format.ErrUnknownColor)
}
