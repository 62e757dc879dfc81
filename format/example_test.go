package format_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/format"
)

// ExampleDecode decodes a small YAML puzzle description and solves it.
func ExampleDecode() {
	doc := `
rows:
  - [{size: 1}]
cols:
  - [{size: 1}]
`
	b, err := format.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := nonogrid.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Status.Kind)
	// Output: Unique
}

// TestDecodeMultiColorPuzzleSolvesToExpectedColors feeds
// TestDecodeMultiColorPuzzle's colored document all the way through
// nonogrid.Solve: the column clues alone pin every cell, so the result
// must be the unique red/green/blank row the puzzle describes, not just a
// document that decodes without error.
func TestDecodeMultiColorPuzzleSolvesToExpectedColors(t *testing.T) {
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

	result, err := nonogrid.Solve(b)
	require.NoError(t, err)
	require.Equal(t, "Unique", result.Status.Kind.String())
	require.Len(t, result.Solutions, 1)

	row, err := result.Solutions[0].GetRow(0)
	require.NoError(t, err)
	require.Len(t, row, 3)

	assert.Equal(t, "red", row[0].String())
	assert.Equal(t, "green", row[1].String())
	assert.Equal(t, "blank", row[2].String())
}
