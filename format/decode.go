package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// Decode reads a YAML puzzle description from r and returns the Board it
// describes, every cell starting at the appropriate "nothing known yet"
// value for its color flavor (color.Undefined for binary, every palette id
// for multi-color).
func Decode(r io.Reader) (*board.Board, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("format: reading puzzle: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("format: parsing puzzle: %w", err)
	}

	if len(doc.Rows) == 0 || len(doc.Cols) == 0 {
		return nil, ErrEmptyPuzzle
	}

	if doc.Palette == nil {
		return decodeBinary(doc)
	}

	return decodeMulti(doc)
}

// decodeBinary builds a black-and-white Board from a palette-less document.
func decodeBinary(doc document) (*board.Board, error) {
	rows, err := describeLines(doc.Rows, nil)
	if err != nil {
		return nil, err
	}
	cols, err := describeLines(doc.Cols, nil)
	if err != nil {
		return nil, err
	}

	return board.NewBoard(rows, cols, color.Undefined)
}

// decodeMulti builds a multi-color Board from a document declaring a
// palette, resolving each block's color name via color.Palette.Lookup.
func decodeMulti(doc document) (*board.Board, error) {
	names := make([]string, len(doc.Palette.Colors))
	rgb := make([][3]uint8, len(doc.Palette.Colors))
	for i, c := range doc.Palette.Colors {
		names[i] = c.Name
		rgb[i] = c.RGB
	}

	palette, err := color.NewPalette(doc.Palette.Blank, names, rgb)
	if err != nil {
		return nil, fmt.Errorf("format: building palette: %w", err)
	}

	rows, err := describeLines(doc.Rows, palette)
	if err != nil {
		return nil, err
	}
	cols, err := describeLines(doc.Cols, palette)
	if err != nil {
		return nil, err
	}

	initial, err := everyColorOf(palette)
	if err != nil {
		return nil, fmt.Errorf("format: building initial cell state: %w", err)
	}

	return board.NewBoard(rows, cols, initial, board.WithPalette(palette))
}

// describeLines converts raw YAML block lists into color.Descriptions,
// resolving each block's color against palette (nil selects the binary
// color.Black default).
func describeLines(lines [][]blockSpec, palette *color.Palette) ([]color.Description, error) {
	out := make([]color.Description, len(lines))
	for i, line := range lines {
		desc := make(color.Description, len(line))
		for j, blk := range line {
			if blk.Size < 1 {
				return nil, fmt.Errorf("%w: line %d block %d", ErrMissingBlockSize, i, j)
			}

			c, err := resolveColor(blk.Color, palette)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d block %d (%q)", err, i, j, blk.Color)
			}
			desc[j] = color.Block{Size: blk.Size, Color: c}
		}
		out[i] = desc
	}

	return out, nil
}

// resolveColor maps a block's color name to a concrete color.Color: the
// binary color.Black when palette is nil and name is empty or "black", or
// a palette.Lookup'd color.Multi singleton otherwise.
func resolveColor(name string, palette *color.Palette) (color.Color, error) {
	if palette == nil {
		if name == "" || name == "black" {
			return color.Black, nil
		}

		return nil, ErrUnknownColor
	}

	id, ok := palette.Lookup(name)
	if !ok || id == 0 {
		// id 0 is the palette's blank: never a legal block color.
		return nil, ErrUnknownColor
	}

	return color.NewMulti(palette, id)
}

// everyColorOf returns the Multi admitting every concrete id in palette
// (including blank), the starting state for every cell of a freshly
// decoded multi-color board.
func everyColorOf(palette *color.Palette) (color.Color, error) {
	ids := make([]uint8, palette.Size())
	for id := range ids {
		ids[id] = uint8(id)
	}

	return color.NewMulti(palette, ids...)
}
