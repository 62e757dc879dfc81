package render

import (
	"fmt"
	"math/bits"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// Renderer draws a board.Board onto a tcell.Screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer initializes a real terminal screen and returns a Renderer
// wrapping it. Callers own the screen's lifecycle and must call Close when
// done.
func NewRenderer() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: initializing screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render: starting screen: %w", err)
	}

	return &Renderer{screen: screen}, nil
}

// NewRendererWithScreen wraps an already-initialized tcell.Screen, used by
// tests to drive a Renderer against a tcell.SimulationScreen instead of a
// real terminal.
func NewRendererWithScreen(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Close finalizes the underlying screen.
func (r *Renderer) Close() {
	r.screen.Fini()
}

// Draw paints b onto the screen starting at (0, 0) and flushes it.
func (r *Renderer) Draw(b *board.Board) error {
	r.screen.Clear()
	for i := 0; i < b.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			cell, err := b.Cell(board.Point{Row: i, Col: j})
			if err != nil {
				return fmt.Errorf("render: reading cell (%d,%d): %w", i, j, err)
			}

			ch, style := glyph(cell, b.Palette())
			r.screen.SetContent(j, i, ch, nil, style)
		}
	}
	r.screen.Show()

	return nil
}

// glyph maps a cell's current possibility set to a displayed rune and
// style: an unsolved cell of either color flavor renders as a gray '?', a
// solved binary cell as a white-on-black or black-on-white space, and a
// solved multi-color cell as a space on that color's RGB background.
func glyph(c color.Color, palette *color.Palette) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if !c.IsSolved() {
		return '?', style.Foreground(tcell.ColorGray)
	}

	if b, ok := c.(color.Binary); ok {
		if b == color.Black {
			return ' ', style.Background(tcell.ColorWhite)
		}

		return ' ', style.Background(tcell.ColorBlack)
	}

	if m, ok := c.(color.Multi); ok && palette != nil {
		id := uint8(bits.TrailingZeros32(m.Mask()))
		if rgb, ok := palette.RGB(id); ok {
			return ' ', style.Background(tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2])))
		}
	}

	return ' ', style
}
