package render_test

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/render"
)

// ExampleRenderer_Draw solves a trivial puzzle and draws its unique
// solution onto a simulated terminal screen (a real program would use
// render.NewRenderer instead).
func ExampleRenderer_Draw() {
	one := color.Description{{Size: 1, Color: color.Black}}
	b, err := board.NewBoard([]color.Description{one}, []color.Description{one}, color.Undefined)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := nonogrid.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		fmt.Println("error:", err)
		return
	}
	defer screen.Fini()
	screen.SetSize(4, 4)

	r := render.NewRendererWithScreen(screen)
	if err := r.Draw(result.Solutions[0]); err != nil {
		fmt.Println("error:", err)
		return
	}

	ch, _, _, _ := screen.GetContent(0, 0)
	fmt.Println(result.Status.Kind, string(ch))
	// Output: Unique
}
