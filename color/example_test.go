package color_test

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/color"
)

// ExampleBinary_IsUpdatedWith shows a single cell narrowing from no
// information down to a solved color.
func ExampleBinary_IsUpdatedWith() {
	cell := color.Undefined
	updated, changed, err := cell.IsUpdatedWith(color.Black)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(updated, changed)
	// Output: # true
}
