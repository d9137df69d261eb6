package board_test

import (
	"fmt"

	"github.com/matzehuels/blocky/pkg/board"
)

func ExampleFromPattern() {
	p, _ := board.ParsePattern("(b (r r g y) g y)")
	root, _ := board.FromPattern(16, 2, p)

	blk, _ := root.Locate(5, 1, 2)
	c, _ := blk.Colour()
	x, y := blk.Position()
	fmt.Printf("(%d, %d) size %d: %s\n", x, y, blk.Size(), c)
	// Output:
	// (4, 0) size 4: Real Red
}

func ExampleBlock_Rotate() {
	p, _ := board.ParsePattern("(b r g y)")
	root, _ := board.FromPattern(8, 1, p)

	root.Rotate(board.Clockwise)
	fmt.Println(root.Pattern())
	root.Swap(board.Horizontal)
	fmt.Println(root.Pattern())
	// Output:
	// (r g y b)
	// (g r b y)
}

func ExampleBlock_Flatten() {
	p, _ := board.ParsePattern("(b r g y)")
	root, _ := board.FromPattern(8, 1, p)

	grid := root.Flatten()
	for row := 0; row < grid.Side(); row++ {
		for col := 0; col < grid.Side(); col++ {
			fmt.Printf("%c", grid[col][row].Letter())
		}
		fmt.Println()
	}
	// Output:
	// rb
	// gy
}
