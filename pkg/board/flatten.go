package board

// Grid is a square grid of unit-cell colours indexed [column][row], with
// (0, 0) at the top-left corner.
type Grid [][]Colour

// Side returns the number of columns (and rows) of the grid.
func (g Grid) Side() int { return len(g) }

// Flatten renders the subtree rooted at b into a Grid of side
// 2^(max depth - level). A leaf fills the whole grid with its colour.
// Otherwise the left columns are the top-left child stacked above the
// bottom-left child, and the right columns are the top-right child above the
// bottom-right child.
func (b *Block) Flatten() Grid {
	n := 1 << (b.maxDepth - b.level)
	if !b.split || n == 1 {
		return uniformGrid(n, b.colour)
	}
	tr := b.quads[TopRight].Flatten()
	tl := b.quads[TopLeft].Flatten()
	bl := b.quads[BottomLeft].Flatten()
	br := b.quads[BottomRight].Flatten()

	grid := make(Grid, 0, n)
	for _, halves := range [][2]Grid{{tl, bl}, {tr, br}} {
		top, bottom := halves[0], halves[1]
		for i := range top {
			col := make([]Colour, 0, n)
			col = append(col, top[i]...)
			col = append(col, bottom[i]...)
			grid = append(grid, col)
		}
	}
	return grid
}

func uniformGrid(n int, c Colour) Grid {
	grid := make(Grid, n)
	for i := range grid {
		col := make([]Colour, n)
		for j := range col {
			col[j] = c
		}
		grid[i] = col
	}
	return grid
}
