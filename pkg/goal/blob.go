package goal

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/matzehuels/blocky/pkg/board"
)

type cellState int8

const (
	unvisited cellState = iota
	notTarget
	target
)

type cell struct{ x, y int }

var neighbours = [...]cell{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// blobSearch flood-fills a flattened board. Every cell is examined once:
// cells are marked when first seen, so a non-target cell is never revisited
// and a target cell is pushed on the work list at most once.
type blobSearch struct {
	grid    board.Grid
	colour  board.Colour
	visited [][]cellState
	work    *arraystack.Stack
}

func newBlobSearch(grid board.Grid, colour board.Colour) *blobSearch {
	visited := make([][]cellState, grid.Side())
	for i := range visited {
		visited[i] = make([]cellState, grid.Side())
	}
	return &blobSearch{grid: grid, colour: colour, visited: visited, work: arraystack.New()}
}

func (s *blobSearch) largest() int {
	best := 0
	for x := range s.grid {
		for y := range s.grid[x] {
			best = max(best, s.undiscoveredBlobSize(x, y))
		}
	}
	return best
}

// undiscoveredBlobSize returns the size of the target-coloured blob that
// contains (x, y) and has not been visited yet. It returns 0 when the cell is
// out of bounds, already visited, or not of the target colour.
func (s *blobSearch) undiscoveredBlobSize(x, y int) int {
	if !s.mark(x, y) {
		return 0
	}
	size := 0
	s.work.Push(cell{x, y})
	for !s.work.Empty() {
		v, _ := s.work.Pop()
		c := v.(cell)
		size++
		for _, d := range neighbours {
			if nx, ny := c.x+d.x, c.y+d.y; s.mark(nx, ny) {
				s.work.Push(cell{nx, ny})
			}
		}
	}
	return size
}

// mark visits (x, y) and reports whether it is a newly found target cell.
func (s *blobSearch) mark(x, y int) bool {
	n := s.grid.Side()
	if x < 0 || y < 0 || x >= n || y >= n || s.visited[x][y] != unvisited {
		return false
	}
	if s.grid[x][y] != s.colour {
		s.visited[x][y] = notTarget
		return false
	}
	s.visited[x][y] = target
	return true
}
