package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/blocky/pkg/board"
)

// Action is a kind of move a player can make on a block.
type Action int

const (
	RotateClockwise Action = iota
	RotateCounterClockwise
	SwapHorizontal
	SwapVertical
	Smash
	Paint
	Combine
	Pass
)

// Actions lists every action a sampler draws from, uniformly.
var Actions = [...]Action{
	RotateClockwise,
	RotateCounterClockwise,
	SwapHorizontal,
	SwapVertical,
	Smash,
	Paint,
	Combine,
	Pass,
}

func (a Action) String() string {
	switch a {
	case RotateClockwise:
		return "rotate clockwise"
	case RotateCounterClockwise:
		return "rotate counter-clockwise"
	case SwapHorizontal:
		return "swap horizontal"
	case SwapVertical:
		return "swap vertical"
	case Smash:
		return "smash"
	case Paint:
		return "paint"
	case Combine:
		return "combine"
	case Pass:
		return "pass"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// perform applies a to blk. Paint uses colour; Smash draws from rng.
// Pass always succeeds and changes nothing.
func perform(a Action, blk *board.Block, rng *rand.Rand, colour board.Colour) bool {
	switch a {
	case RotateClockwise:
		return blk.Rotate(board.Clockwise)
	case RotateCounterClockwise:
		return blk.Rotate(board.CounterClockwise)
	case SwapHorizontal:
		return blk.Swap(board.Horizontal)
	case SwapVertical:
		return blk.Swap(board.Vertical)
	case Smash:
		return blk.Smash(rng)
	case Paint:
		return blk.Paint(colour)
	case Combine:
		return blk.Combine()
	case Pass:
		return true
	default:
		return false
	}
}

// Move is an action bound to the block it acts on.
type Move struct {
	Action Action
	Block  *board.Block
}

// Apply performs the move on its block. Paint uses colour, normally the
// colour of the moving player's goal.
func (m Move) Apply(rng *rand.Rand, colour board.Colour) bool {
	if m.Block == nil {
		return false
	}
	return perform(m.Action, m.Block, rng, colour)
}

func (m Move) String() string {
	if m.Block == nil {
		return m.Action.String()
	}
	x, y := m.Block.Position()
	return fmt.Sprintf("%s at (%d, %d) level %d", m.Action, x, y, m.Block.Level())
}
