package goal

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
)

// Goal is a scoring objective for one player.
type Goal interface {
	// Kind reports which scoring rule the goal applies.
	Kind() Kind
	// Colour is the target colour.
	Colour() board.Colour
	// Score returns the current score of the board for this goal.
	Score(b *board.Block) int
	// Description returns a sentence explaining the goal to a player.
	Description() string
}

// Kind names a scoring rule.
type Kind string

const (
	KindPerimeter Kind = "perimeter"
	KindBlob      Kind = "blob"
	// KindRandom asks Generate to pick one of the rules at random.
	KindRandom Kind = "random"
)

// ParseKind validates a goal kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPerimeter, KindBlob, KindRandom:
		return k, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown goal %q (want perimeter, blob or random)", s)
	}
}

// New returns a goal of the given kind. KindRandom is not accepted here.
func New(kind Kind, colour board.Colour) (Goal, error) {
	if !colour.InPalette() {
		return nil, errors.New(errors.ErrCodeInvalidColour, "%s is not a palette colour", colour)
	}
	switch kind {
	case KindPerimeter:
		return Perimeter{colour: colour}, nil
	case KindBlob:
		return Blob{colour: colour}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot create goal of kind %q", kind)
	}
}

// Generate returns n goals of the same kind, each with a different random
// palette colour. With KindRandom the kind itself is drawn at random.
func Generate(rng *rand.Rand, kind Kind, n int) ([]Goal, error) {
	colours := board.Palette()
	if n < 0 || n > len(colours) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot generate %d goals from %d colours", n, len(colours))
	}
	if kind == KindRandom {
		kind = KindPerimeter
		if rng.IntN(2) == 1 {
			kind = KindBlob
		}
	}
	rng.Shuffle(len(colours), func(i, j int) { colours[i], colours[j] = colours[j], colours[i] })

	goals := make([]Goal, n)
	for i := range goals {
		g, err := New(kind, colours[i])
		if err != nil {
			return nil, err
		}
		goals[i] = g
	}
	return goals, nil
}

// Perimeter rewards target-coloured unit cells on the edge of the board.
type Perimeter struct {
	colour board.Colour
}

func (g Perimeter) Kind() Kind            { return KindPerimeter }
func (g Perimeter) Colour() board.Colour { return g.colour }

// Score sums, over every index p along a side, the matches among the cells
// at the top, left, bottom and right of the ring. Corners are counted once
// per side they belong to.
func (g Perimeter) Score(b *board.Block) int {
	grid := b.Flatten()
	n := grid.Side()
	score := 0
	for p := range n {
		for _, c := range [...]board.Colour{grid[0][p], grid[p][0], grid[n-1][p], grid[p][n-1]} {
			if c == g.colour {
				score++
			}
		}
	}
	return score
}

func (g Perimeter) Description() string {
	return fmt.Sprintf("Aim to get as many %s blocks by the perimeter of the board!", g.colour)
}

// Blob rewards the largest connected region of the target colour.
type Blob struct {
	colour board.Colour
}

func (g Blob) Kind() Kind            { return KindBlob }
func (g Blob) Colour() board.Colour { return g.colour }

// Score returns the size of the largest 4-connected group of target-coloured
// unit cells.
func (g Blob) Score(b *board.Block) int {
	return newBlobSearch(b.Flatten(), g.colour).largest()
}

func (g Blob) Description() string {
	return fmt.Sprintf("Aim to get the largest group of connected %s blocks!", g.colour)
}
