package player

import (
	"math/rand/v2"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/goal"
)

// DefaultMaxAttempts bounds the retry loops of a Sampler.
const DefaultMaxAttempts = 1000

// Attempt is a sampled move and the score the board would have after it.
type Attempt struct {
	Score int
	Move  Move
}

// Sampler draws random moves and evaluates them on a copy of the board.
//
// A Sampler is not safe for concurrent use because it shares Rand.
type Sampler struct {
	Rand *rand.Rand
	// MaxAttempts bounds how many draws Sample makes before giving up and
	// passing. Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// NewSampler returns a sampler drawing from rng.
func NewSampler(rng *rand.Rand, maxAttempts int) *Sampler {
	return &Sampler{Rand: rng, MaxAttempts: maxAttempts}
}

func (s *Sampler) maxAttempts() int {
	if s.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return s.MaxAttempts
}

// Sample draws random (pixel, level, action) triples until one succeeds on a
// copy of b, and returns the resulting score for g together with the move
// bound to the matching block of b. A drawn Pass succeeds immediately and
// scores the unchanged board. If no draw succeeds within MaxAttempts, the
// result is a Pass on b.
func (s *Sampler) Sample(b *board.Block, g goal.Goal) Attempt {
	scratch := b.Copy()
	bx, by := b.Position()
	levels := b.MaxDepth() - b.Level() + 1

	for range s.maxAttempts() {
		x := bx + s.Rand.IntN(b.Size())
		y := by + s.Rand.IntN(b.Size())
		level := b.Level() + s.Rand.IntN(levels)

		live, ok := b.Locate(x, y, level)
		if !ok {
			continue
		}
		trial, ok := scratch.Locate(x, y, level)
		if !ok {
			continue
		}

		action := Actions[s.Rand.IntN(len(Actions))]
		if perform(action, trial, s.Rand, g.Colour()) {
			return Attempt{Score: g.Score(scratch), Move: Move{Action: action, Block: live}}
		}
	}
	return Attempt{Score: g.Score(scratch), Move: Move{Action: Pass, Block: b}}
}
