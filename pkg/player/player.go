package player

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/goal"
)

// Player chooses moves for one seat of a game.
type Player interface {
	ID() int
	Goal() goal.Goal
	// GenerateMove returns the move the player wants to make on b. It does
	// not mutate b.
	GenerateMove(b *board.Block) Move
	// Kind is a short label such as "random" or "smart(5)".
	Kind() string
}

// RandomPlayer plays a random successful move other than Pass.
type RandomPlayer struct {
	id      int
	goal    goal.Goal
	sampler *Sampler
}

// NewRandomPlayer returns a random player using sampler to find moves.
func NewRandomPlayer(id int, g goal.Goal, sampler *Sampler) *RandomPlayer {
	return &RandomPlayer{id: id, goal: g, sampler: sampler}
}

func (p *RandomPlayer) ID() int         { return p.id }
func (p *RandomPlayer) Goal() goal.Goal { return p.goal }
func (p *RandomPlayer) Kind() string    { return "random" }

// GenerateMove samples until it finds a move that is not a Pass. After
// MaxAttempts passes in a row it gives up and passes.
func (p *RandomPlayer) GenerateMove(b *board.Block) Move {
	var a Attempt
	for range p.sampler.maxAttempts() {
		if a = p.sampler.Sample(b, p.goal); a.Move.Action != Pass {
			break
		}
	}
	return a.Move
}

// SmartPlayer keeps the best of several sampled moves.
type SmartPlayer struct {
	RandomPlayer
	difficulty int
}

// NewSmartPlayer returns a smart player that samples difficulty moves per
// turn. difficulty must be at least 1.
func NewSmartPlayer(id int, g goal.Goal, sampler *Sampler, difficulty int) (*SmartPlayer, error) {
	if difficulty < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "smart player difficulty %d is below 1", difficulty)
	}
	return &SmartPlayer{RandomPlayer: RandomPlayer{id: id, goal: g, sampler: sampler}, difficulty: difficulty}, nil
}

// Difficulty returns the number of moves sampled per turn.
func (p *SmartPlayer) Difficulty() int { return p.difficulty }

func (p *SmartPlayer) Kind() string { return fmt.Sprintf("smart(%d)", p.difficulty) }

// GenerateMove samples Difficulty moves and returns the one with the
// highest resulting score. Ties keep the earliest sample. If the best score
// does not beat the board's current score, the player passes on b.
func (p *SmartPlayer) GenerateMove(b *board.Block) Move {
	best := p.sampler.Sample(b, p.goal)
	for range p.difficulty - 1 {
		if a := p.sampler.Sample(b, p.goal); a.Score > best.Score {
			best = a
		}
	}
	if best.Score <= p.goal.Score(b) {
		return Move{Action: Pass, Block: b}
	}
	return best.Move
}

// Options configures CreatePlayers.
type Options struct {
	// Random is the number of random players.
	Random int
	// Smart holds one difficulty per smart player.
	Smart []int
	// Goal selects the goal kind shared by every player.
	Goal goal.Kind
	// MaxAttempts bounds the sampler retry loops.
	MaxAttempts int
}

// CreatePlayers returns the random players followed by the smart players,
// with ids numbered from 0 in that order. Every player gets a goal of the
// same kind and a distinct colour, and all of them sample moves from rng.
func CreatePlayers(rng *rand.Rand, opts Options) ([]Player, error) {
	n := opts.Random + len(opts.Smart)
	if opts.Random < 0 || n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "need at least one player, got %d random and %d smart", opts.Random, len(opts.Smart))
	}
	kind := opts.Goal
	if kind == "" {
		kind = goal.KindRandom
	}
	goals, err := goal.Generate(rng, kind, n)
	if err != nil {
		return nil, err
	}

	sampler := NewSampler(rng, opts.MaxAttempts)
	players := make([]Player, 0, n)
	for i := range opts.Random {
		players = append(players, NewRandomPlayer(i, goals[i], sampler))
	}
	for i, difficulty := range opts.Smart {
		id := opts.Random + i
		p, err := NewSmartPlayer(id, goals[id], sampler, difficulty)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
