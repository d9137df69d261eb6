package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/observability"
	"github.com/matzehuels/blocky/pkg/player"
)

// gameNamespace scopes name-based game ids.
var gameNamespace = uuid.MustParse("6f1c3c55-4d3e-4b8e-9a57-0c7a2f4e5b10")

// GameID derives the id of the game at index in the batch with the given
// config fingerprint. The same batch always yields the same ids.
func GameID(fingerprint string, index int) uuid.UUID {
	return uuid.NewSHA1(gameNamespace, fmt.Appendf(nil, "%s/%d", fingerprint, index))
}

// Game is one headless game: a board, the players and a random source.
// A Game is not safe for concurrent use.
type Game struct {
	ID      uuid.UUID
	Seed    uint64
	Board   *board.Block
	Players []player.Player

	turns int
	rng   *rand.Rand
}

// New sets up a game from cfg with its own random source seeded by seed.
// The board and the players' goals are drawn from that source.
func New(id uuid.UUID, cfg Config, seed uint64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind, err := cfg.goalKind()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	b, err := board.Generate(rng, cfg.Board.Size, cfg.Board.MaxDepth)
	if err != nil {
		return nil, err
	}
	players, err := player.CreatePlayers(rng, player.Options{
		Random:      cfg.Players.Random,
		Smart:       cfg.Players.Smart,
		Goal:        kind,
		MaxAttempts: cfg.Sampler.MaxAttempts,
	})
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:      id,
		Seed:    seed,
		Board:   b,
		Players: players,
		turns:   cfg.Turns,
		rng:     rng,
	}, nil
}

// Result is the outcome of a finished game.
type Result struct {
	ID       uuid.UUID      `json:"id"`
	Seed     uint64         `json:"seed"`
	Players  []PlayerResult `json:"players"`
	Actions  map[string]int `json:"actions"`
	Failed   int            `json:"failed"`
	Duration time.Duration  `json:"duration"`
	// Final is the final board in pattern notation.
	Final string `json:"final"`
}

// PlayerResult is one player's final standing.
type PlayerResult struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Goal   string `json:"goal"`
	Colour string `json:"colour"`
	Score  int    `json:"score"`
}

// Winners returns the ids of the players with the highest score.
func (r Result) Winners() []int {
	var ids []int
	best := -1
	for _, p := range r.Players {
		switch {
		case p.Score > best:
			best = p.Score
			ids = append(ids[:0], p.ID)
		case p.Score == best:
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Play runs every round: each player in id order generates a move and it
// is applied to the board. Play stops early when ctx is cancelled.
func (g *Game) Play(ctx context.Context) (Result, error) {
	hooks := observability.Game()
	id := g.ID.String()
	start := time.Now()
	hooks.OnGameStart(ctx, id, len(g.Players))

	res, err := g.play(ctx)
	res.Duration = time.Since(start)
	if err != nil {
		hooks.OnGameComplete(ctx, id, nil, res.Duration, err)
		return Result{}, err
	}

	scores := make([]int, len(res.Players))
	for i, p := range res.Players {
		scores[i] = p.Score
	}
	hooks.OnGameComplete(ctx, id, scores, res.Duration, nil)
	return res, nil
}

func (g *Game) play(ctx context.Context) (Result, error) {
	res := Result{ID: g.ID, Seed: g.Seed, Actions: make(map[string]int)}
	hooks := observability.Game()

	for turn := range g.turns {
		for _, p := range g.Players {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			m := p.GenerateMove(g.Board)
			ok := m.Apply(g.rng, p.Goal().Colour())
			if ok {
				res.Actions[m.Action.String()]++
			} else {
				res.Failed++
			}
			hooks.OnTurn(ctx, g.ID.String(), turn, p.ID(), m.Action.String(), ok)
		}
	}

	if err := g.Board.Validate(); err != nil {
		return res, errors.Wrap(errors.ErrCodeInternal, err, "game %s left an invalid board", g.ID)
	}

	for _, p := range g.Players {
		res.Players = append(res.Players, playerResult(p, g.Board))
	}
	res.Final = g.Board.Pattern().String()
	return res, nil
}

func playerResult(p player.Player, b *board.Block) PlayerResult {
	gl := p.Goal()
	return PlayerResult{
		ID:     p.ID(),
		Kind:   p.Kind(),
		Goal:   string(gl.Kind()),
		Colour: gl.Colour().String(),
		Score:  gl.Score(b),
	}
}
