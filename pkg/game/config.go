package game

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/cache"
	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/goal"
	"github.com/matzehuels/blocky/pkg/player"
)

// Config describes a batch of games.
type Config struct {
	// Seed of the first game. Game i uses Seed+i.
	Seed uint64 `toml:"seed" json:"seed"`
	// Games is the number of games in the batch.
	Games int `toml:"games" json:"games"`
	// Parallel bounds how many games run at once. It does not affect results.
	Parallel int `toml:"parallel" json:"parallel"`
	// Turns is the number of rounds; every player moves once per round.
	Turns int `toml:"turns" json:"turns"`

	Board   BoardConfig   `toml:"board" json:"board"`
	Players PlayersConfig `toml:"players" json:"players"`
	Sampler SamplerConfig `toml:"sampler" json:"sampler"`
}

// BoardConfig sets the board dimensions.
type BoardConfig struct {
	Size     int `toml:"size" json:"size"`
	MaxDepth int `toml:"max_depth" json:"max_depth"`
}

// PlayersConfig sets who plays.
type PlayersConfig struct {
	Random int   `toml:"random" json:"random"`
	Smart  []int `toml:"smart" json:"smart"`
	// Goal is "perimeter", "blob" or "random".
	Goal string `toml:"goal" json:"goal"`
}

// SamplerConfig tunes the random move sampler.
type SamplerConfig struct {
	MaxAttempts int `toml:"max_attempts" json:"max_attempts"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:     1,
		Games:    1,
		Parallel: 4,
		Turns:    10,
		Board:    BoardConfig{Size: 768, MaxDepth: 4},
		Players: PlayersConfig{
			Random: 1,
			Smart:  []int{5},
			Goal:   string(goal.KindRandom),
		},
		Sampler: SamplerConfig{MaxAttempts: player.DefaultMaxAttempts},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the
// result. Keys the file sets override the defaults; unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that a batch can be played with cfg.
func (c Config) Validate() error {
	checks := []error{
		errors.ValidatePositive("games", c.Games),
		errors.ValidatePositive("parallel", c.Parallel),
		errors.ValidatePositive("turns", c.Turns),
		board.CheckDimensions(c.Board.Size, c.Board.MaxDepth),
		errors.ValidateRange("players.random", c.Players.Random, 0, len(board.Palette())),
		errors.ValidateRange("players", c.Players.Random+len(c.Players.Smart), 1, len(board.Palette())),
		errors.ValidateRange("sampler.max_attempts", c.Sampler.MaxAttempts, 0, 1<<20),
	}
	for _, d := range c.Players.Smart {
		checks = append(checks, errors.ValidatePositive("smart player difficulty", d))
	}
	if _, err := c.goalKind(); err != nil {
		checks = append(checks, err)
	}

	for _, err := range checks {
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
		}
	}
	return nil
}

func (c Config) goalKind() (goal.Kind, error) {
	if c.Players.Goal == "" {
		return goal.KindRandom, nil
	}
	return goal.ParseKind(c.Players.Goal)
}

// canonical encodes the settings that determine a batch's results.
func (c Config) canonical() []byte {
	c.Parallel = 0
	data, _ := json.Marshal(c)
	return data
}

// Fingerprint identifies the results cfg produces: two configs with the
// same fingerprint play identical games.
func (c Config) Fingerprint() string {
	return cache.Hash(c.canonical())
}
