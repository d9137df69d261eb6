package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/game"
	blockyio "github.com/matzehuels/blocky/pkg/io"
)

// maxListedGames bounds the per-game table printed after a simulation.
const maxListedGames = 20

// simulateOpts holds the command-line flags for the simulate command.
// Flags override the config file only when set explicitly.
type simulateOpts struct {
	config   string
	seed     uint64
	games    int
	turns    int
	parallel int
	json     string
	tui      bool
	noCache  bool
}

func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOpts

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of games between computer players",
		Long: `Play a batch of headless games between random and smart players and
report how each seat did. Settings come from a TOML config file (-c) on top
of the built-in defaults; flags override both.`,
		Example: `  blocky simulate
  blocky simulate -c blocky.toml --games 20 --parallel 8
  blocky simulate --seed 7 --turns 25 --tui
  blocky simulate --games 50 --json report.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.json != "" {
				if err := errors.ValidateOutputPath(opts.json); err != nil {
					return err
				}
			}
			cfg, err := simulateConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return c.runSimulate(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed of the first game")
	cmd.Flags().IntVar(&opts.games, "games", 0, "number of games")
	cmd.Flags().IntVar(&opts.turns, "turns", 0, "rounds per game")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "games played at once")
	cmd.Flags().StringVar(&opts.json, "json", "", "also write the report as JSON to this file")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show a live progress view")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always replay games")

	return cmd
}

// simulateConfig loads the config file, if any, and applies the flags for
// which changed reports true.
func simulateConfig(opts simulateOpts, changed func(string) bool) (game.Config, error) {
	cfg := game.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = game.LoadConfig(opts.config); err != nil {
			return game.Config{}, err
		}
	}

	if changed("seed") {
		cfg.Seed = opts.seed
	}
	if changed("games") {
		cfg.Games = opts.games
	}
	if changed("turns") {
		cfg.Turns = opts.turns
	}
	if changed("parallel") {
		cfg.Parallel = opts.parallel
	}
	return cfg, cfg.Validate()
}

func (c *CLI) runSimulate(ctx context.Context, cfg game.Config, opts simulateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var (
		report *game.Report
		cached bool
		err    error
	)
	if opts.tui {
		runner := game.NewRunner(c.newCache(opts.noCache), newKeyer(), log.New(io.Discard))
		defer runner.Close()
		report, cached, err = runSimulationTUI(ctx, runner, cfg)
	} else {
		runner := c.newRunner(opts.noCache)
		defer runner.Close()

		spinner := newSpinner(ctx, fmt.Sprintf("Simulating %d games", cfg.Games))
		spinner.Start()
		finished := 0
		report, cached, err = runner.Simulate(ctx, cfg, func(game.Result) {
			finished++
			spinner.SetMessage("Simulating games %d/%d", finished, cfg.Games)
		})
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	prog.done(fmt.Sprintf("Simulated %d games", len(report.Games)))
	printReport(report, cached)

	if opts.json != "" {
		if err := blockyio.ExportReport(report, opts.json); err != nil {
			return err
		}
		printFile(opts.json)
	}
	return nil
}

func printReport(report *game.Report, cached bool) {
	printSuccess("Played %s games %s", StyleNumber.Render(fmt.Sprint(len(report.Games))), cacheStatus(cached))
	printKeyValue("Fingerprint", report.Fingerprint[:12])
	fmt.Println(standingsTable(report))
	if n := len(report.Games); n > 0 && n <= maxListedGames {
		fmt.Println(gamesTable(report.Games))
	}
}

// standingsTable renders the per-seat summary of a report.
func standingsTable(report *game.Report) string {
	rows := make([][]string, len(report.Standings))
	for i, s := range report.Standings {
		rows[i] = []string{
			fmt.Sprint(s.Seat),
			s.Kind,
			fmt.Sprint(s.Wins),
			s.Mean.StringFixed(2),
			fmt.Sprint(s.Best),
			fmt.Sprint(s.Worst),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Seat", "Player", "Wins", "Mean", "Best", "Worst").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
