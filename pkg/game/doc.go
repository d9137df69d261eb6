// Package game plays headless Blocky games between computer players.
//
// A [Config], usually loaded from a TOML file with [LoadConfig], describes
// the board, the players and how many games to play. [New] sets up one game
// from a seed and [Game.Play] runs its turn loop. A [Runner] plays a whole
// batch concurrently, caches the resulting [Report] and logs progress.
//
// Every game owns its board and its random source, so a batch produces the
// same results regardless of how many games run in parallel.
//
//	cfg, err := game.LoadConfig("blocky.toml")
//	if err != nil {
//	    return err
//	}
//	runner := game.NewRunner(nil, nil, logger)
//	report, cached, err := runner.Simulate(ctx, cfg, nil)
package game
