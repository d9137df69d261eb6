// Package pkg provides the libraries behind Blocky, a turn-based game of
// recolouring a recursive quad-tree board.
//
// # Overview
//
// A Blocky board is a square block that is either a single coloured leaf or
// split into four equal children. Players reshape the board (smash, combine,
// rotate, swap, paint) to score for a goal colour. The pkg directory is
// organized into three areas:
//
//  1. Game core: [board], [goal] and [player]
//  2. Simulation: [game] plays headless batches of computer players
//  3. Support: [cache], [io], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The data flow of a single move:
//
//	[board.Block]
//	     ↓ Flatten
//	[board.Grid]  (unit cells, indexed [column][row])
//	     ↓ Score
//	[goal.Goal]   (perimeter or blob)
//	     ↓
//	[player.Sampler] tries random moves on a copy and keeps the best
//
// # Quick Start
//
// Build a board from pattern notation and score it:
//
//	p, _ := board.ParsePattern("(b (r r g y) g y)")
//	b, _ := board.FromPattern(64, 2, p)
//
//	g, _ := goal.New(goal.KindBlob, board.OldOlive)
//	fmt.Println(g.Score(b)) // 5
//
// Simulate a batch of games:
//
//	cfg, _ := game.LoadConfig("blocky.toml")
//	runner := game.NewRunner(nil, nil, nil)
//	defer runner.Close()
//	report, _, _ := runner.Simulate(ctx, cfg, nil)
//
// # Main Packages
//
// [board] - The quad-tree: palette, construction, random generation, locate,
// structural mutations, flattening, pattern notation and DOT/SVG export.
//
// [goal] - Perimeter and blob goals and random goal assignment.
//
// [player] - Move sampling and the random and smart computer players.
//
// [game] - TOML configuration, the headless turn loop and the concurrent
// batch runner with report caching.
//
// [cache] - Report and render cache with null and file backends.
//
// [io] - JSON import and export of boards and reports.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/board/...    # Specific package
//	go test -run Example ./... # Examples only
//
// [board]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/board
// [board.Block]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/board#Block
// [board.Grid]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/board#Grid
// [goal]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/goal
// [goal.Goal]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/goal#Goal
// [player]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/player
// [player.Sampler]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/player#Sampler
// [game]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/game
// [cache]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/blocky/pkg/buildinfo
package pkg
