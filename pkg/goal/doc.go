// Package goal scores Blocky boards.
//
// A [Goal] pairs a target colour with a scoring rule over the flattened
// board (see board.Block.Flatten). There are exactly two rules:
//
//   - [Perimeter]: counts target-coloured unit cells on the outer ring.
//     A corner cell sits on two sides and is counted once for each.
//   - [Blob]: the size of the largest 4-connected region of target-coloured
//     unit cells.
//
// Scores are never negative and scoring never mutates the board.
package goal
