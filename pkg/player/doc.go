// Package player generates moves for computer-controlled Blocky players.
//
// Moves are found by generate-and-test: a [Sampler] picks a random pixel, a
// random level and a random [Action], tries the action on a copy of the
// board and scores the result with the player's goal. The live board is
// never touched while searching; a [Move] only refers to the live block it
// would act on, and [Move.Apply] performs it.
//
// [RandomPlayer] plays the first successful non-pass move it samples.
// [SmartPlayer] samples as many moves as its difficulty and plays the best
// one, or passes when none improves its current score.
package player
