// Package board implements the Blocky game board: a perfect quad-tree of
// coloured square blocks.
//
// # Overview
//
// Every [Block] is either a leaf holding a single palette [Colour] or an
// internal node with exactly four children. Children are always stored in
// the fixed quadrant order
//
//	top-right, top-left, bottom-left, bottom-right
//
// and each child is half the size of its parent, one level deeper, and
// positioned in absolute board pixels. Rotate and swap depend on this order.
//
// # Construction
//
// Boards are built with [New] (a single leaf), [Generate] (random board) or
// [FromPattern] (explicit colouring written in the compact pattern notation
// parsed by [ParsePattern]):
//
//	p, _ := board.ParsePattern("(b (r r g y) g y)")
//	root, _ := board.FromPattern(768, 2, p)
//
// # Mutations
//
// [Block.Smash], [Block.Combine], [Block.Rotate], [Block.Swap] and
// [Block.Paint] report success with a boolean and leave the tree unchanged
// when their precondition does not hold. Rotate and swap recompute the
// absolute position of every descendant of the node they reorder.
//
// # Flattening
//
// [Block.Flatten] turns a subtree into a dense grid of unit-cell colours,
// indexed [column][row] with (0, 0) at the top-left. Goals score boards from
// this grid.
//
// # Concurrency
//
// A Block tree is not safe for concurrent use. Callers that evaluate moves
// in parallel must work on independent trees obtained from [Block.Copy].
package board
