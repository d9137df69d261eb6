package board

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/blocky/pkg/errors"
)

// Quadrant identifies a child slot. The numeric order is the storage order of
// children and is what Rotate and Swap permute.
type Quadrant int

const (
	TopRight Quadrant = iota
	TopLeft
	BottomLeft
	BottomRight
)

// String returns a short quadrant label such as "TR".
func (q Quadrant) String() string {
	switch q {
	case TopRight:
		return "TR"
	case TopLeft:
		return "TL"
	case BottomLeft:
		return "BL"
	case BottomRight:
		return "BR"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// maxSupportedDepth keeps 4^depth unit cells addressable.
const maxSupportedDepth = 15

// Block is a node of the quad-tree board.
//
// A leaf holds a palette colour and no children. An internal node holds
// exactly four children and no colour. Every node of one tree shares the
// same max depth, and no node is deeper than it.
//
// The zero value is not usable; build boards with New, Generate or
// FromPattern.
type Block struct {
	x, y     int
	size     int
	colour   Colour
	level    int
	maxDepth int
	split    bool
	quads    [4]*Block
}

// New returns a board made of a single leaf of the given colour, with its
// top-left corner at (0, 0).
//
// size must be positive and divisible by 2^maxDepth so that every level
// halves exactly.
func New(size, maxDepth int, colour Colour) (*Block, error) {
	if err := CheckDimensions(size, maxDepth); err != nil {
		return nil, err
	}
	if !colour.InPalette() {
		return nil, errors.New(errors.ErrCodeInvalidColour, "%s is not a palette colour", colour)
	}
	return &Block{size: size, colour: colour, maxDepth: maxDepth}, nil
}

// Generate returns a random board. The root is always smashed, and each new
// child of a block at level L is smashed again with probability
// exp(-0.25 * L) for as long as the depth allows.
func Generate(rng *rand.Rand, size, maxDepth int) (*Block, error) {
	root, err := New(size, maxDepth, randomColour(rng))
	if err != nil {
		return nil, err
	}
	root.grow(rng)
	return root, nil
}

func (b *Block) grow(rng *rand.Rand) {
	if !b.Smash(rng) {
		return
	}
	p := math.Exp(-0.25 * float64(b.level))
	for _, c := range b.quads {
		if rng.Float64() < p {
			c.grow(rng)
		}
	}
}

// CheckDimensions reports whether a board of the given size can be split
// maxDepth times into equal halves.
func CheckDimensions(size, maxDepth int) error {
	switch {
	case maxDepth < 0:
		return errors.New(errors.ErrCodeInvalidInput, "max depth %d is negative", maxDepth)
	case maxDepth > maxSupportedDepth:
		return errors.New(errors.ErrCodeInvalidInput, "max depth %d exceeds %d", maxDepth, maxSupportedDepth)
	case size <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "board size %d is not positive", size)
	case size%(1<<maxDepth) != 0:
		return errors.New(errors.ErrCodeInvalidInput, "board size %d is not divisible by 2^%d", size, maxDepth)
	}
	return nil
}

func randomColour(rng *rand.Rand) Colour {
	return palette[rng.IntN(len(palette))]
}

// Position returns the absolute top-left corner of the block.
func (b *Block) Position() (x, y int) { return b.x, b.y }

// Size returns the side length of the block in pixels.
func (b *Block) Size() int { return b.size }

// Level returns the depth of the block; the root is level 0.
func (b *Block) Level() int { return b.level }

// MaxDepth returns the maximum depth shared by the whole tree.
func (b *Block) MaxDepth() int { return b.maxDepth }

// UnitSize returns the side length of a unit cell (a block at max depth).
func (b *Block) UnitSize() int { return b.size >> (b.maxDepth - b.level) }

// IsLeaf reports whether the block has no children.
func (b *Block) IsLeaf() bool { return !b.split }

// Colour returns the colour of a leaf. ok is false for internal nodes.
func (b *Block) Colour() (c Colour, ok bool) {
	if b.split {
		return Colour{}, false
	}
	return b.colour, true
}

// Children returns the four children in quadrant order, or nil for a leaf.
// The returned slice is a copy; the blocks are shared.
func (b *Block) Children() []*Block {
	if !b.split {
		return nil
	}
	children := b.quads
	return children[:]
}

// Child returns the child in quadrant q, or nil for a leaf.
func (b *Block) Child(q Quadrant) *Block {
	if !b.split || q < TopRight || q > BottomRight {
		return nil
	}
	return b.quads[q]
}

// Contains reports whether the pixel (x, y) lies in the block. Top and left
// edges are inside; bottom and right edges are not.
func (b *Block) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.size && y >= b.y && y < b.y+b.size
}

// Locate returns the block at the given level that covers pixel (x, y).
// If the covering leaf is shallower than level, that leaf is returned.
// ok is false when the point lies outside b.
func (b *Block) Locate(x, y, level int) (blk *Block, ok bool) {
	if !b.Contains(x, y) {
		return nil, false
	}
	cur := b
	for cur.split && cur.level < level {
		next := cur
		for _, c := range cur.quads {
			if c.Contains(x, y) {
				next = c
				break
			}
		}
		if next == cur {
			break
		}
		cur = next
	}
	return cur, true
}

// Leaves returns every leaf of the subtree in depth-first quadrant order.
func (b *Block) Leaves() []*Block {
	var out []*Block
	b.walk(func(n *Block) {
		if !n.split {
			out = append(out, n)
		}
	})
	return out
}

// Count returns the number of nodes in the subtree, including b.
func (b *Block) Count() int {
	n := 0
	b.walk(func(*Block) { n++ })
	return n
}

func (b *Block) walk(fn func(*Block)) {
	fn(b)
	if b.split {
		for _, c := range b.quads {
			c.walk(fn)
		}
	}
}

// Copy returns a deep copy of the subtree rooted at b. The copy shares no
// nodes with b.
func (b *Block) Copy() *Block {
	cp := *b
	if b.split {
		for i, c := range b.quads {
			cp.quads[i] = c.Copy()
		}
	}
	return &cp
}

// Equal reports whether two subtrees have the same shape, positions and
// leaf colours.
func (b *Block) Equal(o *Block) bool {
	if b.x != o.x || b.y != o.y || b.size != o.size || b.level != o.level ||
		b.maxDepth != o.maxDepth || b.split != o.split {
		return false
	}
	if !b.split {
		return b.colour == o.colour
	}
	for i := range b.quads {
		if !b.quads[i].Equal(o.quads[i]) {
			return false
		}
	}
	return true
}

// quadrantOrigins returns the top-left corner of each child slot.
func (b *Block) quadrantOrigins() [4][2]int {
	h := b.size / 2
	return [4][2]int{
		TopRight:    {b.x + h, b.y},
		TopLeft:     {b.x, b.y},
		BottomLeft:  {b.x, b.y + h},
		BottomRight: {b.x + h, b.y + h},
	}
}

// Validate checks the quad-tree invariants over the whole subtree and
// returns the first violation found.
func (b *Block) Validate() error {
	if b.level > b.maxDepth {
		return errors.New(errors.ErrCodeInternal, "block at (%d, %d) has level %d beyond max depth %d", b.x, b.y, b.level, b.maxDepth)
	}
	if !b.split {
		if !b.colour.InPalette() {
			return errors.New(errors.ErrCodeInternal, "leaf at (%d, %d) level %d has %s", b.x, b.y, b.level, b.colour)
		}
		return nil
	}
	if b.level == b.maxDepth {
		return errors.New(errors.ErrCodeInternal, "block at (%d, %d) is split at max depth", b.x, b.y)
	}
	origins := b.quadrantOrigins()
	for q, c := range b.quads {
		switch {
		case c == nil:
			return errors.New(errors.ErrCodeInternal, "block at (%d, %d) level %d is missing quadrant %s", b.x, b.y, b.level, Quadrant(q))
		case c.level != b.level+1:
			return errors.New(errors.ErrCodeInternal, "quadrant %s of (%d, %d) has level %d, want %d", Quadrant(q), b.x, b.y, c.level, b.level+1)
		case c.size != b.size/2:
			return errors.New(errors.ErrCodeInternal, "quadrant %s of (%d, %d) has size %d, want %d", Quadrant(q), b.x, b.y, c.size, b.size/2)
		case c.maxDepth != b.maxDepth:
			return errors.New(errors.ErrCodeInternal, "quadrant %s of (%d, %d) has max depth %d, want %d", Quadrant(q), b.x, b.y, c.maxDepth, b.maxDepth)
		case c.x != origins[q][0] || c.y != origins[q][1]:
			return errors.New(errors.ErrCodeInternal, "quadrant %s of (%d, %d) is at (%d, %d), want (%d, %d)", Quadrant(q), b.x, b.y, c.x, c.y, origins[q][0], origins[q][1])
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String returns a one-line summary of the block.
func (b *Block) String() string {
	if b.split {
		return fmt.Sprintf("block(%d,%d size=%d level=%d/%d split)", b.x, b.y, b.size, b.level, b.maxDepth)
	}
	return fmt.Sprintf("block(%d,%d size=%d level=%d/%d %s)", b.x, b.y, b.size, b.level, b.maxDepth, b.colour)
}
