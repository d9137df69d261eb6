package board

import "math/rand/v2"

// Rotation is the direction argument of Rotate.
type Rotation int

// Rotation directions. The values match the action encoding used by players.
const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = 3
)

// SwapDirection is the direction argument of Swap.
type SwapDirection int

const (
	// Horizontal swaps left and right halves: TL<->TR and BL<->BR.
	Horizontal SwapDirection = 0
	// Vertical swaps top and bottom halves: TL<->BL and TR<->BR.
	Vertical SwapDirection = 1
)

// Smashable reports whether Smash would succeed: b is a leaf above max depth.
func (b *Block) Smashable() bool {
	return !b.split && b.level < b.maxDepth
}

// Smash replaces the leaf b with four leaf children, each coloured
// independently and uniformly at random from the palette.
func (b *Block) Smash(rng *rand.Rand) bool {
	if !b.Smashable() {
		return false
	}
	b.subdivide(func(Quadrant) Colour { return randomColour(rng) })
	return true
}

func (b *Block) subdivide(pick func(Quadrant) Colour) {
	half := b.size / 2
	for q, o := range b.quadrantOrigins() {
		b.quads[q] = &Block{
			x:        o[0],
			y:        o[1],
			size:     half,
			colour:   pick(Quadrant(q)),
			level:    b.level + 1,
			maxDepth: b.maxDepth,
		}
	}
	b.colour = Colour{}
	b.split = true
}

// Combine turns b into a leaf coloured with the majority colour of its four
// children. It fails if b is a leaf or if any child has children.
// Ties go to the colour that comes first in the palette.
func (b *Block) Combine() bool {
	if !b.split {
		return false
	}
	var counts [len(palette)]int
	for _, c := range b.quads {
		if c.split {
			return false
		}
		if i := PaletteIndex(c.colour); i >= 0 {
			counts[i]++
		}
	}
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	b.quads = [4]*Block{}
	b.split = false
	b.colour = palette[best]
	return true
}

// Rotate cyclically moves the four children of b one quadrant in the given
// direction, together with their subtrees.
func (b *Block) Rotate(dir Rotation) bool {
	if !b.split {
		return false
	}
	old := b.quads
	var shift int
	switch dir {
	case Clockwise:
		shift = 1
	case CounterClockwise:
		shift = 3
	default:
		return false
	}
	for i := range b.quads {
		b.quads[i] = old[(i+shift)%4]
	}
	b.reposition()
	return true
}

// Swap exchanges the two halves of b in the given direction.
func (b *Block) Swap(dir SwapDirection) bool {
	if !b.split {
		return false
	}
	tr, tl, bl, br := b.quads[TopRight], b.quads[TopLeft], b.quads[BottomLeft], b.quads[BottomRight]
	switch dir {
	case Horizontal:
		b.quads = [4]*Block{tl, tr, br, bl}
	case Vertical:
		b.quads = [4]*Block{br, bl, tl, tr}
	default:
		return false
	}
	b.reposition()
	return true
}

// Paint sets the colour of the leaf b. It fails on internal nodes and for
// colours outside the palette.
func (b *Block) Paint(c Colour) bool {
	if b.split || !c.InPalette() {
		return false
	}
	b.colour = c
	return true
}

// reposition moves every child to the origin of its slot. Absolute
// positions below a reordered node all change, so this descends to the
// leaves.
func (b *Block) reposition() {
	for q, o := range b.quadrantOrigins() {
		b.quads[q].moveTo(o[0], o[1])
	}
}

func (b *Block) moveTo(x, y int) {
	if b.x == x && b.y == y {
		return
	}
	b.x, b.y = x, y
	if b.split {
		b.reposition()
	}
}
