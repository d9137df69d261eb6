package board

import (
	"strings"

	"github.com/matzehuels/blocky/pkg/errors"
)

// Pattern is an explicit board colouring. A leaf pattern has a Colour and no
// Quadrants; an internal pattern has exactly four Quadrants in the order
// top-right, top-left, bottom-left, bottom-right.
//
// The textual form is a palette letter for a leaf (b, r, g, y) and a
// parenthesised list of four patterns for an internal node:
//
//	(b (r r g y) g y)
type Pattern struct {
	Colour    Colour
	Quadrants []Pattern
}

// ParsePattern parses the textual pattern notation.
func ParsePattern(s string) (Pattern, error) {
	p := &patternParser{src: s}
	pat, err := p.parse()
	if err != nil {
		return Pattern{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Pattern{}, errors.New(errors.ErrCodeInvalidPattern, "unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return pat, nil
}

type patternParser struct {
	src string
	pos int
}

func (p *patternParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n,", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *patternParser) parse() (Pattern, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Pattern{}, errors.New(errors.ErrCodeInvalidPattern, "unexpected end of pattern")
	}
	start := p.pos
	ch := p.src[p.pos]
	if ch != '(' {
		c, ok := colourByLetter(ch)
		if !ok {
			return Pattern{}, errors.New(errors.ErrCodeInvalidPattern, "unexpected %q at offset %d", ch, p.pos)
		}
		p.pos++
		return Pattern{Colour: c}, nil
	}

	p.pos++
	quads := make([]Pattern, 0, 4)
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ')' {
			p.pos++
			break
		}
		if len(quads) == 4 {
			return Pattern{}, errors.New(errors.ErrCodeInvalidPattern, "node at offset %d has more than four quadrants", start)
		}
		q, err := p.parse()
		if err != nil {
			return Pattern{}, err
		}
		quads = append(quads, q)
	}
	if len(quads) != 4 {
		return Pattern{}, errors.New(errors.ErrCodeInvalidPattern, "node at offset %d has %d quadrants, want 4", start, len(quads))
	}
	return Pattern{Quadrants: quads}, nil
}

// Depth returns how many levels the pattern spans below its root.
func (p Pattern) Depth() int {
	d := 0
	for _, q := range p.Quadrants {
		d = max(d, q.Depth()+1)
	}
	return d
}

// String returns the textual notation of p.
func (p Pattern) String() string {
	var sb strings.Builder
	p.write(&sb)
	return sb.String()
}

func (p Pattern) write(sb *strings.Builder) {
	if len(p.Quadrants) == 0 {
		sb.WriteByte(p.Colour.Letter())
		return
	}
	sb.WriteByte('(')
	for i, q := range p.Quadrants {
		if i > 0 {
			sb.WriteByte(' ')
		}
		q.write(sb)
	}
	sb.WriteByte(')')
}

// FromPattern builds a board of the given size and max depth coloured as p.
func FromPattern(size, maxDepth int, p Pattern) (*Block, error) {
	if err := CheckDimensions(size, maxDepth); err != nil {
		return nil, err
	}
	if d := p.Depth(); d > maxDepth {
		return nil, errors.New(errors.ErrCodeInvalidPattern, "pattern depth %d exceeds max depth %d", d, maxDepth)
	}
	root := &Block{size: size, maxDepth: maxDepth}
	if err := root.apply(p); err != nil {
		return nil, err
	}
	return root, nil
}

func (b *Block) apply(p Pattern) error {
	switch len(p.Quadrants) {
	case 0:
		if !p.Colour.InPalette() {
			return errors.New(errors.ErrCodeInvalidPattern, "leaf at (%d, %d) has %s, not a palette colour", b.x, b.y, p.Colour)
		}
		b.colour = p.Colour
		return nil
	case 4:
		b.subdivide(func(Quadrant) Colour { return Colour{} })
		for i, q := range p.Quadrants {
			if err := b.quads[i].apply(q); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidPattern, "node at (%d, %d) has %d quadrants, want 4", b.x, b.y, len(p.Quadrants))
	}
}

// Pattern returns the colouring of the subtree rooted at b.
func (b *Block) Pattern() Pattern {
	if !b.split {
		return Pattern{Colour: b.colour}
	}
	quads := make([]Pattern, 4)
	for i, c := range b.quads {
		quads[i] = c.Pattern()
	}
	return Pattern{Quadrants: quads}
}
