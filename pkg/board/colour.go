package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/blocky/pkg/errors"
)

// Colour is an RGB triple.
type Colour struct {
	R, G, B uint8
}

// Palette colours.
var (
	PacificPoint    = Colour{1, 128, 181}
	RealRed         = Colour{199, 44, 58}
	OldOlive        = Colour{138, 151, 71}
	DaffodilDelight = Colour{255, 211, 92}
)

var palette = [...]Colour{PacificPoint, RealRed, OldOlive, DaffodilDelight}

// Palette returns the fixed set of colours a leaf may hold, in tie-break
// order. The result is a copy.
func Palette() [4]Colour { return palette }

var (
	paletteNames   = [...]string{"Pacific Point", "Real Red", "Old Olive", "Daffodil Delight"}
	paletteLetters = [...]byte{'b', 'r', 'g', 'y'}
)

// PaletteIndex returns the position of c in the palette, or -1.
func PaletteIndex(c Colour) int {
	for i, p := range palette {
		if p == c {
			return i
		}
	}
	return -1
}

// InPalette reports whether c is one of the palette colours.
func (c Colour) InPalette() bool { return PaletteIndex(c) >= 0 }

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the palette name of c, or "rgb(r, g, b)" for other colours.
func (c Colour) String() string {
	if i := PaletteIndex(c); i >= 0 {
		return paletteNames[i]
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Letter returns the single-letter pattern code of c, or '?' for colours
// outside the palette.
func (c Colour) Letter() byte {
	if i := PaletteIndex(c); i >= 0 {
		return paletteLetters[i]
	}
	return '?'
}

func colourByLetter(ch byte) (Colour, bool) {
	for i, l := range paletteLetters {
		if l == ch || l == ch+('a'-'A') {
			return palette[i], true
		}
	}
	return Colour{}, false
}

// ParseColour resolves a palette colour from its name ("Real Red",
// "real-red", "realred"), its pattern letter ("r") or its palette index ("1").
func ParseColour(s string) (Colour, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Colour{}, errors.New(errors.ErrCodeInvalidColour, "colour cannot be empty")
	}
	if len(key) == 1 {
		if c, ok := colourByLetter(key[0]); ok {
			return c, nil
		}
	}
	if i, err := strconv.Atoi(key); err == nil {
		if i >= 0 && i < len(palette) {
			return palette[i], nil
		}
		return Colour{}, errors.New(errors.ErrCodeInvalidColour, "palette index %d out of range [0, %d]", i, len(palette)-1)
	}
	compact := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	for i, name := range paletteNames {
		if strings.ReplaceAll(strings.ToLower(name), " ", "") == compact {
			return palette[i], nil
		}
	}
	return Colour{}, errors.New(errors.ErrCodeInvalidColour, "unknown colour %q", s)
}
