package board

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/blocky/pkg/errors"
)

// mustBoard builds a board from pattern notation or fails the test.
func mustBoard(t *testing.T, size, depth int, pattern string) *Block {
	t.Helper()
	p, err := ParsePattern(pattern)
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", pattern, err)
	}
	b, err := FromPattern(size, depth, p)
	if err != nil {
		t.Fatalf("FromPattern(%q): %v", pattern, err)
	}
	return b
}

func TestNew(t *testing.T) {
	b, err := New(16, 2, RealRed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !b.IsLeaf() {
		t.Error("new board should be a leaf")
	}
	if c, ok := b.Colour(); !ok || c != RealRed {
		t.Errorf("Colour() = %v, %v; want %v, true", c, ok, RealRed)
	}
	if x, y := b.Position(); x != 0 || y != 0 {
		t.Errorf("Position() = (%d, %d), want (0, 0)", x, y)
	}
	if b.Level() != 0 || b.MaxDepth() != 2 || b.Size() != 16 {
		t.Errorf("got level=%d maxDepth=%d size=%d", b.Level(), b.MaxDepth(), b.Size())
	}
	if b.UnitSize() != 4 {
		t.Errorf("UnitSize() = %d, want 4", b.UnitSize())
	}
	if b.Children() != nil {
		t.Error("Children() of a leaf should be nil")
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		depth  int
		colour Colour
		code   errors.Code
	}{
		{"zero size", 0, 0, RealRed, errors.ErrCodeInvalidInput},
		{"negative size", -8, 1, RealRed, errors.ErrCodeInvalidInput},
		{"negative depth", 8, -1, RealRed, errors.ErrCodeInvalidInput},
		{"too deep", 1 << 20, 20, RealRed, errors.ErrCodeInvalidInput},
		{"indivisible size", 750, 2, RealRed, errors.ErrCodeInvalidInput},
		{"size smaller than unit grid", 2, 2, RealRed, errors.ErrCodeInvalidInput},
		{"off-palette colour", 8, 1, Colour{0, 0, 0}, errors.ErrCodeInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.size, tt.depth, tt.colour)
			if !errors.Is(err, tt.code) {
				t.Errorf("New(%d, %d) error = %v, want code %s", tt.size, tt.depth, err, tt.code)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	b := mustBoard(t, 16, 2, "(b (r r g y) g y)")

	tests := []struct {
		name      string
		x, y      int
		level     int
		wantOK    bool
		wantX     int
		wantY     int
		wantLevel int
	}{
		{"root", 0, 0, 0, true, 0, 0, 0},
		{"top-left quadrant", 0, 0, 1, true, 0, 0, 1},
		{"unit cell", 0, 0, 2, true, 0, 0, 2},
		{"nested top-right", 5, 1, 2, true, 4, 0, 2},
		{"nested bottom-left", 1, 5, 2, true, 0, 4, 2},
		{"level beyond max depth", 5, 5, 5, true, 4, 4, 2},
		{"leaf shallower than level", 9, 1, 2, true, 8, 0, 1},
		{"bottom-right corner pixel", 15, 15, 2, true, 8, 8, 1},
		{"left edge is inside", 8, 0, 1, true, 8, 0, 1},
		{"bottom-right edge of quadrant", 7, 7, 1, true, 0, 0, 1},
		{"right of board", 16, 0, 0, false, 0, 0, 0},
		{"above board", 0, -1, 0, false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Locate(tt.x, tt.y, tt.level)
			if ok != tt.wantOK {
				t.Fatalf("Locate(%d, %d, %d) ok = %v, want %v", tt.x, tt.y, tt.level, ok, tt.wantOK)
			}
			if !ok {
				if got != nil {
					t.Errorf("Locate returned %v with ok=false", got)
				}
				return
			}
			x, y := got.Position()
			if x != tt.wantX || y != tt.wantY || got.Level() != tt.wantLevel {
				t.Errorf("Locate(%d, %d, %d) = (%d, %d) level %d, want (%d, %d) level %d",
					tt.x, tt.y, tt.level, x, y, got.Level(), tt.wantX, tt.wantY, tt.wantLevel)
			}
		})
	}
}

func TestChild(t *testing.T) {
	b := mustBoard(t, 8, 1, "(b r g y)")
	want := map[Quadrant]Colour{TopRight: PacificPoint, TopLeft: RealRed, BottomLeft: OldOlive, BottomRight: DaffodilDelight}
	for q, c := range want {
		if got, _ := b.Child(q).Colour(); got != c {
			t.Errorf("Child(%s) colour = %v, want %v", q, got, c)
		}
	}
	if b.Child(Quadrant(7)) != nil {
		t.Error("Child(7) should be nil")
	}
	if b.Child(TopLeft).Child(TopLeft) != nil {
		t.Error("Child of a leaf should be nil")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := mustBoard(t, 16, 2, "(b (r r g y) g y)")
	cp := b.Copy()

	if !cp.Equal(b) {
		t.Fatal("copy should equal original")
	}

	cp.Rotate(Clockwise)
	cp.Child(TopLeft).Paint(OldOlive)

	if got := b.Pattern().String(); got != "(b (r r g y) g y)" {
		t.Errorf("original mutated through copy: %s", got)
	}
	if cp.Equal(b) {
		t.Error("mutated copy should differ from original")
	}
	for i, c := range b.Children() {
		if c == cp.Children()[i] {
			t.Errorf("quadrant %d is shared between copy and original", i)
		}
	}
}

func TestLeavesAndCount(t *testing.T) {
	b := mustBoard(t, 16, 2, "(b (r r g y) g y)")
	if got := len(b.Leaves()); got != 7 {
		t.Errorf("len(Leaves()) = %d, want 7", got)
	}
	if got := b.Count(); got != 9 {
		t.Errorf("Count() = %d, want 9", got)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(b *Block)
	}{
		{"wrong position", func(b *Block) { b.quads[TopLeft].x = 3 }},
		{"wrong level", func(b *Block) { b.quads[BottomRight].level = 2 }},
		{"wrong size", func(b *Block) { b.quads[TopRight].size = 3 }},
		{"missing child", func(b *Block) { b.quads[BottomLeft] = nil }},
		{"off-palette leaf", func(b *Block) { b.quads[TopLeft].colour = Colour{1, 2, 3} }},
		{"split at max depth", func(b *Block) { b.quads[TopLeft].split = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 8, 1, "(b r g y)")
			if err := b.Validate(); err != nil {
				t.Fatalf("Validate() before corruption: %v", err)
			}
			tt.corrupt(b)
			if err := b.Validate(); !errors.Is(err, errors.ErrCodeInternal) {
				t.Errorf("Validate() = %v, want INTERNAL_ERROR", err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		for seed := uint64(1); seed <= 20; seed++ {
			rng := rand.New(rand.NewPCG(seed, seed))
			b, err := Generate(rng, 256, depth)
			if err != nil {
				t.Fatalf("Generate(depth=%d): %v", depth, err)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("Generate(depth=%d, seed=%d) broke invariants: %v", depth, seed, err)
			}
			if depth > 0 && b.IsLeaf() {
				t.Errorf("Generate(depth=%d, seed=%d) root should be smashed", depth, seed)
			}
			if depth > 1 {
				for _, c := range b.Children() {
					if c.IsLeaf() {
						t.Errorf("Generate(depth=%d, seed=%d) level-1 blocks are always smashed", depth, seed)
					}
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(rand.New(rand.NewPCG(7, 7)), 64, 3)
	b, _ := Generate(rand.New(rand.NewPCG(7, 7)), 64, 3)
	if !a.Equal(b) {
		t.Error("same seed should produce the same board")
	}
}
