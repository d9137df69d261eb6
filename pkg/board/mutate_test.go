package board

import (
	"math/rand/v2"
	"testing"
)

func TestSmash(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	b, _ := New(8, 1, RealRed)

	if !b.Smashable() {
		t.Fatal("leaf above max depth should be smashable")
	}
	if !b.Smash(rng) {
		t.Fatal("Smash() = false, want true")
	}
	if b.IsLeaf() {
		t.Fatal("smashed block should have children")
	}
	if _, ok := b.Colour(); ok {
		t.Error("smashed block should have no colour")
	}
	for _, c := range b.Children() {
		if !c.IsLeaf() || c.Level() != 1 || c.Size() != 4 {
			t.Errorf("child %v: want a level 1 leaf of size 4", c)
		}
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() after smash: %v", err)
	}
	if b.Smash(rng) {
		t.Error("smashing a block that already has children should fail")
	}
}

func TestSmashAtMaxDepthFails(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	root, _ := New(4, 0, OldOlive)
	if root.Smash(rng) {
		t.Error("Smash() on a depth-0 board should fail")
	}
	if c, _ := root.Colour(); !root.IsLeaf() || c != OldOlive {
		t.Error("failed smash should leave the leaf unchanged")
	}

	b := mustBoard(t, 8, 1, "(b r g y)")
	leaf := b.Child(TopLeft)
	if leaf.Smashable() || leaf.Smash(rng) {
		t.Error("leaf at max depth should not be smashable")
	}
	if got := b.Pattern().String(); got != "(b r g y)" {
		t.Errorf("board changed after failed smash: %s", got)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Colour
	}{
		{"clear majority", "(r r g y)", RealRed},
		{"unanimous", "(y y y y)", DaffodilDelight},
		{"two-two tie goes to palette order", "(b r r b)", PacificPoint},
		{"tie between later colours", "(y g g y)", OldOlive},
		{"all different", "(y g r b)", PacificPoint},
		{"three of a kind", "(g y g g)", OldOlive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 8, 1, tt.pattern)
			if !b.Combine() {
				t.Fatal("Combine() = false, want true")
			}
			c, ok := b.Colour()
			if !ok || !b.IsLeaf() {
				t.Fatal("combined block should be a coloured leaf")
			}
			if c != tt.want {
				t.Errorf("Combine(%s) colour = %v, want %v", tt.pattern, c, tt.want)
			}
			if err := b.Validate(); err != nil {
				t.Errorf("Validate(): %v", err)
			}
		})
	}
}

func TestCombineFails(t *testing.T) {
	t.Run("child has children", func(t *testing.T) {
		b := mustBoard(t, 16, 2, "(b (r r g y) g y)")
		if b.Combine() {
			t.Error("Combine() should fail when a child is not a leaf")
		}
		if got := b.Pattern().String(); got != "(b (r r g y) g y)" {
			t.Errorf("subtree changed after failed combine: %s", got)
		}
	})

	t.Run("leaf", func(t *testing.T) {
		b, _ := New(8, 1, RealRed)
		if b.Combine() {
			t.Error("Combine() on a leaf should fail")
		}
	})
}

func TestSmashCombineRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	b, _ := New(16, 2, DaffodilDelight)
	want := b.Copy()

	if !b.Smash(rng) {
		t.Fatal("Smash() failed")
	}
	for _, c := range b.Children() {
		c.Paint(DaffodilDelight)
	}
	if !b.Combine() {
		t.Fatal("Combine() failed")
	}
	if !b.Equal(want) {
		t.Errorf("smash+paint+combine = %s, want %s", b.Pattern(), want.Pattern())
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		dir     Rotation
		want    string
	}{
		{"clockwise", "(b r g y)", Clockwise, "(r g y b)"},
		{"counter-clockwise", "(b r g y)", CounterClockwise, "(y b r g)"},
		{"nested subtree moves whole", "((b r g y) r g y)", Clockwise, "(r g y (b r g y))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 16, 2, tt.pattern)
			if !b.Rotate(tt.dir) {
				t.Fatal("Rotate() = false, want true")
			}
			if got := b.Pattern().String(); got != tt.want {
				t.Errorf("Rotate(%d) = %s, want %s", tt.dir, got, tt.want)
			}
			if err := b.Validate(); err != nil {
				t.Errorf("Validate() after rotate: %v", err)
			}
		})
	}
}

func TestRotateUpdatesDescendantPositions(t *testing.T) {
	b := mustBoard(t, 16, 2, "((b r g y) r g y)")
	nested := b.Child(TopRight)
	grandchild := nested.Child(TopLeft)

	b.Rotate(Clockwise)

	if b.Child(BottomRight) != nested {
		t.Fatal("top-right subtree should move to bottom-right")
	}
	if x, y := nested.Position(); x != 8 || y != 8 {
		t.Errorf("moved subtree at (%d, %d), want (8, 8)", x, y)
	}
	if x, y := grandchild.Position(); x != 8 || y != 8 {
		t.Errorf("grandchild at (%d, %d), want (8, 8)", x, y)
	}
	if x, y := nested.Child(BottomRight).Position(); x != 12 || y != 12 {
		t.Errorf("bottom-right grandchild at (%d, %d), want (12, 12)", x, y)
	}
	if got, _ := b.Locate(13, 13, 2); got != nested.Child(BottomRight) {
		t.Error("Locate should find the moved grandchild at its new position")
	}
}

func TestRotateIdentities(t *testing.T) {
	const pattern = "((b r g y) (y y r b) g (r (b b g y) y g))"
	b := mustBoard(t, 32, 3, pattern)

	for range 4 {
		b.Rotate(Clockwise)
	}
	if got := b.Pattern().String(); got != pattern {
		t.Errorf("four clockwise rotations = %s, want %s", got, pattern)
	}

	b.Child(BottomRight).Rotate(Clockwise)
	b.Child(BottomRight).Rotate(CounterClockwise)
	if got := b.Pattern().String(); got != pattern {
		t.Errorf("clockwise then counter-clockwise = %s, want %s", got, pattern)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate(): %v", err)
	}
}

func TestRotateFails(t *testing.T) {
	leaf, _ := New(8, 1, RealRed)
	if leaf.Rotate(Clockwise) {
		t.Error("Rotate() on a leaf should fail")
	}
	b := mustBoard(t, 8, 1, "(b r g y)")
	if b.Rotate(Rotation(2)) {
		t.Error("Rotate() with an unknown direction should fail")
	}
	if got := b.Pattern().String(); got != "(b r g y)" {
		t.Errorf("failed rotate changed the board: %s", got)
	}
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name string
		dir  SwapDirection
		want string
	}{
		{"horizontal", Horizontal, "(r b y g)"},
		{"vertical", Vertical, "(y g r b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 8, 1, "(b r g y)")
			if !b.Swap(tt.dir) {
				t.Fatal("Swap() = false, want true")
			}
			if got := b.Pattern().String(); got != tt.want {
				t.Errorf("Swap(%d) = %s, want %s", tt.dir, got, tt.want)
			}
			b.Swap(tt.dir)
			if got := b.Pattern().String(); got != "(b r g y)" {
				t.Errorf("swapping twice = %s, want the original", got)
			}
		})
	}
}

func TestSwapFails(t *testing.T) {
	leaf, _ := New(8, 1, RealRed)
	if leaf.Swap(Horizontal) || leaf.Swap(Vertical) {
		t.Error("Swap() on a leaf should fail")
	}
	b := mustBoard(t, 8, 1, "(b r g y)")
	if b.Swap(SwapDirection(5)) {
		t.Error("Swap() with an unknown direction should fail")
	}
}

func TestPaint(t *testing.T) {
	b := mustBoard(t, 8, 1, "(b r g y)")

	if b.Paint(RealRed) {
		t.Error("Paint() on an internal node should fail")
	}
	leaf := b.Child(TopRight)
	if !leaf.Paint(OldOlive) {
		t.Fatal("Paint() on a leaf should succeed")
	}
	if c, _ := leaf.Colour(); c != OldOlive {
		t.Errorf("painted colour = %v, want %v", c, OldOlive)
	}
	if leaf.Paint(Colour{10, 20, 30}) {
		t.Error("Paint() with an off-palette colour should fail")
	}
}

// TestRandomMutationsKeepInvariants applies long random sequences of
// operations to random nodes and checks the tree after every success.
func TestRandomMutationsKeepInvariants(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		b, err := Generate(rng, 64, 4)
		if err != nil {
			t.Fatal(err)
		}
		for step := range 300 {
			x, y := rng.IntN(64), rng.IntN(64)
			target, _ := b.Locate(x, y, rng.IntN(5))
			var ok bool
			switch rng.IntN(6) {
			case 0:
				ok = target.Smash(rng)
			case 1:
				ok = target.Combine()
			case 2:
				ok = target.Rotate(Clockwise)
			case 3:
				ok = target.Rotate(CounterClockwise)
			case 4:
				ok = target.Swap(SwapDirection(rng.IntN(2)))
			case 5:
				ok = target.Paint(palette[rng.IntN(len(palette))])
			}
			if !ok {
				continue
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}
		}
	}
}
