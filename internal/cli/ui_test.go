package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/blocky/pkg/board"
)

func TestRenderGrid(t *testing.T) {
	b, err := patternBoard("(b (r r g y) g y)", 0, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"rrrrbbbb", "ggyybbbb", "ggggyyyy", "ggggyyyy"}

	lines := strings.Split(renderGrid(b.Flatten()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if !strings.Contains(line, want[i]) {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestColourLabel(t *testing.T) {
	got := colourLabel(board.DaffodilDelight)
	if !strings.Contains(got, "Daffodil Delight") || !strings.Contains(got, "yy") {
		t.Errorf("colourLabel() = %q", got)
	}
}

func TestCacheStatus(t *testing.T) {
	if !strings.Contains(cacheStatus(true), iconCached) {
		t.Error("cached status should say cached")
	}
	if !strings.Contains(cacheStatus(false), iconFresh) {
		t.Error("fresh status should say fresh")
	}
}

func TestBoardSummary(t *testing.T) {
	p, _ := board.ParsePattern("(b (r r g y) g y)")
	b, _ := board.FromPattern(64, 2, p)
	want := "64px board, max depth 2, 16px unit cells, 9 blocks"
	if got := boardSummary(b); got != want {
		t.Errorf("boardSummary() = %q, want %q", got, want)
	}
}
