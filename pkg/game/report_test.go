package game

import (
	"fmt"
	"testing"
)

func resultWith(scores ...int) Result {
	kinds := []string{"random", "smart(2)"}
	var res Result
	for i, s := range scores {
		res.Players = append(res.Players, PlayerResult{ID: i, Kind: kinds[i], Score: s})
	}
	return res
}

func TestNewReport(t *testing.T) {
	r := NewReport("fp", []Result{
		resultWith(4, 6),
		resultWith(5, 5),
		resultWith(1, 3),
	})

	if len(r.Standings) != 2 {
		t.Fatalf("got %d standings, want 2", len(r.Standings))
	}
	tests := []struct {
		seat                     int
		kind                     string
		wins, total, best, worst int
		mean                     string
	}{
		{0, "random", 1, 10, 5, 1, "3.33"},
		{1, "smart(2)", 3, 14, 6, 3, "4.67"},
	}
	for _, tt := range tests {
		s := r.Standings[tt.seat]
		if s.Seat != tt.seat || s.Kind != tt.kind {
			t.Errorf("seat %d = %+v", tt.seat, s)
		}
		if s.Wins != tt.wins || s.Total != tt.total || s.Best != tt.best || s.Worst != tt.worst {
			t.Errorf("seat %d: wins %d total %d best %d worst %d, want %d %d %d %d",
				tt.seat, s.Wins, s.Total, s.Best, s.Worst, tt.wins, tt.total, tt.best, tt.worst)
		}
		if got := s.Mean.StringFixed(2); got != tt.mean {
			t.Errorf("seat %d mean = %s, want %s", tt.seat, got, tt.mean)
		}
	}
}

func TestNewReportEmpty(t *testing.T) {
	r := NewReport("fp", nil)
	if r.Fingerprint != "fp" || len(r.Standings) != 0 {
		t.Errorf("NewReport(nil) = %+v", r)
	}
}

func ExampleNewReport() {
	r := NewReport("fp", []Result{
		resultWith(2, 8),
		resultWith(7, 3),
		resultWith(4, 4),
		resultWith(0, 9),
	})
	for _, s := range r.Standings {
		fmt.Printf("%s: %d wins, mean %s\n", s.Kind, s.Wins, s.Mean)
	}
	// Output:
	// random: 2 wins, mean 3.25
	// smart(2): 3 wins, mean 6
}
