package game

import (
	"github.com/shopspring/decimal"
)

// Report summarises a batch of games.
type Report struct {
	Fingerprint string     `json:"fingerprint"`
	Games       []Result   `json:"games"`
	Standings   []Standing `json:"standings"`
}

// Standing aggregates one seat across every game of a batch. Seats keep
// their player kind between games; goal colours are redrawn per game.
type Standing struct {
	Seat  int    `json:"seat"`
	Kind  string `json:"kind"`
	Wins  int    `json:"wins"`
	Total int    `json:"total"`
	// Mean is the exact mean score, Total / games.
	Mean  decimal.Decimal `json:"mean"`
	Best  int             `json:"best"`
	Worst int             `json:"worst"`
}

// NewReport aggregates results, which must all come from the same config.
// A game with several top scorers counts as a win for each of them.
func NewReport(fingerprint string, results []Result) *Report {
	r := &Report{Fingerprint: fingerprint, Games: results}
	if len(results) == 0 {
		return r
	}

	for _, p := range results[0].Players {
		r.Standings = append(r.Standings, Standing{Seat: p.ID, Kind: p.Kind, Best: p.Score, Worst: p.Score})
	}
	for _, res := range results {
		for _, p := range res.Players {
			s := &r.Standings[p.ID]
			s.Total += p.Score
			s.Best = max(s.Best, p.Score)
			s.Worst = min(s.Worst, p.Score)
		}
		for _, id := range res.Winners() {
			r.Standings[id].Wins++
		}
	}

	n := decimal.NewFromInt(int64(len(results)))
	for i := range r.Standings {
		r.Standings[i].Mean = decimal.NewFromInt(int64(r.Standings[i].Total)).Div(n)
	}
	return r
}
