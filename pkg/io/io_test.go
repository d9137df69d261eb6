package io

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/game"
)

func TestBoardRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 8))
	for range 10 {
		b, err := board.Generate(rng, 256, 4)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := WriteBoard(b, &buf); err != nil {
			t.Fatalf("WriteBoard: %v", err)
		}
		got, err := ReadBoard(&buf)
		if err != nil {
			t.Fatalf("ReadBoard: %v", err)
		}
		if !got.Equal(b) {
			t.Errorf("round trip changed the board:\n%s\n%s", b.Pattern(), got.Pattern())
		}
	}
}

func TestWriteBoardFormat(t *testing.T) {
	p, _ := board.ParsePattern("(b r g y)")
	b, _ := board.FromPattern(32, 1, p)

	var buf bytes.Buffer
	if err := WriteBoard(b, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"size": 32`, `"max_depth": 1`, `"colour": "Pacific Point"`, `"children"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestReadBoardAcceptsLetters(t *testing.T) {
	in := `{"size": 8, "max_depth": 1, "root": {"children": [
		{"colour": "b"}, {"colour": "R"}, {"colour": "2"}, {"colour": "Daffodil Delight"}]}}`
	b, err := ReadBoard(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Pattern().String(); got != "(b r g y)" {
		t.Errorf("pattern = %s", got)
	}
}

func TestReadBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"size": `, errors.ErrCodeInvalidFormat},
		{"empty node", `{"size": 8, "max_depth": 1, "root": {}}`, errors.ErrCodeInvalidFormat},
		{"three children", `{"size": 8, "max_depth": 1, "root": {"children": [{"colour":"b"},{"colour":"b"},{"colour":"b"}]}}`, errors.ErrCodeInvalidFormat},
		{"colour and children", `{"size": 8, "max_depth": 1, "root": {"colour": "b", "children": [{"colour":"b"},{"colour":"b"},{"colour":"b"},{"colour":"b"}]}}`, errors.ErrCodeInvalidFormat},
		{"unknown colour", `{"size": 8, "max_depth": 0, "root": {"colour": "purple"}}`, errors.ErrCodeInvalidColour},
		{"too deep", `{"size": 8, "max_depth": 0, "root": {"children": [{"colour":"b"},{"colour":"b"},{"colour":"b"},{"colour":"b"}]}}`, errors.ErrCodeInvalidPattern},
		{"bad size", `{"size": 7, "max_depth": 1, "root": {"colour": "b"}}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadBoard(strings.NewReader(tt.in)); !errors.Is(err, tt.code) {
				t.Errorf("ReadBoard error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExportImportBoard(t *testing.T) {
	p, _ := board.ParsePattern("(b (r r g y) g y)")
	b, _ := board.FromPattern(64, 2, p)
	path := filepath.Join(t.TempDir(), "board.json")

	if err := ExportBoard(b, path); err != nil {
		t.Fatalf("ExportBoard: %v", err)
	}
	got, err := ImportBoard(path)
	if err != nil {
		t.Fatalf("ImportBoard: %v", err)
	}
	if !got.Equal(b) {
		t.Error("imported board differs")
	}

	if _, err := ImportBoard(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	report := game.NewReport("abc", []game.Result{
		{Seed: 1, Players: []game.PlayerResult{{ID: 0, Kind: "random", Score: 3}}},
	})
	var buf bytes.Buffer
	if err := WriteReport(report, &buf); err != nil {
		t.Fatal(err)
	}

	var decoded game.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Fingerprint != "abc" || len(decoded.Standings) != 1 || !decoded.Standings[0].Mean.Equal(report.Standings[0].Mean) {
		t.Errorf("decoded report = %+v", decoded)
	}
}

func TestImportExampleBoard(t *testing.T) {
	b, err := ImportBoard(filepath.Join("..", "..", "examples", "board.json"))
	if err != nil {
		t.Fatalf("ImportBoard: %v", err)
	}
	if got := b.Pattern().String(); got != "(b (r r g y) g y)" {
		t.Errorf("pattern = %s", got)
	}
}
