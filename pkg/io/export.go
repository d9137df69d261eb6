package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/game"
)

type boardFile struct {
	Size     int  `json:"size"`
	MaxDepth int  `json:"max_depth"`
	Root     node `json:"root"`
}

type node struct {
	Colour   string `json:"colour,omitempty"`
	Children []node `json:"children,omitempty"`
}

func toNode(b *board.Block) node {
	if c, ok := b.Colour(); ok {
		return node{Colour: c.String()}
	}
	children := b.Children()
	n := node{Children: make([]node, len(children))}
	for i, c := range children {
		n.Children[i] = toNode(c)
	}
	return n
}

// WriteBoard encodes b as indented JSON and writes it to w.
// The output can be re-imported with [ReadBoard].
func WriteBoard(b *board.Block, w io.Writer) error {
	out := boardFile{Size: b.Size(), MaxDepth: b.MaxDepth(), Root: toNode(b)}
	return writeJSON(w, out)
}

// ExportBoard writes b to a JSON file at path.
func ExportBoard(b *board.Block, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteBoard(b, w) })
}

// WriteReport encodes a simulation report as indented JSON.
func WriteReport(r *game.Report, w io.Writer) error {
	return writeJSON(w, r)
}

// ExportReport writes a simulation report to a JSON file at path.
func ExportReport(r *game.Report, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteReport(r, w) })
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
