package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
)

// ReadBoard decodes a JSON board from r.
//
// ReadBoard returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - A node has both a colour and children, neither, or a child count
//     other than four (INVALID_FORMAT)
//   - A colour is not in the palette (INVALID_COLOUR)
//   - size and max_depth are not valid board dimensions (INVALID_INPUT)
//   - The tree is deeper than max_depth (INVALID_PATTERN)
//
// ReadBoard does not close r.
func ReadBoard(r io.Reader) (*board.Block, error) {
	var data boardFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode board")
	}

	p, err := data.Root.pattern("root")
	if err != nil {
		return nil, err
	}
	return board.FromPattern(data.Size, data.MaxDepth, p)
}

func (n node) pattern(path string) (board.Pattern, error) {
	switch {
	case n.Colour != "" && len(n.Children) > 0:
		return board.Pattern{}, errors.New(errors.ErrCodeInvalidFormat, "%s has both a colour and children", path)
	case n.Colour != "":
		c, err := board.ParseColour(n.Colour)
		if err != nil {
			return board.Pattern{}, errors.Wrap(errors.ErrCodeInvalidColour, err, "%s", path)
		}
		return board.Pattern{Colour: c}, nil
	case len(n.Children) != 4:
		return board.Pattern{}, errors.New(errors.ErrCodeInvalidFormat, "%s has %d children, want 4 or a colour", path, len(n.Children))
	}

	quads := make([]board.Pattern, 4)
	for i, c := range n.Children {
		q, err := c.pattern(path + "." + board.Quadrant(i).String())
		if err != nil {
			return board.Pattern{}, err
		}
		quads[i] = q
	}
	return board.Pattern{Quadrants: quads}, nil
}

// ImportBoard reads a JSON board file at path.
func ImportBoard(path string) (*board.Block, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "board file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadBoard(f)
}
