package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blocky/pkg/board"
	"github.com/matzehuels/blocky/pkg/errors"
	"github.com/matzehuels/blocky/pkg/goal"
	blockyio "github.com/matzehuels/blocky/pkg/io"
)

type scoreOpts struct {
	pattern string
	file    string
	depth   int
	colour  string
}

func (c *CLI) scoreCommand() *cobra.Command {
	opts := scoreOpts{depth: -1}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a board against the perimeter and blob goals",
		Long: `Score a board given in pattern notation. A leaf is a palette letter
(b, r, g, y) and a split block is four patterns in parentheses, in the order
top-right, top-left, bottom-left, bottom-right. A board exported with
"blocky tree --format json" can be scored with --file.`,
		Example: `  blocky score --board "(b (r r g y) g y)"
  blocky score --board "(b r g y)" --depth 3 --colour red
  blocky score --file board.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(opts.pattern, opts.file, 0, opts.depth)
			if err != nil {
				return err
			}
			palette := board.Palette()
			colours := palette[:]
			if opts.colour != "" {
				col, err := board.ParseColour(opts.colour)
				if err != nil {
					return err
				}
				colours = []board.Colour{col}
			}

			printBoard(b)
			fmt.Println(scoreTable(scoreRows(b, colours)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.pattern, "board", "b", "", "board in pattern notation")
	cmd.Flags().StringVar(&opts.file, "file", "", "JSON board file")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1, "max depth of the board (default: depth of the pattern)")
	cmd.Flags().StringVar(&opts.colour, "colour", "", "only score this colour (name, letter or index)")
	cmd.MarkFlagsOneRequired("board", "file")
	cmd.MarkFlagsMutuallyExclusive("board", "file")

	return cmd
}

// loadBoard reads a board from a JSON file when file is set, and from
// pattern notation otherwise.
func loadBoard(pattern, file string, size, depth int) (*board.Block, error) {
	if file != "" {
		return blockyio.ImportBoard(file)
	}
	return patternBoard(pattern, size, depth)
}

// patternBoard builds a board from pattern notation. A negative depth uses
// the pattern's own depth; a non-positive size uses one unit per cell.
func patternBoard(pattern string, size, depth int) (*board.Block, error) {
	p, err := board.ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		depth = p.Depth()
	}
	if err := errors.ValidateRange("depth", depth, 0, 10); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 1 << depth
	}
	return board.FromPattern(size, depth, p)
}

type scoreRow struct {
	colour    board.Colour
	perimeter int
	blob      int
}

func scoreRows(b *board.Block, colours []board.Colour) []scoreRow {
	rows := make([]scoreRow, 0, len(colours))
	for _, col := range colours {
		p, _ := goal.New(goal.KindPerimeter, col)
		bl, _ := goal.New(goal.KindBlob, col)
		rows = append(rows, scoreRow{colour: col, perimeter: p.Score(b), blob: bl.Score(b)})
	}
	return rows
}

func scoreTable(rows []scoreRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{colourLabel(r.colour), fmt.Sprint(r.perimeter), fmt.Sprint(r.blob)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Colour", "Perimeter", "Blob").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
