package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/blocky/pkg/board"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleWinner   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// maxPreviewSide is the largest grid printed as a terminal preview.
const maxPreviewSide = 64

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// cacheStatus renders whether a result came from the cache.
func cacheStatus(cached bool) string {
	if cached {
		return styleCached.Render(iconCached)
	}
	return styleComputed.Render(iconFresh)
}

// =============================================================================
// Board Output
// =============================================================================

// swatch renders a colour as a two-character cell. Terminals with colour
// support show a solid square; others show the palette letter.
func swatch(c board.Colour) string {
	l := string(c.Letter())
	col := lipgloss.Color(c.Hex())
	return lipgloss.NewStyle().Foreground(col).Background(col).Render(l + l)
}

// colourLabel renders a palette name next to its swatch.
func colourLabel(c board.Colour) string {
	return swatch(c) + " " + c.String()
}

// renderGrid draws a flattened board row by row.
func renderGrid(g board.Grid) string {
	n := g.Side()
	var sb strings.Builder
	for row := range n {
		for col := range n {
			sb.WriteString(swatch(g[col][row]))
		}
		if row < n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// boardSummary describes the dimensions of b.
func boardSummary(b *board.Block) string {
	return fmt.Sprintf("%dpx board, max depth %d, %dpx unit cells, %d blocks",
		b.Size(), b.MaxDepth(), b.UnitSize(), b.Count())
}

// printBoard prints a preview of b unless it is too large to be useful.
func printBoard(b *board.Block) {
	printDetail("%s", boardSummary(b))
	g := b.Flatten()
	if g.Side() > maxPreviewSide {
		printDetail("board is %d×%d cells, preview skipped", g.Side(), g.Side())
		return
	}
	fmt.Println(renderGrid(g))
}
