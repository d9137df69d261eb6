package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/blocky/pkg/game"
)

const (
	progressWidth = 32 // cells in the progress bar
	recentGames   = 8  // finished games listed below the bar
)

var (
	barFullStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	barEmptyStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// resultMsg reports one finished game to the model.
type resultMsg game.Result

// batchDoneMsg ends the program with the batch outcome.
type batchDoneMsg struct {
	report *game.Report
	cached bool
	err    error
}

// simulationModel is the bubbletea model for the live simulation view.
type simulationModel struct {
	total   int
	results []game.Result
	report  *game.Report
	cached  bool
	err     error
	done    bool
	cancel  context.CancelFunc
}

func newSimulationModel(total int, cancel context.CancelFunc) simulationModel {
	return simulationModel{total: total, cancel: cancel}
}

func (m simulationModel) Init() tea.Cmd {
	return nil
}

func (m simulationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case resultMsg:
		m.results = append(m.results, game.Result(msg))
	case batchDoneMsg:
		m.report, m.cached, m.err = msg.report, msg.cached, msg.err
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m simulationModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Simulating Blocky"))
	b.WriteString("\n\n")

	finished := len(m.results)
	if m.report != nil {
		finished = len(m.report.Games)
	}
	b.WriteString(progressBar(finished, m.total))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d games", finished, m.total)))
	b.WriteString("\n\n")

	if len(m.results) > 0 {
		start := max(0, len(m.results)-recentGames)
		b.WriteString(gamesTable(m.results[start:]))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.done:
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " done " + cacheStatus(m.cached))
	default:
		b.WriteString(StyleDim.Render("q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// progressBar renders done/total as a fixed-width bar.
func progressBar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = min(progressWidth, done*progressWidth/total)
	}
	return barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", progressWidth-filled))
}

// gamesTable lists finished games with every player's score. Winners are
// highlighted.
func gamesTable(results []game.Result) string {
	if len(results) == 0 {
		return ""
	}
	headers := []string{"Game", "Seed"}
	for _, p := range results[0].Players {
		headers = append(headers, fmt.Sprintf("P%d %s", p.ID, p.Kind))
	}

	winners := make([]map[int]bool, len(results))
	rows := make([][]string, len(results))
	for i, res := range results {
		winners[i] = make(map[int]bool)
		for _, id := range res.Winners() {
			winners[i][id] = true
		}
		row := []string{res.ID.String()[:8], fmt.Sprint(res.Seed)}
		for _, p := range res.Players {
			row = append(row, fmt.Sprintf("%d %s", p.Score, p.Goal))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col >= 2 && row < len(winners) && winners[row][col-2] {
				return styleWinner
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// runSimulationTUI plays the batch behind a live progress view. Quitting the
// view cancels the batch.
func runSimulationTUI(ctx context.Context, runner *game.Runner, cfg game.Config) (*game.Report, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSimulationModel(cfg.Games, cancel), tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	go func() {
		report, cached, err := runner.Simulate(ctx, cfg, func(r game.Result) {
			p.Send(resultMsg(r))
		})
		p.Send(batchDoneMsg{report: report, cached: cached, err: err})
	}()

	final, err := p.Run()
	if ctx.Err() != nil {
		return nil, false, context.Canceled
	}
	if err != nil {
		return nil, false, err
	}
	m := final.(simulationModel)
	return m.report, m.cached, m.err
}
