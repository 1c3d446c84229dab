package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/quiz"
	"github.com/vovakirdan/mathbreak/internal/storage"
)

// recentLimit is how many of the last answers the summary lists.
const recentLimit = 5

// Summary holds everything shown after the program exits.
type Summary struct {
	Outcome   Outcome
	Run       *storage.Run      // May be nil
	Stats     *storage.RunStats // May be nil
	Operators []storage.OperatorStats
	Recent    []storage.AnswerEntry // Newest first
}

// LoadSummary gathers the run statistics from the journal.
func LoadSummary(journal *storage.Store, runID string, outcome Outcome) (Summary, error) {
	s := Summary{Outcome: outcome}
	if journal == nil {
		return s, nil
	}

	run, err := journal.GetRun(runID)
	if err != nil {
		return s, err
	}
	if run == nil {
		return s, nil
	}
	stats, err := journal.GetRunStats(runID)
	if err != nil {
		return s, err
	}
	ops, err := journal.GetOperatorStats(runID)
	if err != nil {
		return s, err
	}
	recent, err := journal.RecentAnswers(runID, recentLimit)
	if err != nil {
		return s, err
	}
	s.Run = run
	s.Stats = stats
	s.Operators = ops
	s.Recent = recent
	return s, nil
}

// operatorSymbols maps journal operator names to their display symbol.
var operatorSymbols = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "×",
}

// RenderSummary renders the post-game summary.
func RenderSummary(s Summary) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle := lipgloss.NewStyle().Bold(true)

	title := "GAME OVER"
	if s.Outcome.Aborted {
		title = "GAME ABANDONED"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	st := s.Outcome.State
	line := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	line("Final score", fmt.Sprintf("%d", st.Score))
	line("Level reached", fmt.Sprintf("%d", st.Level))
	line("Lives left", fmt.Sprintf("%d", st.Lives))
	if s.Run != nil {
		line("Difficulty", fmt.Sprintf("%s (seed %d)", s.Run.Difficulty, s.Run.Seed))
	}

	if s.Stats == nil || s.Stats.Answers == 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Italic(true).Render("No questions answered."))
		b.WriteString("\n")
		return b.String()
	}

	line("Questions", fmt.Sprintf("%d", s.Stats.Answers))
	line("Accuracy", fmt.Sprintf("%.0f%%", s.Stats.Accuracy()*100))
	line("Wrong / late", fmt.Sprintf("%d / %d", s.Stats.Incorrect, s.Stats.TimedOut))
	line("Avg. response", formatMillis(s.Stats.AvgElapsedMs))

	if len(s.Operators) > 0 {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString("\n")
		b.WriteString(tableStyle.Render(operatorTable(s.Operators).View()))
		b.WriteString("\n")
	}

	if len(s.Recent) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Last answers"))
		b.WriteString("\n")
		for _, e := range s.Recent {
			b.WriteString(answerLine(e))
			b.WriteString("\n")
		}
	}

	return b.String()
}

var (
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// answerLine renders one journaled answer, e.g. "✓ 3 × 4 = 12".
func answerLine(e storage.AnswerEntry) string {
	solved := strings.Replace(e.Question, "?", fmt.Sprintf("%d", e.Expected), 1)
	switch e.Outcome {
	case quiz.Correct.String():
		return correctStyle.Render("✓ " + solved)
	case quiz.TimedOut.String():
		return wrongStyle.Render("✗ " + solved + " (time ran out)")
	default:
		return wrongStyle.Render(fmt.Sprintf("✗ %s (you said %s)", solved, e.Given))
	}
}

// operatorTable builds a static per-operator breakdown.
func operatorTable(ops []storage.OperatorStats) table.Model {
	columns := []table.Column{
		{Title: "Op", Width: 4},
		{Title: "Asked", Width: 6},
		{Title: "Right", Width: 6},
		{Title: "Avg", Width: 8},
	}

	rows := make([]table.Row, 0, len(ops))
	for _, o := range ops {
		symbol, ok := operatorSymbols[o.Operator]
		if !ok {
			symbol = o.Operator
		}
		rows = append(rows, table.Row{
			symbol,
			fmt.Sprintf("%d", o.Answers),
			fmt.Sprintf("%d", o.Correct),
			formatMillis(o.AvgElapsedMs),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive, so no row is highlighted
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// formatMillis renders a duration in milliseconds as seconds.
func formatMillis(ms float64) string {
	return fmt.Sprintf("%.1fs", ms/1000)
}

// StateLine is a one-line plain summary, used when the terminal is not
// interactive.
func StateLine(st core.GameState) string {
	return fmt.Sprintf("score=%d level=%d lives=%d", st.Score, st.Level, st.Lives)
}
