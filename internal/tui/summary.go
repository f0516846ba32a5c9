package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/quiz"
	"github.com/verte-zerg/tuidrill/internal/stats"
)

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
		m.back()
		return m, nil
	}
	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)
	return m, cmd
}

func (m *Model) renderSummaryView() string {
	return titleStyle.Render("Results: "+m.last.Category) + "\n\n" + m.summary.View()
}

func renderSummary(sum quiz.Summary, run stats.Run, top []model.MissAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Correct answers: %d/%d\n", sum.Correct, sum.Total)
	fmt.Fprintf(&b, "Score: %.2f%%\n\n", sum.Percentage)
	if len(sum.Wrong) == 0 {
		b.WriteString(correctStyle.Render("No wrong answers. Congratulations!"))
	} else {
		b.WriteString(headerStyle.Render("Wrong answers:"))
		for _, line := range stats.FormatMisses(sum.Wrong) {
			b.WriteString("\n  " + incorrectStyle.Render(line))
		}
	}
	if run.Sessions > 0 {
		b.WriteString("\n\n" + counterStyle.Render(renderRunLine(run, top)))
	}
	return b.String()
}

// renderRunLine summarizes every session finished since the program started.
func renderRunLine(run stats.Run, top []model.MissAggregate) string {
	line := fmt.Sprintf("This run: %s, %.2f%% overall", countLabel(run.Sessions, "session"), run.Accuracy)
	if run.Sessions > 1 {
		line += " [" + stats.Sparkline(run.Scores) + "]"
	}
	if len(top) == 0 {
		return line
	}
	parts := make([]string, len(top))
	for i, agg := range top {
		parts[i] = fmt.Sprintf("%s (%d)", agg.Prompt, agg.Count)
	}
	return line + "\nMost missed: " + strings.Join(parts, ", ")
}
