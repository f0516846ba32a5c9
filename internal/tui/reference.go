package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidrill/internal/model"
)

func newReferenceTable(entries []model.ReferenceEntry) table.Model {
	headers := []string{"Group", "Prompt", "Answer"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		row := table.Row{e.Group, e.Prompt, e.Answer}
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
		rows = append(rows, row)
	}
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i] + 1}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(clampHeight(len(rows))),
	)
	t.SetStyles(referenceTableStyles())
	return t
}

func (m *Model) updateReference(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.back()
		return m, nil
	}
	var cmd tea.Cmd
	m.reference, cmd = m.reference.Update(msg)
	return m, cmd
}

func (m *Model) renderReferenceView() string {
	return titleStyle.Render(m.opts.Catalog.Title+" reference") + "\n\n" + m.reference.View()
}
