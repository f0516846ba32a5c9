package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuidrill/internal/catalog"
	"github.com/verte-zerg/tuidrill/internal/quiz"
)

const referenceMenuTitle = "Reference table"

type menuItem struct {
	title     string
	desc      string
	reference bool
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func menuItems(c *catalog.Catalog) []list.Item {
	items := make([]list.Item, 0, len(c.Categories)+1)
	for _, cat := range c.Categories {
		items = append(items, menuItem{title: cat.Name, desc: countLabel(len(cat.Items), "item")})
	}
	items = append(items, menuItem{
		title:     referenceMenuTitle,
		desc:      countLabel(len(c.Reference()), "entry"),
		reference: true,
	})
	return items
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if noun == "entry" {
		return fmt.Sprintf("%d entries", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func newMenu(c *catalog.Catalog) list.Model {
	l := list.New(menuItems(c), list.NewDefaultDelegate(), 0, 0)
	l.Title = c.Title
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		if item.reference {
			m.ctrl.Handle(quiz.OpenTable)
			return m, nil
		}
		return m, m.startCategory(item.title)
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}
