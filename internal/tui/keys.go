package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/quiz"
)

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Select    key.Binding
	Back      key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Dot       key.Binding
	Dash      key.Binding
	Play      key.Binding
	Add       key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Next      key.Binding
	Scroll    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "undo")),
		Dot:       key.NewBinding(key.WithKeys("."), key.WithHelp(".", "dot")),
		Dash:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "dash")),
		Play:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play")),
		Add:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "add")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Next:      key.NewBinding(key.WithHelp("any key", "next")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

// bindingsFor returns the hints shown in the footer for the current screen.
func (k keyMap) bindingsFor(view quiz.View, kind model.AnswerKind, state quiz.State) []key.Binding {
	switch view {
	case quiz.ViewStart:
		return []key.Binding{k.Select, k.Quit}
	case quiz.ViewPractice:
		if state == quiz.Locked {
			return []key.Binding{k.Next, k.Back}
		}
		if kind == model.AnswerPhrase {
			return []key.Binding{k.Left, k.Add, k.Backspace, k.Submit, k.Back}
		}
		return []key.Binding{k.Dot, k.Dash, k.Backspace, k.Submit, k.Play, k.Back}
	case quiz.ViewSummary:
		return []key.Binding{k.Scroll, k.Back}
	case quiz.ViewTable:
		return []key.Binding{k.Scroll, k.Back}
	default:
		return nil
	}
}
