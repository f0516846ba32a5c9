package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuidrill/internal/audio"
	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/quiz"
)

func (m *Model) updatePractice(msg tea.KeyMsg) tea.Cmd {
	sess := m.ctrl.Session()
	if key.Matches(msg, m.keys.Back) {
		m.back()
		return nil
	}
	if sess == nil {
		return nil
	}
	if sess.State() == quiz.Locked {
		return m.requestNext()
	}
	if key.Matches(msg, m.keys.Submit) {
		return m.submit()
	}
	if key.Matches(msg, m.keys.Backspace) {
		m.ctrl.Handle(quiz.Backspace)
		return nil
	}
	if sess.Kind == model.AnswerPhrase {
		return m.updatePhrase(msg)
	}
	return m.updateSymbols(msg)
}

func (m *Model) updateSymbols(msg tea.KeyMsg) tea.Cmd {
	var symbol string
	switch {
	case key.Matches(msg, m.keys.Play):
		return m.startCues()
	case key.Matches(msg, m.keys.Dot):
		symbol = "."
	case key.Matches(msg, m.keys.Dash):
		symbol = "-"
	default:
		return nil
	}
	if m.ctrl.Handle(quiz.Symbol(symbol)).Accepted {
		if cue, ok := audio.CueForSymbol(symbol); ok {
			m.opts.Player.Play(cue)
		}
	}
	return nil
}

func (m *Model) updatePhrase(msg tea.KeyMsg) tea.Cmd {
	if len(m.fragments) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Add):
		m.ctrl.Handle(quiz.Symbol(m.fragments[m.fragmentFocus]))
	case key.Matches(msg, m.keys.Left):
		m.fragmentFocus = moveFocus(m.paletteRows(), m.fragmentFocus, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.fragmentFocus = moveFocus(m.paletteRows(), m.fragmentFocus, 0, 1)
	case key.Matches(msg, m.keys.Up):
		m.fragmentFocus = moveFocus(m.paletteRows(), m.fragmentFocus, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.fragmentFocus = moveFocus(m.paletteRows(), m.fragmentFocus, 1, 0)
	}
	return nil
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) paletteRows() [][]int {
	return wrapCells(buildFragmentCells(m.fragments, m.fragmentFocus), m.contentWidth())
}

func (m *Model) renderPractice() string {
	sess := m.ctrl.Session()
	if sess == nil {
		return ""
	}
	locked := sess.State() == quiz.Locked
	item, _ := sess.CurrentItem()
	if locked {
		item = sess.Last().Item
	}
	done, total := sess.Progress()

	lines := []string{
		m.renderPracticeHeader(sess.Category, done, total),
		"",
		promptStyle.Render(item.Prompt),
		"",
		renderComposed(sess.Composed(), locked),
		renderFeedback(sess.Last(), locked),
	}
	if sess.Kind == model.AnswerPhrase {
		cells := buildFragmentCells(m.fragments, m.fragmentFocus)
		lines = append(lines, "", renderCellRows(cells, wrapCells(cells, m.contentWidth())))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderPracticeHeader puts the category on the left and progress on the right.
func (m *Model) renderPracticeHeader(category string, done, total int) string {
	width := m.contentWidth()
	left := titleStyle.Render(truncateLine(category, width-8))
	right := counterStyle.Render(fmt.Sprintf("%d/%d", done, total))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderComposed(composed string, locked bool) string {
	if composed == "" {
		composed = " "
	}
	if locked {
		return lockedInputStyle.Render(composed)
	}
	return inputStyle.Render(composed)
}

func renderFeedback(res quiz.Result, locked bool) string {
	if !locked {
		return " "
	}
	if res.Verdict == quiz.Correct {
		return correctStyle.Render("Correct!")
	}
	return incorrectStyle.Render("Wrong. ") + feedbackStyle.Render("Expected: "+res.Expected)
}
