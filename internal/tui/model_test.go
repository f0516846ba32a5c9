package tui

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuidrill/internal/audio"
	"github.com/verte-zerg/tuidrill/internal/catalog"
	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/quiz"
	"github.com/verte-zerg/tuidrill/internal/stats"
	"github.com/verte-zerg/tuidrill/internal/store"
)

type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

type recordingPlayer struct {
	cues []audio.Cue
}

func (p *recordingPlayer) Play(c audio.Cue) {
	p.cues = append(p.cues, c)
}

func symbolCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		App:   "test",
		Title: "Test trainer",
		Kind:  model.AnswerSymbols,
		Categories: []model.Category{
			{
				Name: "AB",
				Kind: model.AnswerSymbols,
				Items: []model.Item{
					{Prompt: "A", Answer: ".-"},
					{Prompt: "B", Answer: "-..."},
				},
			},
			{Name: "Empty", Kind: model.AnswerSymbols},
		},
	}
}

func phraseCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		App:   "phrases",
		Title: "Phrase drill",
		Kind:  model.AnswerPhrase,
		Categories: []model.Category{
			{
				Name:      "Brakes",
				Kind:      model.AnswerPhrase,
				Items:     []model.Item{{Prompt: "AL", Answer: "anti lock"}},
				Fragments: []string{"anti", "braking", "lock"},
			},
		},
	}
}

func newTestModel(t *testing.T, c *catalog.Catalog, delay time.Duration) (*Model, *recordingPlayer, *store.Store) {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	player := &recordingPlayer{}
	m := NewModel(Options{
		Catalog:       c,
		Player:        player,
		Store:         st,
		FeedbackDelay: delay,
		Shuffler:      identityShuffler{},
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, player, st
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	escKey       = tea.KeyMsg{Type: tea.KeyEsc}
	backspaceKey = tea.KeyMsg{Type: tea.KeyBackspace}
	spaceKey     = tea.KeyMsg{Type: tea.KeySpace}
	rightKey     = tea.KeyMsg{Type: tea.KeyRight}
)

func TestSymbolSessionFlow(t *testing.T) {
	m, player, st := newTestModel(t, symbolCatalog(), 0)

	press(m, enterKey)
	if m.ctrl.View() != quiz.ViewPractice {
		t.Fatalf("expected practice view, got %v", m.ctrl.View())
	}
	press(m, runes("."), runes("-"))
	if got := m.ctrl.Session().Composed(); got != ".-" {
		t.Fatalf("expected composed .-, got %q", got)
	}
	if cmd := press(m, enterKey); cmd != nil {
		t.Fatalf("expected no advance tick with zero delay")
	}
	if m.ctrl.Session().State() != quiz.Locked {
		t.Fatalf("expected locked after submit")
	}
	if !strings.Contains(m.View(), "Correct!") {
		t.Fatalf("expected feedback in view")
	}

	press(m, runes("x"))
	if m.ctrl.Session().State() != quiz.AwaitingInput {
		t.Fatalf("expected any key to request the next item")
	}
	press(m, runes("x"), runes("."), enterKey)
	if !strings.Contains(m.View(), "Expected: -...") {
		t.Fatalf("expected the correct answer after a miss:\n%s", m.View())
	}
	press(m, runes("."))
	if m.ctrl.View() != quiz.ViewSummary {
		t.Fatalf("expected summary view, got %v", m.ctrl.View())
	}

	want := []audio.Cue{audio.Dot, audio.Dash, audio.Correct, audio.Dot, audio.Wrong}
	if !reflect.DeepEqual(player.cues, want) {
		t.Fatalf("expected cues %v, got %v", want, player.cues)
	}
	view := m.View()
	for _, s := range []string{"Correct answers: 1/2", "Score: 50.00%", "B: -..."} {
		if !strings.Contains(view, s) {
			t.Fatalf("expected %q in summary:\n%s", s, view)
		}
	}

	sessions, err := st.ListSessions(context.Background(), "test")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Correct != 1 || sessions[0].Total != 2 {
		t.Fatalf("unexpected run log: %+v", sessions)
	}

	press(m, enterKey)
	if m.ctrl.View() != quiz.ViewStart || m.ctrl.Session() != nil {
		t.Fatalf("expected start view without a session")
	}
}

func TestAdvanceTickIgnoresStaleMessages(t *testing.T) {
	m, _, _ := newTestModel(t, symbolCatalog(), 2*time.Second)
	press(m, enterKey, runes("."), runes("-"))
	if cmd := press(m, enterKey); cmd == nil {
		t.Fatalf("expected an advance tick")
	}
	sess := m.ctrl.Session()

	press(m, advanceMsg{sessionID: "other", position: 1})
	if sess.State() != quiz.Locked {
		t.Fatalf("expected tick for another session to be ignored")
	}
	press(m, advanceMsg{sessionID: sess.ID, position: 1})
	if sess.State() != quiz.AwaitingInput || sess.Position() != 1 {
		t.Fatalf("expected advance to item 2, got %v at %d", sess.State(), sess.Position())
	}
	press(m, runes("."), enterKey)
	press(m, advanceMsg{sessionID: sess.ID, position: 1})
	if sess.State() != quiz.Locked {
		t.Fatalf("expected stale tick to leave the lock in place")
	}
	press(m, advanceMsg{sessionID: sess.ID, position: 2})
	if m.ctrl.View() != quiz.ViewSummary {
		t.Fatalf("expected summary after final tick")
	}
}

func TestEmptyCategoryShowsZeroSummary(t *testing.T) {
	m, _, st := newTestModel(t, symbolCatalog(), 0)
	m.startCategory("Empty")
	if m.ctrl.View() != quiz.ViewSummary {
		t.Fatalf("expected summary view, got %v", m.ctrl.View())
	}
	view := m.View()
	if !strings.Contains(view, "Correct answers: 0/0") || !strings.Contains(view, "Score: 0.00%") {
		t.Fatalf("unexpected empty summary:\n%s", view)
	}
	sessions, err := st.ListSessions(context.Background(), "test")
	if err != nil || len(sessions) != 1 {
		t.Fatalf("expected the empty session in the run log, got %v (%v)", sessions, err)
	}
}

func TestPhraseComposition(t *testing.T) {
	m, player, _ := newTestModel(t, phraseCatalog(), 0)
	press(m, enterKey)
	sess := m.ctrl.Session()

	press(m, spaceKey, rightKey, rightKey, spaceKey)
	if got := sess.Composed(); got != "anti lock" {
		t.Fatalf("expected composed phrase, got %q", got)
	}
	press(m, backspaceKey)
	if got := sess.Composed(); got != "anti" {
		t.Fatalf("expected segment removal, got %q", got)
	}
	press(m, spaceKey, enterKey)
	if sess.Last().Verdict != quiz.Correct {
		t.Fatalf("expected correct verdict, got %+v", sess.Last())
	}
	if len(player.cues) != 1 || player.cues[0] != audio.Correct {
		t.Fatalf("expected only the verdict cue, got %v", player.cues)
	}
}

func TestPlaybackStepsAndCancels(t *testing.T) {
	m, player, _ := newTestModel(t, symbolCatalog(), 0)
	press(m, enterKey)

	if cmd := press(m, runes("p")); cmd == nil {
		t.Fatalf("expected a cue tick")
	}
	if cmd := press(m, runes("p")); cmd != nil {
		t.Fatalf("expected overlapping playback to be blocked")
	}
	press(m, cueStepMsg{gen: m.cueGen})
	if !reflect.DeepEqual(player.cues, []audio.Cue{audio.Dot, audio.Dash}) {
		t.Fatalf("unexpected cues %v", player.cues)
	}
	press(m, cueStepMsg{gen: m.cueGen})
	if m.playing {
		t.Fatalf("expected playback to finish")
	}

	press(m, runes("p"))
	gen := m.cueGen
	press(m, escKey)
	if m.ctrl.View() != quiz.ViewStart || m.playing {
		t.Fatalf("expected back to start with playback stopped")
	}
	played := len(player.cues)
	press(m, cueStepMsg{gen: gen})
	if len(player.cues) != played {
		t.Fatalf("expected stale cue tick to be dropped")
	}
}

func TestReferenceTableNavigation(t *testing.T) {
	m, _, _ := newTestModel(t, catalog.Morse(), 0)
	m.menu.Select(len(m.menu.Items()) - 1)
	press(m, enterKey)
	if m.ctrl.View() != quiz.ViewTable {
		t.Fatalf("expected table view, got %v", m.ctrl.View())
	}
	if !strings.Contains(m.View(), "Prompt") {
		t.Fatalf("expected table header in view")
	}
	press(m, escKey)
	if m.ctrl.View() != quiz.ViewStart {
		t.Fatalf("expected start view after esc")
	}
}

func TestQuitFromStart(t *testing.T) {
	m, _, _ := newTestModel(t, symbolCatalog(), 0)
	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRenderSummary(t *testing.T) {
	perfect := renderSummary(quiz.Summary{Correct: 2, Total: 2, Percentage: 100}, stats.Run{}, nil)
	if !strings.Contains(perfect, "No wrong answers. Congratulations!") {
		t.Fatalf("expected congratulation line:\n%s", perfect)
	}
	if strings.Contains(perfect, "This run") {
		t.Fatalf("expected no run line without sessions")
	}

	run := stats.RunMetrics([]model.SessionRecord{{Total: 2, Correct: 1}, {Total: 2, Correct: 2}})
	out := renderSummary(quiz.Summary{Correct: 2, Total: 2, Percentage: 100}, run,
		[]model.MissAggregate{{Prompt: "B", Expected: "-...", Count: 1}})
	if !strings.Contains(out, "This run: 2 sessions, 75.00% overall [ @]") {
		t.Fatalf("unexpected run line:\n%s", out)
	}
	if !strings.Contains(out, "Most missed: B (1)") {
		t.Fatalf("expected most missed prompts:\n%s", out)
	}
}
