// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/tuidrill/internal/audio"
	"github.com/verte-zerg/tuidrill/internal/catalog"
	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/quiz"
	"github.com/verte-zerg/tuidrill/internal/stats"
	"github.com/verte-zerg/tuidrill/internal/store"
)

const topMissesLimit = 3

// Options configures a Model. Only Catalog is required.
type Options struct {
	Catalog       *catalog.Catalog
	Player        audio.Player
	Store         *store.Store
	Log           *zap.Logger
	FeedbackDelay time.Duration
	Unit          time.Duration
	Shuffler      quiz.Shuffler
}

// advanceMsg requests the next item once the feedback delay elapses. It is
// dropped unless the same session is still locked at the same position.
type advanceMsg struct {
	sessionID string
	position  int
}

// cueStepMsg plays the next step of the active cue sequence.
type cueStepMsg struct {
	gen int
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	ctrl *quiz.Controller
	opts Options
	keys keyMap
	help help.Model

	menu      list.Model
	reference table.Model
	summary   viewport.Model

	width  int
	height int

	fragments     []string
	fragmentFocus int

	cues    *audio.Sequence
	playing bool
	cueGen  int

	run       stats.Run
	topMisses []model.MissAggregate
	last      quiz.Summary
}

// NewModel constructs a drill TUI model on the start view.
func NewModel(opts Options) *Model {
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Unit <= 0 {
		opts.Unit = audio.DefaultUnit
	}
	if opts.Shuffler == nil {
		opts.Shuffler = quiz.NewShuffler()
	}
	m := &Model{
		ctrl:      quiz.NewController(opts.Catalog, opts.Shuffler),
		opts:      opts,
		keys:      newKeyMap(),
		help:      help.New(),
		menu:      newMenu(opts.Catalog),
		reference: newReferenceTable(opts.Catalog.Reference()),
		summary:   viewport.New(0, 0),
	}
	m.refreshRun()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case advanceMsg:
		sess := m.ctrl.Session()
		if m.ctrl.View() != quiz.ViewPractice || sess == nil {
			return m, nil
		}
		if sess.ID != msg.sessionID || sess.Position() != msg.position || sess.State() != quiz.Locked {
			return m, nil
		}
		return m, m.requestNext()
	case cueStepMsg:
		if msg.gen != m.cueGen {
			return m, nil
		}
		return m, m.stepCue()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.stopCues()
			return m, tea.Quit
		}
		switch m.ctrl.View() {
		case quiz.ViewStart:
			return m.updateMenu(msg)
		case quiz.ViewPractice:
			return m, m.updatePractice(msg)
		case quiz.ViewSummary:
			return m.updateSummary(msg)
		case quiz.ViewTable:
			return m.updateReference(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.ctrl.View() {
	case quiz.ViewStart:
		body = m.menu.View()
	case quiz.ViewPractice:
		body = m.renderPractice()
	case quiz.ViewSummary:
		body = m.renderSummaryView()
	case quiz.ViewTable:
		body = m.renderReferenceView()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return body + "\n" + footer
	}
	bodyHeight := m.height - 1
	if m.ctrl.View() == quiz.ViewPractice {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	} else {
		body = fitLines(body, m.width, bodyHeight)
	}
	return body + "\n" + lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	bodyHeight := height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.menu.SetSize(width, bodyHeight)
	m.reference.SetHeight(clampHeight(bodyHeight - 2))
	m.summary.Width = width
	m.summary.Height = clampHeight(bodyHeight - 2)
}

func clampHeight(h int) int {
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) renderFooter() string {
	kind := m.opts.Catalog.Kind
	state := quiz.AwaitingInput
	if sess := m.ctrl.Session(); sess != nil {
		kind = sess.Kind
		state = sess.State()
	}
	return m.help.ShortHelpView(m.keys.bindingsFor(m.ctrl.View(), kind, state))
}

// back discards the session and any playback and returns to the start view.
func (m *Model) back() {
	m.stopCues()
	m.ctrl.Handle(quiz.Back)
}

func (m *Model) startCategory(name string) tea.Cmd {
	out := m.ctrl.Handle(quiz.SelectCategory(name))
	if !out.Accepted {
		return nil
	}
	cat, _ := m.opts.Catalog.Category(name)
	m.fragments = cat.Fragments
	m.fragmentFocus = 0
	m.opts.Log.Debug("session started",
		zap.String("app", m.opts.Catalog.App),
		zap.String("category", name),
		zap.String("session", m.ctrl.Session().ID),
	)
	if out.Finished {
		m.finishSession()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	out := m.ctrl.Handle(quiz.Submit)
	if !out.Accepted || out.Result == nil {
		return nil
	}
	res := out.Result
	if res.Verdict == quiz.Correct {
		m.opts.Player.Play(audio.Correct)
	} else {
		m.opts.Player.Play(audio.Wrong)
	}
	sess := m.ctrl.Session()
	m.opts.Log.Debug("answer judged",
		zap.String("session", sess.ID),
		zap.String("prompt", res.Item.Prompt),
		zap.String("given", res.Given),
		zap.Bool("correct", res.Verdict == quiz.Correct),
	)
	if m.opts.FeedbackDelay <= 0 {
		return nil
	}
	msg := advanceMsg{sessionID: sess.ID, position: sess.Position()}
	return tea.Tick(m.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Model) requestNext() tea.Cmd {
	out := m.ctrl.Handle(quiz.RequestNext)
	if out.Finished {
		m.finishSession()
	}
	return nil
}

// finishSession records the terminal session in the run log and prepares the
// summary view.
func (m *Model) finishSession() {
	m.stopCues()
	sess := m.ctrl.Session()
	if sess == nil {
		return
	}
	sum := sess.Summarize()
	m.last = sum
	rec := model.SessionRecord{
		ID:        sess.ID,
		App:       m.opts.Catalog.App,
		Category:  sum.Category,
		StartedAt: sess.StartedAt,
		EndedAt:   time.Now(),
		Total:     sum.Total,
		Correct:   sum.Correct,
	}
	if m.opts.Store != nil {
		if err := m.opts.Store.InsertSession(context.Background(), rec, sum.Wrong); err != nil {
			m.opts.Log.Error("failed to record session", zap.String("session", rec.ID), zap.Error(err))
		}
	}
	m.opts.Log.Info("session finished",
		zap.String("app", rec.App),
		zap.String("category", rec.Category),
		zap.String("session", rec.ID),
		zap.Int("correct", rec.Correct),
		zap.Int("total", rec.Total),
	)
	m.refreshRun()
	m.summary.SetContent(renderSummary(sum, m.run, m.topMisses))
	m.summary.GotoTop()
}

func (m *Model) refreshRun() {
	if m.opts.Store == nil {
		return
	}
	ctx := context.Background()
	sessions, err := m.opts.Store.ListSessions(ctx, m.opts.Catalog.App)
	if err != nil {
		m.opts.Log.Error("failed to load run log", zap.Error(err))
		return
	}
	m.run = stats.RunMetrics(sessions)
	top, err := m.opts.Store.TopMisses(ctx, m.opts.Catalog.App, topMissesLimit)
	if err != nil {
		m.opts.Log.Error("failed to load top misses", zap.Error(err))
		return
	}
	m.topMisses = top
}

// startCues plays the current item's code one step per tick. A sequence
// already in flight is left alone.
func (m *Model) startCues() tea.Cmd {
	if m.playing {
		return nil
	}
	item, ok := m.ctrl.Session().CurrentItem()
	if !ok {
		return nil
	}
	m.cues = audio.NewSequence(item.Answer, m.opts.Unit)
	m.playing = true
	return m.stepCue()
}

func (m *Model) stepCue() tea.Cmd {
	if m.cues == nil {
		m.playing = false
		return nil
	}
	step, ok := m.cues.Next()
	if !ok {
		m.cues = nil
		m.playing = false
		return nil
	}
	m.opts.Player.Play(step.Cue)
	gen := m.cueGen
	return tea.Tick(step.Wait, func(time.Time) tea.Msg {
		return cueStepMsg{gen: gen}
	})
}

func (m *Model) stopCues() {
	m.cueGen++
	m.cues = nil
	m.playing = false
}
