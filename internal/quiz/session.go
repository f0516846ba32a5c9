// Package quiz implements the quiz session state machine and its input dispatch.
package quiz

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuidrill/internal/model"
)

// State is the session lifecycle state.
type State int

const (
	// AwaitingInput accepts composition and submission.
	AwaitingInput State = iota
	// Locked holds feedback for the last submission until Advance.
	Locked
	// Terminal means every item has been answered.
	Terminal
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Locked:
		return "locked"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a single submission.
type Verdict int

const (
	// NoVerdict means nothing was judged.
	NoVerdict Verdict = iota
	// Correct answers matched exactly.
	Correct
	// Incorrect answers were recorded as misses.
	Incorrect
)

// Result describes the last judged submission.
type Result struct {
	Item     model.Item
	Verdict  Verdict
	Expected string
	Given    string
}

// Summary is the end-of-session score.
type Summary struct {
	Category   string
	Correct    int
	Total      int
	Percentage float64
	Wrong      []model.Miss
}

// Session drives one run through a category.
type Session struct {
	ID        string
	Category  string
	Kind      model.AnswerKind
	StartedAt time.Time

	sequence []model.Item
	position int
	wrong    []model.Miss
	composed string
	state    State
	last     Result
}

// Start builds a session over a shuffled copy of the category's items.
// An empty category yields a session that is already terminal.
func Start(cat model.Category, sh Shuffler) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Category:  cat.Name,
		Kind:      cat.Kind,
		StartedAt: time.Now(),
		sequence:  shuffleItems(sh, cat.Items),
	}
	if len(s.sequence) == 0 {
		s.state = Terminal
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Sequence returns the shuffled item order.
func (s *Session) Sequence() []model.Item {
	return append([]model.Item(nil), s.sequence...)
}

// Position returns the number of submitted items.
func (s *Session) Position() int {
	return s.position
}

// Progress reports submitted and total item counts.
func (s *Session) Progress() (done, total int) {
	return s.position, len(s.sequence)
}

// CurrentItem returns the item at the current position.
func (s *Session) CurrentItem() (model.Item, bool) {
	if s.position < 0 || s.position >= len(s.sequence) {
		return model.Item{}, false
	}
	return s.sequence[s.position], true
}

// Composed returns the input accumulated for the current item.
func (s *Session) Composed() string {
	return s.composed
}

// Last returns the result of the most recent submission.
func (s *Session) Last() Result {
	return s.last
}

// Wrong returns the recorded misses in the order they happened.
func (s *Session) Wrong() []model.Miss {
	return append([]model.Miss(nil), s.wrong...)
}

// Append adds a symbol or fragment to the composed input. Ignored unless awaiting input.
func (s *Session) Append(symbol string) bool {
	if s.state != AwaitingInput {
		return false
	}
	s.composed = appendSegment(s.Kind, s.composed, symbol)
	return true
}

// RemoveLast drops the last symbol, or the last word in phrase mode.
func (s *Session) RemoveLast() bool {
	if s.state != AwaitingInput {
		return false
	}
	s.composed = removeSegment(s.Kind, s.composed)
	return true
}

// Submit judges the composed input against the current item and locks the session.
// Calls outside AwaitingInput change nothing.
func (s *Session) Submit() (Result, bool) {
	if s.state != AwaitingInput {
		return Result{}, false
	}
	item, ok := s.CurrentItem()
	if !ok {
		return Result{}, false
	}
	given := strings.TrimSpace(s.composed)
	res := Result{Item: item, Expected: item.Answer, Given: given, Verdict: Correct}
	if given != item.Answer {
		res.Verdict = Incorrect
		s.wrong = append(s.wrong, model.Miss{Item: item, Expected: item.Answer, Given: given})
	}
	s.position++
	s.last = res
	s.state = Locked
	return res, true
}

// Advance releases the lock and moves to the next item or to Terminal.
func (s *Session) Advance() bool {
	if s.state != Locked {
		return false
	}
	s.composed = ""
	if s.position >= len(s.sequence) {
		s.state = Terminal
		return true
	}
	s.state = AwaitingInput
	return true
}

// Summarize computes the score from the miss list.
func (s *Session) Summarize() Summary {
	total := len(s.sequence)
	correct := total - len(s.wrong)
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(correct) / float64(total)
	}
	return Summary{
		Category:   s.Category,
		Correct:    correct,
		Total:      total,
		Percentage: pct,
		Wrong:      s.Wrong(),
	}
}

func appendSegment(kind model.AnswerKind, composed, segment string) string {
	if kind != model.AnswerPhrase || composed == "" {
		return composed + segment
	}
	return composed + " " + segment
}

func removeSegment(kind model.AnswerKind, composed string) string {
	if composed == "" {
		return composed
	}
	if kind == model.AnswerPhrase {
		idx := strings.LastIndexAny(composed, " \t")
		if idx < 0 {
			return ""
		}
		return strings.TrimRight(composed[:idx], " \t")
	}
	_, size := utf8.DecodeLastRuneInString(composed)
	return composed[:len(composed)-size]
}
