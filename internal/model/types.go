// Package model defines shared data structures.
package model

import "time"

// AnswerKind tells how answers for a category are composed.
type AnswerKind int

const (
	// AnswerSymbols answers are built from single atomic symbols such as '.' and '-'.
	AnswerSymbols AnswerKind = iota
	// AnswerPhrase answers are built from whole-word fragments joined by spaces.
	AnswerPhrase
)

// String returns a short label used in logs and the run log.
func (k AnswerKind) String() string {
	switch k {
	case AnswerSymbols:
		return "symbols"
	case AnswerPhrase:
		return "phrase"
	default:
		return "unknown"
	}
}

// Item is a unit to be tested.
type Item struct {
	Prompt string
	Answer string
}

// Category is a named group of items.
type Category struct {
	Name      string
	Kind      AnswerKind
	Items     []Item
	Fragments []string
}

// ReferenceEntry is one row of a reference table.
type ReferenceEntry struct {
	Group  string
	Prompt string
	Answer string
}

// Miss records a wrong answer.
type Miss struct {
	Item     Item
	Expected string
	Given    string
}

// Config defines drill settings.
type Config struct {
	FeedbackDelay time.Duration
	Sound         bool
	SoundsDir     string
	Unit          time.Duration
	LogFile       string
	Debug         bool
}

// SessionRecord captures a completed quiz session for the run log.
type SessionRecord struct {
	ID        string
	App       string
	Category  string
	StartedAt time.Time
	EndedAt   time.Time
	Total     int
	Correct   int
}

// MissAggregate counts misses of one prompt across sessions.
type MissAggregate struct {
	Prompt   string
	Expected string
	Count    int
}
