package audio

import "time"

const (
	// DefaultUnit is the length of a dot.
	DefaultUnit = 100 * time.Millisecond
	dashUnits   = 3
)

// Step is one cue followed by the wait before the next one.
type Step struct {
	Cue  Cue
	Wait time.Duration
}

// Sequence iterates the cues of a Morse code string.
// Dots last one unit, dashes three, and every cue is followed by a one-unit gap.
type Sequence struct {
	code  []rune
	index int
	unit  time.Duration
}

// NewSequence returns an iterator over code. Non-positive units fall back to DefaultUnit.
func NewSequence(code string, unit time.Duration) *Sequence {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &Sequence{code: []rune(code), unit: unit}
}

// Next returns the next step, or false when the sequence is exhausted.
// Symbols other than '.' and '-' are skipped.
func (s *Sequence) Next() (Step, bool) {
	for s.index < len(s.code) {
		r := s.code[s.index]
		s.index++
		cue, ok := CueForSymbol(string(r))
		if !ok {
			continue
		}
		length := s.unit
		if cue == Dash {
			length = dashUnits * s.unit
		}
		return Step{Cue: cue, Wait: length + s.unit}, true
	}
	return Step{}, false
}

// Remaining reports how many symbols are left to visit.
func (s *Sequence) Remaining() int {
	return len(s.code) - s.index
}
