package quiz

import (
	"github.com/verte-zerg/tuidrill/internal/catalog"
)

// EventKind tags an input event.
type EventKind int

const (
	// EventSymbol appends Event.Value to the composed input.
	EventSymbol EventKind = iota
	// EventBackspace removes the last symbol or segment.
	EventBackspace
	// EventSubmit judges the composed input.
	EventSubmit
	// EventRequestNext releases the feedback lock.
	EventRequestNext
	// EventSelectCategory starts a session for the category named by Event.Value.
	EventSelectCategory
	// EventOpenTable shows the reference table.
	EventOpenTable
	// EventBack returns to the start view and discards any session.
	EventBack
)

// Event is a single user action from the presentation layer.
type Event struct {
	Kind  EventKind
	Value string
}

// Symbol returns an EventSymbol for s.
func Symbol(s string) Event { return Event{Kind: EventSymbol, Value: s} }

// SelectCategory returns an EventSelectCategory for name.
func SelectCategory(name string) Event { return Event{Kind: EventSelectCategory, Value: name} }

// Backspace, Submit, RequestNext, OpenTable and Back are the payload-free events.
var (
	Backspace   = Event{Kind: EventBackspace}
	Submit      = Event{Kind: EventSubmit}
	RequestNext = Event{Kind: EventRequestNext}
	OpenTable   = Event{Kind: EventOpenTable}
	Back        = Event{Kind: EventBack}
)

// View is the screen the controller wants rendered.
type View int

const (
	// ViewStart lists categories.
	ViewStart View = iota
	// ViewPractice shows the current item.
	ViewPractice
	// ViewSummary shows the final score.
	ViewSummary
	// ViewTable shows the reference table.
	ViewTable
)

// Outcome reports what a handled event did.
type Outcome struct {
	// Accepted is false when the event was not valid for the current state.
	Accepted bool
	// Result is set when the event was an accepted submission.
	Result *Result
	// Finished is true when the event moved the session to Terminal.
	Finished bool
}

// Controller dispatches events to the active session and tracks the view.
type Controller struct {
	catalog  *catalog.Catalog
	shuffler Shuffler
	session  *Session
	view     View
}

// NewController returns a controller on the start view.
func NewController(c *catalog.Catalog, sh Shuffler) *Controller {
	return &Controller{catalog: c, shuffler: sh, view: ViewStart}
}

// Catalog returns the catalog the controller draws categories from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// View returns the current view.
func (c *Controller) View() View {
	return c.view
}

// Session returns the active session, or nil.
func (c *Controller) Session() *Session {
	return c.session
}

// Handle applies ev. Events that do not fit the current state are ignored.
func (c *Controller) Handle(ev Event) Outcome {
	switch ev.Kind {
	case EventSelectCategory:
		if c.view != ViewStart {
			return Outcome{}
		}
		cat, ok := c.catalog.Category(ev.Value)
		if !ok {
			return Outcome{}
		}
		c.session = Start(cat, c.shuffler)
		if c.session.State() == Terminal {
			c.view = ViewSummary
			return Outcome{Accepted: true, Finished: true}
		}
		c.view = ViewPractice
		return Outcome{Accepted: true}
	case EventOpenTable:
		if c.view != ViewStart {
			return Outcome{}
		}
		c.view = ViewTable
		return Outcome{Accepted: true}
	case EventBack:
		if c.view == ViewStart {
			return Outcome{}
		}
		c.session = nil
		c.view = ViewStart
		return Outcome{Accepted: true}
	}

	if c.view != ViewPractice || c.session == nil {
		return Outcome{}
	}
	switch ev.Kind {
	case EventSymbol:
		return Outcome{Accepted: c.session.Append(ev.Value)}
	case EventBackspace:
		return Outcome{Accepted: c.session.RemoveLast()}
	case EventSubmit:
		res, ok := c.session.Submit()
		if !ok {
			return Outcome{}
		}
		return Outcome{Accepted: true, Result: &res}
	case EventRequestNext:
		if !c.session.Advance() {
			return Outcome{}
		}
		if c.session.State() == Terminal {
			c.view = ViewSummary
			return Outcome{Accepted: true, Finished: true}
		}
		return Outcome{Accepted: true}
	default:
		return Outcome{}
	}
}
