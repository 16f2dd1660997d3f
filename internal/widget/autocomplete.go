package widget

import (
	"fmt"

	"speciesfilter/internal/debug"
	"speciesfilter/internal/species"
)

// State is the visible state of the autocomplete input.
type State int

const (
	// EmptyPlaceholder - unfocused, showing the title text, "inactive" style.
	EmptyPlaceholder State = iota
	// ActiveEmpty - focused with an empty value.
	ActiveEmpty
	// ActiveTyping - focused with a value that is neutral or matches.
	ActiveTyping
	// ActiveInvalid - focused with a value of searchable length and no match.
	ActiveInvalid
)

func (s State) String() string {
	switch s {
	case EmptyPlaceholder:
		return "empty-placeholder"
	case ActiveEmpty:
		return "active-empty"
	case ActiveTyping:
		return "active-typing"
	case ActiveInvalid:
		return "active-invalid"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Autocomplete drives a HostControl as the species filter autocomplete.
// All methods must be called from the UI event loop.
type Autocomplete struct {
	candidates []string
	title      string
	host       HostControl
	location   func() string
	nav        Redirector

	state State
	term  string
}

// NewAutocomplete wires the matcher into host and puts the field in its
// placeholder state. The candidate list is held for the widget's lifetime
// and never modified.
func NewAutocomplete(host HostControl, candidates []string, title string, location func() string, nav Redirector) *Autocomplete {
	a := &Autocomplete{
		candidates: candidates,
		title:      title,
		host:       host,
		location:   location,
		nav:        nav,
		state:      EmptyPlaceholder,
	}
	host.SetSource(a.source)
	host.SetRenderItem(a.renderItem)
	host.SetValue(title)
	return a
}

func (a *Autocomplete) source(query string) []string {
	a.term = query
	return species.Match(a.candidates, query)
}

func (a *Autocomplete) renderItem(label string) string {
	return species.Highlight(label, a.term)
}

// State returns the current state.
func (a *Autocomplete) State() State { return a.state }

// Inactive reports whether the "inactive" style applies.
func (a *Autocomplete) Inactive() bool { return a.state == EmptyPlaceholder }

// Invalid reports whether the "invalid" style applies.
func (a *Autocomplete) Invalid() bool { return a.state == ActiveInvalid }

// Title returns the placeholder title text.
func (a *Autocomplete) Title() string { return a.title }

// Candidates returns the candidate list the widget was built with.
func (a *Autocomplete) Candidates() []string { return a.candidates }

// Focus clears the placeholder, or re-runs the search for a value that was
// already there.
func (a *Autocomplete) Focus() {
	v := a.host.Value()
	switch {
	case v == a.title:
		a.host.SetValue("")
		a.state = ActiveEmpty
	case v != "":
		a.host.TriggerSearch()
		a.evaluate(v)
	default:
		a.state = ActiveEmpty
	}
	debug.Event("autocomplete", "focus", "state", a.state)
}

// Blur restores the placeholder whatever the previous state was.
func (a *Autocomplete) Blur() {
	a.host.SetValue(a.title)
	a.state = EmptyPlaceholder
	debug.Event("autocomplete", "blur")
}

// KeyUp re-judges the current value after a keystroke. An unfocused field
// keeps its placeholder: a keystroke queued before Blur must not judge the
// title as a query.
func (a *Autocomplete) KeyUp() {
	if a.state == EmptyPlaceholder {
		return
	}
	a.evaluate(a.host.Value())
}

// Submit re-runs the search. It returns false: a submit never navigates.
// Like KeyUp it is ignored while the placeholder is showing.
func (a *Autocomplete) Submit() bool {
	if a.state == EmptyPlaceholder {
		return false
	}
	a.host.TriggerSearch()
	a.evaluate(a.host.Value())
	return false
}

// Select navigates to the filtered page for a chosen result.
func (a *Autocomplete) Select(value string) {
	if value == "" || a.nav == nil {
		return
	}
	loc := ""
	if a.location != nil {
		loc = a.location()
	}
	url := FilterURL(loc, value)
	debug.Event("autocomplete", "select", "value", value, "url", url)
	a.nav.Redirect(url)
}

func (a *Autocomplete) evaluate(v string) {
	switch species.Check(a.candidates, v) {
	case species.Invalid:
		a.state = ActiveInvalid
	default:
		if v == "" {
			a.state = ActiveEmpty
		} else {
			a.state = ActiveTyping
		}
	}
	debug.Event("autocomplete", "evaluate", "value", v, "state", a.state)
}
