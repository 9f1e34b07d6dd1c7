// Package menu holds the selection state for the quickpick menu:
// the choice list, the cursor, the confirmed item, and the derived message.
// It knows nothing about terminals or rendering.
package menu

import "errors"

// ErrNoChoices is returned by New when the choice list is empty.
// Cursor arithmetic is modulo the list length, so an empty list is rejected
// up front instead of failing at the first key press.
var ErrNoChoices = errors.New("menu: choice list must not be empty")

// Choice pairs a selectable label with the message shown when the cursor
// lands on it. Keeping them together rules out the label/message tables
// drifting out of sync.
type Choice struct {
	Label   string
	Message string
}

// Menu is the selection state. It is owned by a single goroutine (the UI
// update loop) and is mutated in place.
type Menu struct {
	choices   []Choice
	cursor    int
	confirmed string
	message   string
}

// New creates a Menu over the given choices. The cursor starts at 0; the
// confirmed item and message start empty until the user acts.
func New(choices []Choice) (*Menu, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	cs := make([]Choice, len(choices))
	copy(cs, choices)
	return &Menu{choices: cs}, nil
}

// Default returns the built-in three-choice menu.
func Default() *Menu {
	m, _ := New([]Choice{
		{Label: "Choice 1", Message: "You selected Choice 1!"},
		{Label: "Choice 2", Message: "You selected Choice 2!"},
		{Label: "Choice 3", Message: "You selected Choice 3!"},
	})
	return m
}

// Next moves the cursor down one entry, wrapping past the end.
func (m *Menu) Next() {
	m.cursor = (m.cursor + 1) % len(m.choices)
	m.message = m.choices[m.cursor].Message
}

// Prev moves the cursor up one entry, wrapping past the start.
func (m *Menu) Prev() {
	m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	m.message = m.choices[m.cursor].Message
}

// Confirm records the choice under the cursor as the selected item.
func (m *Menu) Confirm() {
	m.confirmed = m.choices[m.cursor].Label
	m.message = m.choices[m.cursor].Message
}

// Cursor returns the index of the highlighted (not yet confirmed) choice.
func (m *Menu) Cursor() int { return m.cursor }

// Len returns the number of choices.
func (m *Menu) Len() int { return len(m.choices) }

// Label returns the label of choice i.
func (m *Menu) Label(i int) string { return m.choices[i].Label }

// Confirmed returns the last confirmed label, or "" before the first Confirm.
func (m *Menu) Confirmed() string { return m.confirmed }

// Message returns the message for the last cursor move or confirmation,
// or "" before the user has acted.
func (m *Menu) Message() string { return m.message }
