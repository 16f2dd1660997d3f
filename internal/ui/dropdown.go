package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DropdownOption is one entry of a Dropdown. An empty Value is a
// placeholder and never produces a change.
type DropdownOption struct {
	Label string
	Value string
}

// Dropdown is a single-select list. The list opens on Enter/Space and
// commits the highlighted option on the next Enter/Space.
type Dropdown struct {
	Width int

	options  []DropdownOption
	selected int
	cursor   int
	open     bool
	focused  bool
	keys     KeyMap
}

// NewDropdown builds a closed dropdown with the first option selected.
func NewDropdown(options []DropdownOption) Dropdown {
	return Dropdown{
		Width:   44,
		options: options,
		keys:    DefaultKeyMap(),
	}
}

// Selected returns the committed option.
func (d Dropdown) Selected() DropdownOption {
	if d.selected < 0 || d.selected >= len(d.options) {
		return DropdownOption{}
	}
	return d.options[d.selected]
}

// IsOpen reports whether the option list is visible.
func (d Dropdown) IsOpen() bool {
	return d.open
}

// Focus focuses the dropdown.
func (d *Dropdown) Focus() {
	d.focused = true
}

// Blur removes focus and closes the list without committing.
func (d *Dropdown) Blur() {
	d.focused = false
	d.open = false
	d.cursor = d.selected
}

// Update handles keys while focused.
func (d Dropdown) Update(msg tea.Msg) (Dropdown, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused || len(d.options) == 0 {
		return d, nil
	}

	switch {
	case key.Matches(keyMsg, d.keys.Select):
		if !d.open {
			d.open = true
			d.cursor = d.selected
			return d, nil
		}
		d.open = false
		if d.cursor == d.selected {
			return d, nil
		}
		d.selected = d.cursor
		value := d.options[d.selected].Value
		return d, func() tea.Msg { return DropdownChangedMsg{Value: value} }

	case key.Matches(keyMsg, d.keys.Up):
		if d.open && d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(keyMsg, d.keys.Down):
		if !d.open {
			d.open = true
			d.cursor = d.selected
		} else if d.cursor < len(d.options)-1 {
			d.cursor++
		}
	case key.Matches(keyMsg, d.keys.Close):
		d.open = false
		d.cursor = d.selected
	}
	return d, nil
}

// View renders the committed value and, when open, the option list.
func (d Dropdown) View() string {
	label := d.Selected().Label
	arrow := "▾"
	if d.open {
		arrow = "▴"
	}
	var b strings.Builder
	b.WriteString(styleFieldBox(d.focused, false).Width(d.Width).Render(label + " " + arrow))
	if !d.open {
		return b.String()
	}
	for i, opt := range d.options {
		b.WriteString("\n")
		if i == d.cursor {
			b.WriteString(styleMenuRowHighlighted().Render("▸ " + opt.Label))
		} else {
			b.WriteString(styleMenuRow().Render("  " + opt.Label))
		}
	}
	return b.String()
}
