package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"speciesfilter/internal/species"
)

// Status exposes the style flags the input renders with.
type Status interface {
	Inactive() bool
	Invalid() bool
}

// SpeciesInput is a terminal autocomplete control: a text field plus a
// popup menu of results. It knows nothing about species; the matcher is
// plugged in through SetSource and SetRenderItem (see widget.HostControl).
type SpeciesInput struct {
	Width      int // Display width
	MaxVisible int // Max rows in the menu

	textInput      textinput.Model
	source         func(query string) []string
	renderItem     func(label string) string
	status         Status
	results        []string
	menuOpen       bool
	highlightIndex int
	scrollOffset   int
	focused        bool
}

// NewSpeciesInput creates an unfocused input with a closed menu.
func NewSpeciesInput() SpeciesInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	c := SpeciesInput{
		Width:      44,
		MaxVisible: 8,
		textInput:  ti,
	}
	c.textInput.Width = c.Width - 4
	return c
}

// WithWidth sets the display width.
func (c SpeciesInput) WithWidth(w int) SpeciesInput {
	c.Width = w
	c.textInput.Width = w - 4
	return c
}

// WithMaxVisible sets the maximum visible menu rows.
func (c SpeciesInput) WithMaxVisible(n int) SpeciesInput {
	if n > 0 {
		c.MaxVisible = n
	}
	return c
}

// SetSource installs the result source.
func (c *SpeciesInput) SetSource(fn func(query string) []string) {
	c.source = fn
}

// SetRenderItem installs the label decorator.
func (c *SpeciesInput) SetRenderItem(fn func(label string) string) {
	c.renderItem = fn
}

// SetStatus installs the provider of the inactive/invalid style flags.
func (c *SpeciesInput) SetStatus(s Status) {
	c.status = s
}

// TriggerSearch searches for the current value. Values shorter than
// species.MinQueryLength close the menu instead.
func (c *SpeciesInput) TriggerSearch() {
	value := c.textInput.Value()
	if species.QueryLength(value) < species.MinQueryLength || c.source == nil {
		c.closeMenu()
		return
	}
	c.results = c.source(value)
	c.menuOpen = len(c.results) > 0
	c.highlightIndex = 0
	c.scrollOffset = 0
}

// Value returns the text in the field.
func (c SpeciesInput) Value() string {
	return c.textInput.Value()
}

// SetValue replaces the text in the field.
func (c *SpeciesInput) SetValue(v string) {
	c.textInput.SetValue(v)
	c.textInput.CursorEnd()
}

// Focus focuses the field and returns the cursor blink command.
func (c *SpeciesInput) Focus() tea.Cmd {
	c.focused = true
	return c.textInput.Focus()
}

// Blur removes focus and closes the menu.
func (c *SpeciesInput) Blur() {
	c.focused = false
	c.closeMenu()
	c.textInput.Blur()
}

// Focused returns whether the field is focused.
func (c SpeciesInput) Focused() bool {
	return c.focused
}

// IsMenuOpen returns whether the result menu is visible.
func (c SpeciesInput) IsMenuOpen() bool {
	return c.menuOpen
}

// Results returns the current menu entries.
func (c SpeciesInput) Results() []string {
	return c.results
}

// HighlightIndex returns the highlighted menu row.
func (c SpeciesInput) HighlightIndex() int {
	return c.highlightIndex
}

// Init implements tea.Model.
func (c SpeciesInput) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c SpeciesInput) Update(msg tea.Msg) (SpeciesInput, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.textInput, cmd = c.textInput.Update(msg)
		return c, cmd
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if c.menuOpen && c.highlightIndex > 0 {
			c.highlightIndex--
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyDown:
		if !c.menuOpen {
			c.TriggerSearch()
			return c, nil
		}
		if c.highlightIndex < len(c.results)-1 {
			c.highlightIndex++
			c.adjustScrollOffset()
		}
		return c, nil

	case tea.KeyEnter:
		if c.menuOpen && c.highlightIndex >= 0 && c.highlightIndex < len(c.results) {
			selected := c.results[c.highlightIndex]
			c.SetValue(selected)
			c.closeMenu()
			return c, func() tea.Msg {
				return SpeciesSelectedMsg{Value: selected}
			}
		}
		return c, func() tea.Msg { return SpeciesSubmitMsg{} }

	case tea.KeyEsc:
		c.closeMenu()
		return c, nil
	}

	oldValue := c.textInput.Value()
	var cmd tea.Cmd
	c.textInput, cmd = c.textInput.Update(msg)
	if c.textInput.Value() != oldValue {
		c.TriggerSearch()
	}
	return c, tea.Batch(cmd, func() tea.Msg { return SpeciesKeyUpMsg{} })
}

func (c *SpeciesInput) closeMenu() {
	c.menuOpen = false
	c.results = nil
	c.highlightIndex = 0
	c.scrollOffset = 0
}

// adjustScrollOffset keeps the highlighted row inside the visible window.
func (c *SpeciesInput) adjustScrollOffset() {
	if c.highlightIndex < c.scrollOffset {
		c.scrollOffset = c.highlightIndex
	}
	if c.highlightIndex >= c.scrollOffset+c.MaxVisible {
		c.scrollOffset = c.highlightIndex - c.MaxVisible + 1
	}
	maxOffset := max(len(c.results)-c.MaxVisible, 0)
	c.scrollOffset = min(max(c.scrollOffset, 0), maxOffset)
}

// View implements tea.Model.
func (c SpeciesInput) View() string {
	inactive, invalid := false, false
	if c.status != nil {
		inactive, invalid = c.status.Inactive(), c.status.Invalid()
	}

	var field string
	switch {
	case inactive:
		field = styleInactive().Render(c.textInput.Value())
	case invalid && !c.focused:
		field = styleInvalidText().Render(c.textInput.Value())
	default:
		field = c.textInput.View()
	}

	var b strings.Builder
	b.WriteString(styleFieldBox(c.focused, invalid).Width(c.Width).Render(field))

	if !c.menuOpen {
		return b.String()
	}

	if c.scrollOffset > 0 {
		b.WriteString("\n")
		b.WriteString(styleHint().Render("  ▲ more above"))
	}
	end := min(c.scrollOffset+c.MaxVisible, len(c.results))
	for i := c.scrollOffset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(c.renderRow(c.results[i], i == c.highlightIndex))
	}
	if end < len(c.results) {
		b.WriteString("\n")
		b.WriteString(styleHint().Render("  ▼ more below"))
	}
	return b.String()
}

func (c SpeciesInput) renderRow(label string, highlighted bool) string {
	decorated := label
	if c.renderItem != nil {
		decorated = c.renderItem(label)
	}
	base := styleMenuRow()
	prefix := "  "
	if highlighted {
		base = styleMenuRowHighlighted()
		prefix = "▸ "
	}
	var row strings.Builder
	row.WriteString(base.Render(prefix))
	for _, span := range species.Spans(decorated) {
		if span.Emphasized {
			row.WriteString(styleEmphasis().Inherit(base).Render(span.Text))
		} else {
			row.WriteString(base.Render(span.Text))
		}
	}
	return ansi.Truncate(row.String(), c.Width, "…")
}
