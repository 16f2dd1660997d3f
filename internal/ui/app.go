package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"speciesfilter/internal/debug"
	"speciesfilter/internal/species"
	"speciesfilter/internal/ui/theme"
	"speciesfilter/internal/widget"
)

// Navigator receives filter URLs and reports whether the program should
// stop because a navigation happened.
type Navigator interface {
	widget.Redirector
	Done() bool
}

// Config describes everything the filter screen needs.
type Config struct {
	Candidates   []string
	Location     string
	Title        string
	MaxVisible   int
	Suggestions  int
	Navigator    Navigator
	PersistTheme func(name string) error
	Version      string
}

type focusTarget int

const (
	focusDropdown focusTarget = iota
	focusSpecies
)

// App is the root bubbletea model: a filter dropdown above a species
// autocomplete.
type App struct {
	input    SpeciesInput
	ac       *widget.Autocomplete
	dropdown Dropdown
	filter   *widget.FilterDropdown
	nav      Navigator
	keys     KeyMap

	focus        focusTarget
	showHelp     bool
	suggestions  int
	persistTheme func(string) error
	statusMsg    string
	version      string
	width        int
}

// SpeciesOptions builds dropdown options from the candidate list, led by
// a placeholder that selects nothing.
func SpeciesOptions(candidates []string) []DropdownOption {
	opts := make([]DropdownOption, 0, len(candidates)+1)
	opts = append(opts, DropdownOption{Label: "All species"})
	for _, c := range candidates {
		opts = append(opts, DropdownOption{Label: c, Value: c})
	}
	return opts
}

// NewApp wires the widgets to their terminal hosts.
func NewApp(cfg Config) (*App, error) {
	if cfg.Navigator == nil {
		return nil, fmt.Errorf("navigator is required")
	}
	location := func() string { return cfg.Location }

	app := &App{
		input:        NewSpeciesInput().WithMaxVisible(cfg.MaxVisible),
		dropdown:     NewDropdown(SpeciesOptions(cfg.Candidates)),
		nav:          cfg.Navigator,
		keys:         DefaultKeyMap(),
		suggestions:  cfg.Suggestions,
		persistTheme: cfg.PersistTheme,
		version:      cfg.Version,
	}
	app.ac = widget.NewAutocomplete(&app.input, cfg.Candidates, cfg.Title, location, cfg.Navigator)
	app.input.SetStatus(app.ac)
	app.filter = widget.NewFilterDropdown(location, cfg.Navigator)
	app.dropdown.Focus()
	return app, nil
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := min(max(msg.Width-4, 20), 60)
		m.input = m.input.WithWidth(w)
		m.dropdown.Width = w
		return m, nil

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case SpeciesKeyUpMsg:
		m.ac.KeyUp()
	case SpeciesSubmitMsg:
		m.ac.Submit()
	case SpeciesSelectedMsg:
		m.ac.Select(msg.Value)
	case DropdownChangedMsg:
		m.filter.OnChange(msg.Value)

	case themeSavedMsg:
		if msg.err != nil {
			debug.Logf("theme: save %s failed: %v", msg.name, msg.err)
			m.statusMsg = "Theme " + msg.name + " (not saved)"
		} else {
			m.statusMsg = "Theme " + msg.name
		}
		return m, nil

	default:
		if m.focus == focusSpecies {
			m.input, cmd = m.input.Update(msg)
		}
	}

	if m.nav.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		return m.toggleFocus()
	}

	var cmd tea.Cmd
	if m.focus == focusSpecies {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.dropdown, cmd = m.dropdown.Update(msg)
	}
	return cmd
}

// toggleFocus moves focus between the two fields, firing the
// autocomplete's focus and blur transitions.
func (m *App) toggleFocus() tea.Cmd {
	if m.focus == focusSpecies {
		m.input.Blur()
		m.ac.Blur()
		m.focus = focusDropdown
		m.dropdown.Focus()
		return nil
	}
	m.dropdown.Blur()
	m.focus = focusSpecies
	cmd := m.input.Focus()
	m.ac.Focus()
	return cmd
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	m.statusMsg = "Theme " + name
	if m.persistTheme == nil {
		return nil
	}
	persist := m.persistTheme
	return func() tea.Msg {
		return themeSavedMsg{name: name, err: persist(name)}
	}
}

// Autocomplete exposes the species widget.
func (m *App) Autocomplete() *widget.Autocomplete {
	return m.ac
}

// Input exposes the species host control.
func (m *App) Input() SpeciesInput {
	return m.input
}

// DropdownView exposes the filter dropdown.
func (m *App) DropdownView() Dropdown {
	return m.dropdown
}

// View implements tea.Model.
func (m *App) View() string {
	header := "Species filter"
	if m.version != "" {
		header += " " + m.version
	}

	sections := []string{
		styleAppHeader().Render(header),
		"",
		stylePaneTitle(m.focus == focusDropdown).Render("Filter"),
		m.dropdown.View(),
		"",
		stylePaneTitle(m.focus == focusSpecies).Render("Species"),
		m.input.View(),
	}
	if hint := m.invalidHint(); hint != "" {
		sections = append(sections, hint)
	}
	if m.statusMsg != "" {
		sections = append(sections, styleSuccess().Render(m.statusMsg))
	}
	if m.showHelp {
		sections = append(sections, "", renderHelp(m.keys, max(m.width, 40)))
	} else {
		sections = append(sections, "", styleHint().Render(m.keys.Help.Help().Key+" help • "+m.keys.NextField.Help().Key+" switch field"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// invalidHint explains an invalid query and offers near misses.
func (m *App) invalidHint() string {
	if !m.ac.Invalid() {
		return ""
	}
	line := "No species matches " + fmt.Sprintf("%q", m.input.Value())
	if near := species.Suggest(m.ac.Candidates(), m.input.Value(), m.suggestions); len(near) > 0 {
		line += ". Did you mean " + strings.Join(near, ", ") + "?"
	}
	width := m.width - 2
	if width <= 0 {
		width = 60
	}
	return styleInvalidText().Render(wordwrap.String(line, width))
}
