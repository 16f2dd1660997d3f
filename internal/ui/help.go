package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const helpIntro = "Type at least **three letters** of a species name. Matches that " +
	"*start* with your text are listed first. Choosing a species or a filter " +
	"option opens the filtered results page."

// helpRows lists the bindings in display order. Text comes from
// binding.Help() so the key map stays the single source of truth.
func helpRows(keys KeyMap) [][]string {
	rows := [][]string{}
	for _, b := range []struct {
		key, desc string
	}{
		{keys.NextField.Help().Key, keys.NextField.Help().Desc},
		{keys.PrevField.Help().Key, keys.PrevField.Help().Desc},
		{keys.Up.Help().Key, keys.Up.Help().Desc},
		{keys.Select.Help().Key, keys.Select.Help().Desc},
		{keys.Close.Help().Key, keys.Close.Help().Desc},
		{keys.Theme.Help().Key, keys.Theme.Help().Desc},
		{keys.Help.Help().Key, keys.Help.Help().Desc},
		{keys.Quit.Help().Key, keys.Quit.Help().Desc},
	} {
		rows = append(rows, []string{b.key, b.desc})
	}
	return rows
}

// markdownStyle picks a glamour style matching the active colour profile.
// Without colour support the notty style keeps escape codes out.
func markdownStyle() string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	return "dark"
}

// renderMarkdown renders input with glamour, falling back to plain word
// wrapping if the renderer cannot be built.
func renderMarkdown(input string, width int) string {
	fallback := func(s string) string {
		return wordwrap.String(s, width)
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback(input)
	}
	out, err := renderer.Render(input)
	if err != nil {
		return fallback(input)
	}
	return strings.TrimSpace(out)
}

// renderHelp builds the help panel for the given width.
func renderHelp(keys KeyMap, width int) string {
	contentWidth := max(width-4, 20)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return stylePaneTitle(true).PaddingRight(2)
			}
			return styleMenuRow()
		}).
		Rows(helpRows(keys)...)

	var b strings.Builder
	b.WriteString(stylePaneTitle(true).Render("KEYS"))
	b.WriteString("\n")
	b.WriteString(renderMarkdown(helpIntro, contentWidth))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}
