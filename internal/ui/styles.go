package ui

import (
	"github.com/charmbracelet/lipgloss"

	"speciesfilter/internal/ui/theme"
)

// Styles are built on demand so theme switches apply on the next render.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextEmphasized()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func stylePaneTitle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if focused {
		return s.Foreground(theme.Current().Primary())
	}
	return s.Foreground(theme.Current().TextMuted())
}

func styleFieldBox(focused, invalid bool) lipgloss.Style {
	border := theme.Current().BorderDim()
	switch {
	case invalid:
		border = theme.Current().Error()
	case focused:
		border = theme.Current().BorderFocused()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// styleInactive renders the placeholder title.
func styleInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}

func styleInvalidText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error())
}

func styleMenuRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleMenuRowHighlighted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextEmphasized()).
		Background(theme.Current().BackgroundSecondary()).
		Bold(true)
}

// styleEmphasis marks query occurrences inside a menu label.
func styleEmphasis() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true).
		Underline(true)
}

func styleHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success()).Bold(true)
}
