package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"speciesfilter/internal/ui/theme"
)

// exitResult is what the program leaves behind once the TUI closes.
type exitResult interface {
	Done() bool
	URL() string
	CopyErr() error
}

// printExitSummary reports the chosen filter URL after the alt screen
// is gone. Nothing is printed when the user quit without choosing.
func printExitSummary(w io.Writer, res exitResult) {
	if !res.Done() {
		return
	}
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current().Primary())
	dimStyle := lipgloss.NewStyle().Foreground(theme.Current().TextMuted())

	fmt.Fprintln(w, labelStyle.Render("Open:")+" "+res.URL())
	if err := res.CopyErr(); err != nil {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("(clipboard copy failed: %v)", err)))
	}
}
