package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// staticCursor stops textinput from scheduling blink ticks so commands
// can be executed synchronously.
func staticCursor(in *SpeciesInput) {
	in.textInput.Cursor.SetMode(cursor.CursorStatic)
}

// collectMsgs runs cmd and any batched children, returning their messages.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

type fakeNav struct {
	urls []string
}

func (n *fakeNav) Redirect(url string) { n.urls = append(n.urls, url) }
func (n *fakeNav) Done() bool          { return len(n.urls) > 0 }
