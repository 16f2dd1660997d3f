// Package navigate is the terminal stand-in for a browser redirect: it
// records the target URL so the program can stop and hand it back, and can
// copy it to the system clipboard.
package navigate

import (
	"github.com/atotto/clipboard"

	"speciesfilter/internal/debug"
	appErrors "speciesfilter/internal/errors"
)

// Navigator records the first redirect it receives.
type Navigator struct {
	copyToClipboard bool
	writeClipboard  func(string) error

	url       string
	done      bool
	copyError error
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClipboard copies every redirect target to the clipboard.
func WithClipboard(enabled bool) Option {
	return func(n *Navigator) {
		n.copyToClipboard = enabled
	}
}

// WithClipboardWriter replaces the clipboard writer (tests, headless hosts).
func WithClipboardWriter(fn func(string) error) Option {
	return func(n *Navigator) {
		n.writeClipboard = fn
	}
}

// New builds a Navigator.
func New(opts ...Option) *Navigator {
	n := &Navigator{writeClipboard: clipboard.WriteAll}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Redirect records url. Only the first redirect counts: a real navigation
// leaves the page, so later events never happen.
func (n *Navigator) Redirect(url string) {
	if n.done {
		debug.Logf("navigate: ignoring redirect to %s after %s", url, n.url)
		return
	}
	n.url = url
	n.done = true
	debug.Event("navigate", "redirect", "url", url)
	if n.copyToClipboard && n.writeClipboard != nil {
		if err := n.writeClipboard(url); err != nil {
			n.copyError = appErrors.New(appErrors.CodeNavigationFailed, "copy url to clipboard: "+err.Error(), err)
			debug.Logf("navigate: clipboard failed: %v", err)
		}
	}
}

// Done reports whether a redirect happened.
func (n *Navigator) Done() bool { return n.done }

// URL returns the redirect target, or "" before any redirect.
func (n *Navigator) URL() string { return n.url }

// CopyErr returns the clipboard failure of the redirect, if any.
func (n *Navigator) CopyErr() error { return n.copyError }
