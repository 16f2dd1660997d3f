// Package species implements the species-name matcher behind the filter
// autocomplete: normalisation, ranking, validity and label highlighting.
package species

import "strings"

// strip removes every byte outside [A-Za-z0-9 ]. Case is left alone.
func strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func keep(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == ' ':
		return true
	}
	return false
}

// Normalize returns s with everything outside [A-Za-z0-9 ] removed,
// upper-cased. The result contains only ASCII.
func Normalize(s string) string {
	return strings.ToUpper(strip(s))
}
