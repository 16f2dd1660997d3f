package species

import (
	"strings"
	"unicode/utf8"
)

// Emphasis markers wrapped around highlighted query occurrences.
const (
	EmphasisOpen  = "<strong>"
	EmphasisClose = "</strong>"
)

// Highlight wraps every case-insensitive occurrence of the raw term in label
// with EmphasisOpen/EmphasisClose. Occurrences are found left to right and
// never overlap. An occurrence is left alone when it starts with '<', when it
// sits inside tag markup (a '>' follows before any '<'), or when the text at
// either of its ends runs to a ';' without crossing a '&' (entity guard).
//
// The guards are a heuristic, not an HTML parser: they keep plain markup
// embedded in labels intact and nothing more.
func Highlight(label, term string) string {
	if term == "" || len(term) > len(label) {
		return label
	}

	var b strings.Builder
	last := 0
	for i := 0; i+len(term) <= len(label); {
		end := i + len(term)
		if strings.EqualFold(label[i:end], term) && markable(label, i, end) {
			b.WriteString(label[last:i])
			b.WriteString(EmphasisOpen)
			b.WriteString(label[i:end])
			b.WriteString(EmphasisClose)
			last = end
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(label[i:])
		i += size
	}
	if last == 0 {
		return label
	}
	b.WriteString(label[last:])
	return b.String()
}

func markable(s string, start, end int) bool {
	if s[start] == '<' {
		return false
	}
	if entityAhead(s, start) || entityAhead(s, end) {
		return false
	}
	return !insideTag(s, end)
}

// entityAhead reports whether one or more characters other than '&' and ';'
// starting at i are followed by ';'.
func entityAhead(s string, i int) bool {
	j := i
	for j < len(s) && s[j] != '&' && s[j] != ';' {
		j++
	}
	return j > i && j < len(s) && s[j] == ';'
}

// insideTag reports whether a '>' is reached from i before any '<'.
func insideTag(s string, i int) bool {
	j := strings.IndexAny(s[i:], "<>")
	return j >= 0 && s[i+j] == '>'
}

// Span is a run of label text, emphasised or not.
type Span struct {
	Text       string
	Emphasized bool
}

// Spans splits a highlighted label into plain and emphasised runs. Markup
// other than the emphasis markers is returned verbatim as plain text.
func Spans(highlighted string) []Span {
	var spans []Span
	rest := highlighted
	for rest != "" {
		open := strings.Index(rest, EmphasisOpen)
		if open < 0 {
			spans = append(spans, Span{Text: rest})
			break
		}
		body := rest[open+len(EmphasisOpen):]
		closeIdx := strings.Index(body, EmphasisClose)
		if closeIdx < 0 {
			spans = append(spans, Span{Text: rest})
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		spans = append(spans, Span{Text: body[:closeIdx], Emphasized: true})
		rest = body[closeIdx+len(EmphasisClose):]
	}
	return spans
}
