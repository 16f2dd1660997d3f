package species

import (
	"reflect"
	"testing"
)

func TestHighlight(t *testing.T) {
	cases := []struct {
		name  string
		label string
		term  string
		want  string
	}{
		{"Prefix", "Mouse", "mo", "<strong>Mo</strong>use"},
		{"EveryOccurrence", "Rattus rattus", "rat", "<strong>Rat</strong>tus <strong>rat</strong>tus"},
		{"KeepsLabelCase", "HOMO sapiens", "homo", "<strong>HOMO</strong> sapiens"},
		{"NoOccurrence", "Mouse", "rat", "Mouse"},
		{"EmptyTerm", "Mouse", "", "Mouse"},
		{"TermLongerThanLabel", "Rat", "Rattus", "Rat"},
		{"NonOverlapping", "aaaa", "aa", "<strong>aa</strong><strong>aa</strong>"},
		{"VisibleTextInsideTag", "<span>Rat</span>", "Rat", "<span><strong>Rat</strong></span>"},
		{"AttributeValueSkipped", `<span class="rat">Rat</span>`, "rat", `<span class="rat"><strong>Rat</strong></span>`},
		{"TagNameSkipped", "<rat>Rat</rat>", "rat", "<rat><strong>Rat</strong></rat>"},
		{"EntitySkipped", "Rat &amp; Mouse", "amp", "Rat &amp; Mouse"},
		{"TextBeforeEntity", "R&amp;D", "r", "<strong>R</strong>&amp;D"},
		{"TextBeforeBareSemicolon", "Rat; Mouse", "rat", "Rat; Mouse"},
		{"RawTermNotNormalised", "Homo sapiens", "Homo-sap", "Homo sapiens"},
		{"Multibyte", "Ñandú rhea", "rhea", "Ñandú <strong>rhea</strong>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Highlight(tc.label, tc.term); got != tc.want {
				t.Fatalf("Highlight(%q, %q) = %q, want %q", tc.label, tc.term, got, tc.want)
			}
		})
	}
}

func TestSpans(t *testing.T) {
	t.Run("Emphasis", func(t *testing.T) {
		got := Spans("<strong>Mo</strong>use")
		want := []Span{{Text: "Mo", Emphasized: true}, {Text: "use"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("OtherMarkupIsPlain", func(t *testing.T) {
		got := Spans("<span><strong>Rat</strong></span>")
		want := []Span{{Text: "<span>"}, {Text: "Rat", Emphasized: true}, {Text: "</span>"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("UnclosedMarker", func(t *testing.T) {
		got := Spans("a<strong>b")
		want := []Span{{Text: "a<strong>b"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := Spans(""); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}
