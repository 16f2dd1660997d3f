package theme

import "github.com/charmbracelet/lipgloss"

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// Registered first, so it is the default.
var tokyoNight = Palette{
	PrimaryColor:             c("#82aaff", "#2e7de9"),
	AccentColor:              c("#ff966c", "#b15c00"),
	ErrorColor:               c("#ff757f", "#f52a65"),
	SuccessColor:             c("#c3e88d", "#587539"),
	TextColor:                c("#c8d3f5", "#3760bf"),
	TextMutedColor:           c("#636da6", "#848cb5"),
	TextEmphasizedColor:      c("#ffc777", "#8c6c3e"),
	BackgroundSecondaryColor: c("#2f334d", "#c8c9ce"),
	BorderNormalColor:        c("#3b4261", "#a8aecb"),
	BorderFocusedColor:       c("#82aaff", "#2e7de9"),
	BorderDimColor:           c("#292e42", "#c8c9ce"),
}

var gruvbox = Palette{
	PrimaryColor:             c("#83a598", "#076678"),
	AccentColor:              c("#fabd2f", "#b57614"),
	ErrorColor:               c("#fb4934", "#9d0006"),
	SuccessColor:             c("#b8bb26", "#79740e"),
	TextColor:                c("#ebdbb2", "#3c3836"),
	TextMutedColor:           c("#a89984", "#7c6f64"),
	TextEmphasizedColor:      c("#fabd2f", "#b57614"),
	BackgroundSecondaryColor: c("#504945", "#ebdbb2"),
	BorderNormalColor:        c("#504945", "#bdae93"),
	BorderFocusedColor:       c("#83a598", "#076678"),
	BorderDimColor:           c("#3c3836", "#d5c4a1"),
}

var dracula = Palette{
	PrimaryColor:             c("#bd93f9", "#7e57c2"),
	AccentColor:              c("#f1fa8c", "#f9a825"),
	ErrorColor:               c("#ff5555", "#d32f2f"),
	SuccessColor:             c("#50fa7b", "#388e3c"),
	TextColor:                c("#f8f8f2", "#212121"),
	TextMutedColor:           c("#6272a4", "#757575"),
	TextEmphasizedColor:      c("#f8f8f2", "#000000"),
	BackgroundSecondaryColor: c("#44475a", "#e0e0e0"),
	BorderNormalColor:        c("#6272a4", "#bdbdbd"),
	BorderFocusedColor:       c("#bd93f9", "#7e57c2"),
	BorderDimColor:           c("#44475a", "#e0e0e0"),
}

var nord = Palette{
	PrimaryColor:             c("#88C0D0", "#5E81AC"),
	AccentColor:              c("#8FBCBB", "#8FBCBB"),
	ErrorColor:               c("#BF616A", "#BF616A"),
	SuccessColor:             c("#A3BE8C", "#A3BE8C"),
	TextColor:                c("#ECEFF4", "#2E3440"),
	TextMutedColor:           c("#8B95A7", "#3B4252"),
	TextEmphasizedColor:      c("#ECEFF4", "#000000"),
	BackgroundSecondaryColor: c("#3B4252", "#E5E9F0"),
	BorderNormalColor:        c("#434C5E", "#4C566A"),
	BorderFocusedColor:       c("#4C566A", "#434C5E"),
	BorderDimColor:           c("#434C5E", "#4C566A"),
}

func init() {
	RegisterTheme("tokyonight", tokyoNight)
	RegisterTheme("gruvbox", gruvbox)
	RegisterTheme("dracula", dracula)
	RegisterTheme("nord", nord)
}
