// Package theme provides the semantic colours of the species filter UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colours the widgets draw with.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Primary() lipgloss.AdaptiveColor // Headers, focused pane title
	Accent() lipgloss.AdaptiveColor  // Emphasised query matches

	Error() lipgloss.AdaptiveColor   // Invalid query
	Success() lipgloss.AdaptiveColor // Navigation result

	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor // Placeholder title, hints
	TextEmphasized() lipgloss.AdaptiveColor

	BackgroundSecondary() lipgloss.AdaptiveColor // Highlighted menu row

	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}

// Palette is a Theme backed by plain colour values.
type Palette struct {
	PrimaryColor             lipgloss.AdaptiveColor
	AccentColor              lipgloss.AdaptiveColor
	ErrorColor               lipgloss.AdaptiveColor
	SuccessColor             lipgloss.AdaptiveColor
	TextColor                lipgloss.AdaptiveColor
	TextMutedColor           lipgloss.AdaptiveColor
	TextEmphasizedColor      lipgloss.AdaptiveColor
	BackgroundSecondaryColor lipgloss.AdaptiveColor
	BorderNormalColor        lipgloss.AdaptiveColor
	BorderFocusedColor       lipgloss.AdaptiveColor
	BorderDimColor           lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor        { return p.PrimaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor         { return p.AccentColor }
func (p Palette) Error() lipgloss.AdaptiveColor          { return p.ErrorColor }
func (p Palette) Success() lipgloss.AdaptiveColor        { return p.SuccessColor }
func (p Palette) Text() lipgloss.AdaptiveColor           { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor      { return p.TextMutedColor }
func (p Palette) TextEmphasized() lipgloss.AdaptiveColor { return p.TextEmphasizedColor }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor {
	return p.BackgroundSecondaryColor
}
func (p Palette) BorderNormal() lipgloss.AdaptiveColor  { return p.BorderNormalColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor { return p.BorderFocusedColor }
func (p Palette) BorderDim() lipgloss.AdaptiveColor     { return p.BorderDimColor }
