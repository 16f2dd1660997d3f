package ui

// SpeciesKeyUpMsg is sent after every keystroke that reached the species
// text field.
type SpeciesKeyUpMsg struct{}

// SpeciesSubmitMsg is sent when Enter is pressed with no menu item to pick.
type SpeciesSubmitMsg struct{}

// SpeciesSelectedMsg is sent when a menu item is chosen.
type SpeciesSelectedMsg struct {
	Value string
}

// DropdownChangedMsg is sent when the committed dropdown option changes.
type DropdownChangedMsg struct {
	Value string
}

// themeSavedMsg reports the outcome of persisting a theme switch.
type themeSavedMsg struct {
	name string
	err  error
}
