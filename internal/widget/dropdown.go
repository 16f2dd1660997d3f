package widget

import "speciesfilter/internal/debug"

// FilterDropdown redirects to the filtered page when its selection changes.
type FilterDropdown struct {
	location func() string
	nav      Redirector
}

// NewFilterDropdown builds a dropdown that reads the current location from
// location on every change.
func NewFilterDropdown(location func() string, nav Redirector) *FilterDropdown {
	return &FilterDropdown{location: location, nav: nav}
}

// OnChange handles a change of the selected option. Empty selections are
// ignored.
func (d *FilterDropdown) OnChange(selected string) {
	if selected == "" || d.nav == nil {
		return
	}
	loc := ""
	if d.location != nil {
		loc = d.location()
	}
	url := FilterURL(loc, selected)
	debug.Event("dropdown", "change", "value", selected, "url", url)
	d.nav.Redirect(url)
}
