// Package widget holds the DOM-free interaction layer of the species filter:
// the filter dropdown and the autocomplete state machine. Concrete controls
// (see internal/ui) plug in through HostControl and Redirector.
package widget

// HostControl is the capability set the autocomplete needs from a generic
// autocomplete control. The control owns rendering, keyboard navigation and
// the popup; the widget only supplies the two callbacks.
type HostControl interface {
	// SetSource installs the function that turns a query into result values.
	SetSource(func(query string) []string)
	// SetRenderItem installs the function that decorates a result label.
	SetRenderItem(func(label string) string)
	// TriggerSearch runs a search for the current value.
	TriggerSearch()
	Value() string
	SetValue(v string)
}

// Redirector performs a full navigation to url.
type Redirector interface {
	Redirect(url string)
}

// RedirectFunc adapts a function to Redirector.
type RedirectFunc func(url string)

// Redirect calls f(url).
func (f RedirectFunc) Redirect(url string) { f(url) }

// FilterParam is the query parameter carrying the selected species.
const FilterParam = "filter_species"

// FilterURL appends the species filter to location. The value is not
// encoded; callers that need encoding do it before calling.
func FilterURL(location, value string) string {
	return location + "&" + FilterParam + "=" + value
}
