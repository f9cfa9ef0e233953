package ui

// loadingPlaceholder is what a list-backed panel shows instead of its table
// when the backing list is empty. The loading flag only picks the wording;
// whether the placeholder appears at all is decided by list emptiness alone.
func (m *Model) loadingPlaceholder() string {
	if m.isLoading {
		return styleMuted(m.lightTheme).Render(m.T("overview.loading"))
	}
	return styleMuted(m.lightTheme).Render(m.T("overview.no_data"))
}

// loadingIndicator is the transient suffix appended to the logo version line
// while a refresh is in flight.
func loadingIndicator(loading bool) string {
	if loading {
		return "..."
	}
	return ""
}
