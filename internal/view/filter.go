package view

import "strings"

// Filter returns the modules whose names contain query, ignoring case.
// Discovery order is preserved and an empty query matches everything.
// The result never aliases modules.
func Filter(modules []string, query string) []string {
	visible := make([]string, 0, len(modules))
	if query == "" {
		return append(visible, modules...)
	}

	needle := strings.ToLower(query)
	for _, name := range modules {
		if strings.Contains(strings.ToLower(name), needle) {
			visible = append(visible, name)
		}
	}
	return visible
}
