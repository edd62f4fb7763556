package view

import "slices"

// Selection holds at most one module name drawn from the visible list.
//
// When the visible list changes and the selected name drops out, the
// selection is cleared. It is never restored automatically, even if a later
// query makes the module visible again.
type Selection struct {
	name string
}

// Name returns the selected module and whether anything is selected
func (s Selection) Name() (string, bool) {
	return s.name, s.name != ""
}

// Select picks name if it is visible. It reports whether the pick was taken.
func (s *Selection) Select(name string, visible []string) bool {
	if name == "" || !slices.Contains(visible, name) {
		return false
	}
	s.name = name
	return true
}

// Clear drops the selection
func (s *Selection) Clear() {
	s.name = ""
}

// Clamp clears the selection if it is no longer visible.
// It reports whether the selection was dropped.
func (s *Selection) Clamp(visible []string) bool {
	if s.name == "" || slices.Contains(visible, s.name) {
		return false
	}
	s.name = ""
	return true
}
