package listing

import "strings"

// EmptyNotifier fires once when a non-empty search yields zero results
// and re-arms as soon as results come back, so the user is not nagged on
// every keystroke of an empty streak.
type EmptyNotifier struct {
	Shown bool
}

// Observe reports whether the notification should fire for this
// search/result pair and updates the streak state.
func (n *EmptyNotifier) Observe(search string, resultCount int) bool {
	if resultCount > 0 {
		n.Shown = false
		return false
	}
	if strings.TrimSpace(search) == "" {
		return false
	}
	if n.Shown {
		return false
	}
	n.Shown = true
	return true
}
