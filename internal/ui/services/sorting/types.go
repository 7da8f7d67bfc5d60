package sorting

import (
	"strings"

	"parkview/internal/tablesort"
)

// ParseSpec reads a sort spec such as "fee" or "-fee" (descending)
func ParseSpec(spec string) (tablesort.SortState, bool) {
	spec = strings.TrimSpace(spec)
	desc := strings.HasPrefix(spec, "-")
	spec = strings.TrimSpace(strings.TrimPrefix(spec, "-"))
	if spec == "" {
		return tablesort.SortState{}, false
	}

	state := tablesort.SortState{Column: spec, Direction: tablesort.Ascending}
	if desc {
		state.Direction = tablesort.Descending
	}
	return state, true
}

// FormatSpec is the inverse of ParseSpec
func FormatSpec(state tablesort.SortState) string {
	if !state.IsSorted() {
		return ""
	}
	if state.Direction == tablesort.Descending {
		return "-" + state.Column
	}
	return state.Column
}
