package tablesort

// Transition returns the state after the header of columnID is activated.
// Activating the active column flips the direction; activating any other
// column makes it active in ascending order.
func Transition(state SortState, columnID string) SortState {
	if state.Column == columnID && columnID != "" {
		if state.Direction == Ascending {
			return SortState{Column: columnID, Direction: Descending}
		}
		return SortState{Column: columnID, Direction: Ascending}
	}
	return SortState{Column: columnID, Direction: Ascending}
}

// Indicator returns the glyph for the column header. Only the active column
// has one, showing the direction that was just applied.
func Indicator(state SortState, columnID string, glyphs Glyphs) string {
	switch state.HeaderState(columnID) {
	case AscendingActive:
		return glyphs.Ascending
	case DescendingActive:
		return glyphs.Descending
	default:
		return ""
	}
}
