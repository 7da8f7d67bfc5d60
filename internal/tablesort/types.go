package tablesort

// Kind is the declared value type of a column
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
)

// String returns the config/display name of the kind
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name into a Kind
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "date":
		return KindDate, true
	case "number":
		return KindNumber, true
	case "text":
		return KindText, true
	}
	return KindText, false
}

// Column describes one table column
type Column struct {
	ID       string
	Title    string
	Kind     Kind
	Sortable bool
}

// Cell is a single table cell. Text is what the user sees; Value is the
// machine-readable attribute (timestamp, numeric string) used for date and
// number columns. An empty Value falls back to Text.
type Cell struct {
	Text  string
	Value string
}

// Row is one record in the table. Cells are in column order.
type Row struct {
	Cells   []Cell
	Payload any
}

// Direction is the sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// HeaderState is the state of a single column header control
type HeaderState int

const (
	Unsorted HeaderState = iota
	AscendingActive
	DescendingActive
)

// SortState holds the active column and the direction that was last applied.
// An empty Column means no sort has been applied yet.
type SortState struct {
	Column    string
	Direction Direction
}

// IsSorted reports whether any column is active
func (s SortState) IsSorted() bool {
	return s.Column != ""
}

// HeaderState returns the header state of the given column
func (s SortState) HeaderState(columnID string) HeaderState {
	if s.Column == "" || s.Column != columnID {
		return Unsorted
	}
	if s.Direction == Descending {
		return DescendingActive
	}
	return AscendingActive
}

// Glyphs are the indicator glyphs shown next to the active column header
type Glyphs struct {
	Ascending  string
	Descending string
}

// DefaultGlyphs returns the default indicator glyphs
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Ascending:  "▼",
		Descending: "▲",
	}
}
