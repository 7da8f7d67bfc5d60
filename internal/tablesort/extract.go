package tablesort

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayouts are tried in order when parsing date cells
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// key is an extracted sort key. Invalid keys sort before every valid key
// and tie with each other.
type key struct {
	valid bool
	num   float64
	at    time.Time
	text  string
}

// extractor turns a cell into a sort key
type extractor func(cell Cell, ok bool) key

// comparator orders two keys of the same kind
type comparator func(a, b key) int

// machineValue prefers the machine-readable attribute over display text
func machineValue(cell Cell) string {
	if v := strings.TrimSpace(cell.Value); v != "" {
		return v
	}
	return strings.TrimSpace(cell.Text)
}

func dateExtractor(layouts []string) extractor {
	return func(cell Cell, ok bool) key {
		if !ok {
			return key{}
		}
		t, parsed := ParseTime(machineValue(cell), layouts)
		if !parsed {
			return key{}
		}
		return key{valid: true, at: t}
	}
}

func numberExtractor(cell Cell, ok bool) key {
	if !ok {
		return key{}
	}
	// Out of range values parse as ±Inf alongside ErrRange
	f, err := strconv.ParseFloat(machineValue(cell), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) || math.IsNaN(f) {
		return key{}
	}
	return key{valid: true, num: f}
}

func textExtractor(cell Cell, ok bool) key {
	if !ok {
		return key{}
	}
	return key{valid: true, text: strings.TrimSpace(cell.Text)}
}

// ParseTime parses s with the first matching layout. Layouts without a zone
// are read as UTC.
func ParseTime(s string, layouts []string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareValidity orders invalid keys first. done is false when both are valid.
func compareValidity(a, b key) (c int, done bool) {
	switch {
	case !a.valid && !b.valid:
		return 0, true
	case !a.valid:
		return -1, true
	case !b.valid:
		return 1, true
	}
	return 0, false
}

func compareDates(a, b key) int {
	if c, done := compareValidity(a, b); done {
		return c
	}
	return a.at.Compare(b.at)
}

func compareNumbers(a, b key) int {
	if c, done := compareValidity(a, b); done {
		return c
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}

func compareTexts(a, b key) int {
	if c, done := compareValidity(a, b); done {
		return c
	}
	return strings.Compare(a.text, b.text)
}

// strategyFor resolves the extraction and comparison functions for a kind
func strategyFor(kind Kind, layouts []string) (extractor, comparator) {
	switch kind {
	case KindDate:
		return dateExtractor(layouts), compareDates
	case KindNumber:
		return numberExtractor, compareNumbers
	default:
		return textExtractor, compareTexts
	}
}
