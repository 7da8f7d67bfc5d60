// Package format renders parking history values for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"parkview/internal/tablesort"
)

// NotAvailable is shown for missing values
const NotAvailable = "N/A"

// DateTime renders a timestamp as "2006-01-02 15:04". Unparseable input is
// returned unchanged so the user still sees what was exported.
func DateTime(s string, layouts []string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	t, ok := tablesort.ParseTime(s, layouts)
	if !ok {
		return s
	}
	return t.Format("2006-01-02 15:04")
}

// Duration renders a number of minutes as hours and minutes
func Duration(minutes string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(minutes), 64)
	if err != nil || math.IsNaN(f) || f == 0 {
		if strings.TrimSpace(minutes) != "" && err != nil {
			return minutes
		}
		return NotAvailable
	}

	total := int(f)
	hours := total / 60
	mins := total % 60

	switch {
	case hours == 0:
		return plural(mins, "minute")
	case mins == 0:
		return plural(hours, "hour")
	default:
		return plural(hours, "hour") + ", " + plural(mins, "minute")
	}
}

// Currency renders an amount with two decimals and thousands separators
func Currency(amount string, symbol string) string {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return NotAvailable
	}
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return amount
	}
	if f < 0 {
		return "-" + symbol + humanize.FormatFloat("#,###.##", -f)
	}
	return symbol + humanize.FormatFloat("#,###.##", f)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
