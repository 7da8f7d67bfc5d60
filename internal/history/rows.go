package history

import (
	"parkview/internal/domain"
	"parkview/internal/format"
	"parkview/internal/tablesort"
)

// Column identifiers of the history table
const (
	ColumnDate     = "date"
	ColumnPlate    = "plate"
	ColumnSlot     = "slot"
	ColumnType     = "type"
	ColumnDuration = "duration"
	ColumnFee      = "fee"
	ColumnStatus   = "status"
)

// Columns returns the columns of the history table in display order
func Columns() []tablesort.Column {
	return []tablesort.Column{
		{ID: ColumnDate, Title: "Date", Kind: tablesort.KindDate, Sortable: true},
		{ID: ColumnPlate, Title: "Plate", Kind: tablesort.KindText, Sortable: true},
		{ID: ColumnSlot, Title: "Slot", Kind: tablesort.KindText, Sortable: true},
		{ID: ColumnType, Title: "Type", Kind: tablesort.KindText, Sortable: true},
		{ID: ColumnDuration, Title: "Duration", Kind: tablesort.KindNumber, Sortable: true},
		{ID: ColumnFee, Title: "Fee", Kind: tablesort.KindNumber, Sortable: true},
		{ID: ColumnStatus, Title: "Status", Kind: tablesort.KindText, Sortable: true},
	}
}

// Formatter holds the display settings used when building rows
type Formatter struct {
	DateLayouts    []string
	CurrencySymbol string
}

// Rows converts records into table rows. Each date, duration and fee cell
// keeps the raw exported value next to its formatted text.
func Rows(records []domain.ParkingRecord, f Formatter) []tablesort.Row {
	if f.CurrencySymbol == "" {
		f.CurrencySymbol = "$"
	}

	rows := make([]tablesort.Row, 0, len(records))
	for _, r := range records {
		slot := r.SlotNumber
		if r.Area != "" {
			slot = r.SlotNumber + " (" + r.Area + ")"
		}
		rows = append(rows, tablesort.Row{
			Cells: []tablesort.Cell{
				{Text: format.DateTime(r.EntryTime, f.DateLayouts), Value: r.EntryTime},
				{Text: r.LicensePlate},
				{Text: slot},
				{Text: r.ParkingType},
				{Text: format.Duration(r.Duration), Value: r.Duration},
				{Text: format.Currency(r.Fee, f.CurrencySymbol), Value: r.Fee},
				{Text: r.Status},
			},
			Payload: r,
		})
	}
	return rows
}
