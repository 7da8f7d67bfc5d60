package domain

// ParkingRecord is one entry of a parking history export
type ParkingRecord struct {
	ID           string
	EntryTime    string // timestamp as exported, may be unparseable
	ExitTime     string // empty while the vehicle is still parked
	LicensePlate string
	SlotNumber   string
	Area         string
	ParkingType  string // "Indoor" or "Outdoor"
	Duration     string // minutes, empty when unknown
	Fee          string
	Status       string // "active", "completed", ...
}

// IsActive reports whether the vehicle has not exited yet
func (r ParkingRecord) IsActive() bool {
	return r.ExitTime == "" || r.Status == "active"
}

// History is a loaded parking history
type History struct {
	Source  string // file the history was read from
	Records []ParkingRecord
}
