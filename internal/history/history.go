// Package history reads parking history exports and turns them into
// sortable table rows.
package history

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"parkview/internal/domain"
)

// ErrNoRecords is returned when a document has no recognisable record list
var ErrNoRecords = errors.New("no parking records found")

// recordPaths are the document keys that may hold the record array
var recordPaths = []string{"parking_history", "records", "data"}

// Load reads and parses a history export
func Load(path string) (domain.History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.History{}, fmt.Errorf("failed to read history file: %w", err)
	}

	records, err := Parse(data)
	if err != nil {
		return domain.History{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "records": len(records)}).Debug("history: loaded")
	return domain.History{Source: path, Records: records}, nil
}

// Parse reads records from either a top-level array or an object holding
// one under a known key
func Parse(data []byte) ([]domain.ParkingRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	list := doc
	if !doc.IsArray() {
		list = gjson.Result{}
		for _, p := range recordPaths {
			if r := doc.Get(p); r.IsArray() {
				list = r
				break
			}
		}
		if !list.Exists() {
			return nil, ErrNoRecords
		}
	}

	records := make([]domain.ParkingRecord, 0, len(list.Array()))
	for i, item := range list.Array() {
		if !item.IsObject() {
			log.WithField("index", i).Warn("history: skipping non-object entry")
			continue
		}
		records = append(records, parseRecord(item))
	}
	return records, nil
}

func parseRecord(item gjson.Result) domain.ParkingRecord {
	return domain.ParkingRecord{
		ID:           str(item, "id"),
		EntryTime:    str(item, "entry_time", "date", "timestamp"),
		ExitTime:     str(item, "exit_time"),
		LicensePlate: str(item, "license_plate", "vehicle.license_plate"),
		SlotNumber:   str(item, "slot_number", "slot.slot_number"),
		Area:         str(item, "area", "slot.area"),
		ParkingType:  str(item, "parking_type"),
		Duration:     str(item, "duration"),
		Fee:          str(item, "fee"),
		Status:       str(item, "status"),
	}
}

// str returns the first non-null value among paths as a string. Numbers keep
// their raw JSON text so nothing is lost to float formatting.
func str(item gjson.Result, paths ...string) string {
	for _, p := range paths {
		r := item.Get(p)
		switch r.Type {
		case gjson.Null:
			continue
		case gjson.Number:
			return r.Raw
		case gjson.String:
			return strings.TrimSpace(r.Str)
		default:
			return r.String()
		}
	}
	return ""
}
