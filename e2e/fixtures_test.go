//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// record is one entry of a parking history export
type record struct {
	ID           int     `json:"id"`
	EntryTime    string  `json:"entry_time"`
	ExitTime     string  `json:"exit_time,omitempty"`
	LicensePlate string  `json:"license_plate"`
	SlotNumber   string  `json:"slot_number"`
	Area         string  `json:"area,omitempty"`
	Duration     int     `json:"duration,omitempty"`
	Fee          float64 `json:"fee"`
	Status       string  `json:"status"`
}

// defaultRecords has distinct dates, plates and fees so every column sorts
// into a different order
var defaultRecords = []record{
	{ID: 1, EntryTime: "2024-03-02T08:15:00", LicensePlate: "KA01AB1234", SlotNumber: "L101", Area: "Level 1", Duration: 125, Fee: 12.5, Status: "completed"},
	{ID: 2, EntryTime: "2024-03-01T17:40:00", LicensePlate: "MH12ZZ0001", SlotNumber: "N03", Area: "North", Duration: 45, Fee: 4, Status: "completed"},
	{ID: 3, EntryTime: "2024-03-03T11:00:00", LicensePlate: "DL08CX7777", SlotNumber: "E07", Area: "East", Fee: 0, Status: "active"},
}

// CreateTestWorkspace creates an isolated directory used as HOME and cwd
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "parkview-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir
	return dir, nil
}

// WriteHistory writes records as a parking history export and returns its path
func (tf *TUITestFramework) WriteHistory(name string, records []record) (string, error) {
	data, err := json.MarshalIndent(map[string]any{"parking_history": records}, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write history: %w", err)
	}
	return path, nil
}

// WriteConfig writes a config.toml where parkview looks for it by default
func (tf *TUITestFramework) WriteConfig(content string) error {
	dir := filepath.Join(tf.workspace, "config", "parkview")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644)
}

// StartWithHistory creates a workspace holding records and starts parkview
// on it with extra args
func (tf *TUITestFramework) StartWithHistory(records []record, args ...string) (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	path, err := tf.WriteHistory("history.json", records)
	if err != nil {
		return "", err
	}
	return path, tf.StartApp(append(args, path)...)
}
