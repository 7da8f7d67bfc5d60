package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHistoryLoaded     EventType = "HistoryLoaded"
	EventHistoryLoadFailed EventType = "HistoryLoadFailed"
	EventReloadRequested   EventType = "ReloadRequested"
	EventSortApplied       EventType = "SortApplied"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HistoryLoadedEvent is emitted when a history file has been parsed
type HistoryLoadedEvent struct {
	History History
}

func (e HistoryLoadedEvent) Type() EventType { return EventHistoryLoaded }

// HistoryLoadFailedEvent is emitted when reading or parsing a history fails
type HistoryLoadFailedEvent struct {
	Source string
	Err    error
}

func (e HistoryLoadFailedEvent) Type() EventType { return EventHistoryLoadFailed }

// ReloadRequestedEvent is emitted to request the history be read again
type ReloadRequestedEvent struct {
	Source string
}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// SortAppliedEvent is emitted after the table has been reordered
type SortAppliedEvent struct {
	Column     string
	Descending bool
	Rows       int
}

func (e SortAppliedEvent) Type() EventType { return EventSortApplied }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	HistoryFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
