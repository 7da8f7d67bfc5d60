package ui

import (
	"parkview/internal/domain"
	"parkview/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// historyLoadedMsg carries a freshly loaded history
type historyLoadedMsg struct {
	history domain.History
}

// historyFailedMsg carries a history load error
type historyFailedMsg struct {
	source string
	err    error
}

// pagerClosedMsg is sent when the pager exits
type pagerClosedMsg struct {
	err error
}
