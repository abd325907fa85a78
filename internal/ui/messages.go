package ui

import "gridsel/internal/domain"

// EventMsg wraps a bus event for delivery through the Bubble Tea loop.
type EventMsg struct {
	Event domain.DomainEvent
}

// pagerClosedMsg reports the result of an export pager session.
type pagerClosedMsg struct {
	err error
}
