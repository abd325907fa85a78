package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowsLoaded      EventType = "RowsLoaded"
	EventDatasetError    EventType = "DatasetError"
	EventReloadRequested EventType = "ReloadRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RowsLoadedEvent is emitted when the dataset service finishes loading.
type RowsLoadedEvent struct {
	Dataset Dataset
}

func (e RowsLoadedEvent) Type() EventType { return EventRowsLoaded }

// DatasetErrorEvent is emitted when loading fails.
type DatasetErrorEvent struct {
	Message string
	Err     error
}

func (e DatasetErrorEvent) Type() EventType { return EventDatasetError }

// ReloadRequestedEvent asks the dataset service to reload its source.
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }
