package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchIssued     EventType = "SearchIssued"
	EventResultsApplied   EventType = "ResultsApplied"
	EventResultsDiscarded EventType = "ResultsDiscarded"
	EventFetchFailed      EventType = "FetchFailed"
	EventSortModeChanged  EventType = "SortModeChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchIssuedEvent is emitted when a keystroke starts a fetch
type SearchIssuedEvent struct {
	Generation  uint64
	Query       string
	SortByMaxCP bool
}

func (e SearchIssuedEvent) Type() EventType { return EventSearchIssued }

// ResultsAppliedEvent is emitted when a fetch result replaces the visible results
type ResultsAppliedEvent struct {
	Generation uint64
	Query      string
	Fetched    int // records returned by the source
	Shown      int // records left after the pipeline
}

func (e ResultsAppliedEvent) Type() EventType { return EventResultsApplied }

// ResultsDiscardedEvent is emitted when a superseded response is dropped
type ResultsDiscardedEvent struct {
	Generation uint64
	Latest     uint64
	Query      string
}

func (e ResultsDiscardedEvent) Type() EventType { return EventResultsDiscarded }

// FetchFailedEvent is emitted when the data source could not be read
type FetchFailedEvent struct {
	Generation uint64
	Query      string
	Err        error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// SortModeChangedEvent is emitted when the max CP checkbox is toggled
type SortModeChangedEvent struct {
	SortByMaxCP bool
}

func (e SortModeChangedEvent) Type() EventType { return EventSortModeChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	SourceURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
