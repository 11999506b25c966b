package state

import (
	"dexsearch/internal/domain"
)

// FetchFailure is the error shown when the record list could not be fetched
type FetchFailure struct {
	Kind    string
	Message string
	Query   string
}

// WidgetState contains all the search widget state
type WidgetState struct {
	Results     []domain.Record // at most the pipeline limit
	SearchText  string
	SortByMaxCP bool
	Loading     bool
	Err         *FetchFailure

	// Generation of the most recently issued fetch; 0 before the first one
	Generation uint64
	// Discard responses from superseded fetches
	DiscardStale bool
	// Clear Loading and record Err on failure instead of staying stuck
	SurfaceErrors bool
}

// NewWidgetState creates the state at mount time
func NewWidgetState() *WidgetState {
	return &WidgetState{
		Results:       make([]domain.Record, 0),
		DiscardStale:  true,
		SurfaceErrors: true,
	}
}

// Search is the snapshot a fetch is issued with
type Search struct {
	Generation  uint64
	Query       string
	SortByMaxCP bool
}

// SetSearchText records a text change. It returns the search to issue and
// true when the text is non-empty; empty text leaves results and loading alone.
// Any text change clears a shown fetch error.
func (s *WidgetState) SetSearchText(text string) (Search, bool) {
	s.SearchText = text
	s.Err = nil
	if len(text) == 0 {
		return Search{}, false
	}
	return s.beginFetch(), true
}

// CanRetry reports whether a failed search is on screen and can be reissued
func (s *WidgetState) CanRetry() bool {
	return s.Err != nil && s.SearchText != ""
}

// Retry reissues the current search text after a failure
func (s *WidgetState) Retry() (Search, bool) {
	if !s.CanRetry() {
		return Search{}, false
	}
	return s.beginFetch(), true
}

func (s *WidgetState) beginFetch() Search {
	s.Generation++
	s.Loading = true
	s.Err = nil
	return Search{
		Generation:  s.Generation,
		Query:       s.SearchText,
		SortByMaxCP: s.SortByMaxCP,
	}
}

// IsStale reports whether a response for generation should be dropped
func (s *WidgetState) IsStale(generation uint64) bool {
	return s.DiscardStale && generation != s.Generation
}

// ApplyResults stores a completed fetch's results. It returns false when the
// response was discarded as stale.
func (s *WidgetState) ApplyResults(generation uint64, results []domain.Record) bool {
	if s.IsStale(generation) {
		return false
	}
	if results == nil {
		results = make([]domain.Record, 0)
	}
	s.Results = results
	s.Loading = false
	return true
}

// FailFetch records a failed fetch. It returns false when the failure was
// ignored, either as stale or because errors are not surfaced.
func (s *WidgetState) FailFetch(generation uint64, failure FetchFailure) bool {
	if s.IsStale(generation) || !s.SurfaceErrors {
		return false
	}
	s.Loading = false
	s.Err = &failure
	return true
}

// ToggleSortByMaxCP flips the sort flag only; results are not re-sorted
func (s *WidgetState) ToggleSortByMaxCP() bool {
	s.SortByMaxCP = !s.SortByMaxCP
	return s.SortByMaxCP
}

// SetSortByMaxCP sets the sort flag only
func (s *WidgetState) SetSortByMaxCP(v bool) {
	s.SortByMaxCP = v
}
