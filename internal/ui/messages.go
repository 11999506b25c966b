package ui

import (
	"dexsearch/internal/domain"
	"dexsearch/internal/ui/state"
)

// recordsFetchedMsg carries a completed fetch, already run through the pipeline
type recordsFetchedMsg struct {
	search  state.Search
	fetched int
	results []domain.Record
}

// fetchFailedMsg carries a fetch that returned an error
type fetchFailedMsg struct {
	search state.Search
	err    error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
