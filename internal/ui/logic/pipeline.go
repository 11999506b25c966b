package logic

import "dexsearch/internal/domain"

// DefaultLimit is the number of results the widget shows
const DefaultLimit = 4

// Pipeline filters, sorts and slices a fetched record list
type Pipeline struct {
	Limit     int
	TypeMatch TypeMatch
}

// NewPipeline creates a pipeline; a non-positive limit uses DefaultLimit
func NewPipeline(limit int, typeMatch TypeMatch) *Pipeline {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pipeline{Limit: limit, TypeMatch: typeMatch}
}

// Run returns the top matches for query. The input slice is not modified.
func (p *Pipeline) Run(records []domain.Record, query string, sortByMaxCP bool) []domain.Record {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	matches := Filter(records, query, p.TypeMatch)
	SortRecords(matches, query, SortModeFor(sortByMaxCP))

	if len(matches) > limit {
		matches = matches[:limit:limit]
	}
	return matches
}
