package logic

import (
	"sort"

	"dexsearch/internal/domain"
)

// SortMode represents the result ordering selected by the max CP checkbox
type SortMode int

const (
	SortByName SortMode = iota
	SortByMaxCP
)

// SortModeFor maps the checkbox state to a SortMode
func SortModeFor(sortByMaxCP bool) SortMode {
	if sortByMaxCP {
		return SortByMaxCP
	}
	return SortByName
}

// maxCPRank groups records for CompareMaxCP: valid values, then values
// that do not parse, then records without MaxCP
func maxCPRank(r domain.Record) int {
	switch {
	case !r.HasMaxCP():
		return 2
	case !r.MaxCP.Valid:
		return 1
	default:
		return 0
	}
}

// CompareMaxCP orders records with a valid MaxCP first, higher values first,
// then records whose MaxCP does not parse, then records without one. It
// returns 0 within the last two groups and for equal values; callers fall
// through to CompareName.
func CompareMaxCP(a, b domain.Record) int {
	ra, rb := maxCPRank(a), maxCPRank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	case ra != 0:
		return 0
	}
	switch {
	case a.MaxCP.Value > b.MaxCP.Value:
		return -1
	case a.MaxCP.Value < b.MaxCP.Value:
		return 1
	default:
		return 0
	}
}

// CompareName orders name-prefix matches first, then names ascending
func CompareName(a, b domain.Record, query string) int {
	aMatch := NameMatches(a, query)
	bMatch := NameMatches(b, query)
	if aMatch && !bMatch {
		return -1
	}
	if !aMatch && bMatch {
		return 1
	}
	switch {
	case a.Name < b.Name:
		return -1
	case a.Name > b.Name:
		return 1
	default:
		return 0
	}
}

// Compare is the full result comparator for the given mode
func Compare(a, b domain.Record, query string, mode SortMode) int {
	if mode == SortByMaxCP {
		if c := CompareMaxCP(a, b); c != 0 {
			return c
		}
	}
	return CompareName(a, b, query)
}

// SortRecords sorts records in place
func SortRecords(records []domain.Record, query string, mode SortMode) {
	sort.SliceStable(records, func(i, j int) bool {
		return Compare(records[i], records[j], query, mode) < 0
	})
}
