package logic

import (
	"strings"
	"unicode/utf8"

	"dexsearch/internal/domain"
)

// TypeMatch selects how a record's types are tested against the query
type TypeMatch int

const (
	// MatchAnyType matches when any single type starts with the query
	MatchAnyType TypeMatch = iota
	// MatchJoinedTypes matches when the comma-joined type list starts with the query,
	// so only the first type can ever match
	MatchJoinedTypes
)

// ParseTypeMatch maps the config spelling to a TypeMatch
func ParseTypeMatch(s string) TypeMatch {
	if strings.EqualFold(s, "joined") {
		return MatchJoinedTypes
	}
	return MatchAnyType
}

// HasPrefixFold reports whether s starts with prefix, ignoring case.
// The empty prefix matches everything.
func HasPrefixFold(s, prefix string) bool {
	n := utf8.RuneCountInString(prefix)
	if n == 0 {
		return true
	}
	head, ok := leadingRunes(s, n)
	if !ok {
		return false
	}
	return strings.EqualFold(head, prefix)
}

// leadingRunes returns the first n runes of s, or false when s is shorter
func leadingRunes(s string, n int) (string, bool) {
	i := 0
	for count := 0; count < n; count++ {
		if i >= len(s) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], true
}

// NameMatches reports whether the record's name starts with the query
func NameMatches(rec domain.Record, query string) bool {
	return HasPrefixFold(rec.Name, query)
}

// TypesMatch reports whether the record's types start with the query under mode
func TypesMatch(rec domain.Record, query string, mode TypeMatch) bool {
	if mode == MatchJoinedTypes {
		return HasPrefixFold(strings.Join(rec.Types, ","), query)
	}
	if query == "" {
		return true
	}
	for _, t := range rec.Types {
		if HasPrefixFold(t, query) {
			return true
		}
	}
	return false
}

// Matches is the filter predicate: name or types start with the query
func Matches(rec domain.Record, query string, mode TypeMatch) bool {
	return NameMatches(rec, query) || TypesMatch(rec, query, mode)
}

// Filter keeps the records matching query, preserving input order
func Filter(records []domain.Record, query string, mode TypeMatch) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, query, mode) {
			out = append(out, rec)
		}
	}
	return out
}
