package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Highlighted is a name split around its matched prefix
type Highlighted struct {
	Matched bool
	Prefix  string // displayed prefix, cased after the query
	Rest    string // remainder of the name
	Plain   string // the whole name when nothing matched
}

// Highlight splits name for display. When name starts with query (ignoring
// case) the highlighted span is the query itself with its first letter
// upper-cased, not the name's own casing.
func Highlight(name, query string) Highlighted {
	if query == "" || !HasPrefixFold(name, query) {
		return Highlighted{Plain: name}
	}

	head, _ := leadingRunes(name, utf8.RuneCountInString(query))
	return Highlighted{
		Matched: true,
		Prefix:  capitalize(query),
		Rest:    strings.TrimPrefix(name, head),
	}
}

// Text returns the display string without styling
func (h Highlighted) Text() string {
	if !h.Matched {
		return h.Plain
	}
	return h.Prefix + h.Rest
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
