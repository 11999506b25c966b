package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record represents one creature entry from the data source
type Record struct {
	Name     string        `json:"Name"`
	Types    []string      `json:"Types"`
	ImageURL string        `json:"img"`
	MaxCP    *CombatPoints `json:"MaxCP,omitempty"` // nil when the source omits the field
}

// HasMaxCP reports whether the record carries a max combat points value
func (r Record) HasMaxCP() bool {
	return r.MaxCP != nil
}

// CombatPoints is the string-encoded max combat points attribute.
// Raw keeps the source text; Valid is false when Raw is not an integer.
type CombatPoints struct {
	Raw   string
	Value int
	Valid bool
}

// ParseCombatPoints parses the string encoding used by the data source
func ParseCombatPoints(raw string) *CombatPoints {
	cp := &CombatPoints{Raw: raw}
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		cp.Value = v
		cp.Valid = true
	}
	return cp
}

// UnmarshalJSON accepts both "1000" and 1000
func (cp *CombatPoints) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*cp = *ParseCombatPoints(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("MaxCP must be a string or number: %w", err)
	}
	*cp = *ParseCombatPoints(n.String())
	return nil
}

// MarshalJSON writes the value back in its string encoding
func (cp CombatPoints) MarshalJSON() ([]byte, error) {
	return json.Marshal(cp.Raw)
}

func (cp *CombatPoints) String() string {
	if cp == nil {
		return ""
	}
	return cp.Raw
}
