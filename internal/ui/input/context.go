package input

import (
	"dexsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.WidgetState
}

// SortByMaxCP returns the checkbox state
func (c *ModelContext) SortByMaxCP() bool {
	return c.State != nil && c.State.SortByMaxCP
}

// CanRetry reports whether a failed search can be reissued
func (c *ModelContext) CanRetry() bool {
	return c.State != nil && c.State.CanRetry()
}
