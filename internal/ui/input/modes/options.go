package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dexsearch/internal/ui/input/types"
)

// OptionsMode is active while the max CP checkbox has focus
type OptionsMode struct {
	keys types.KeyMap
}

func NewOptionsMode(keys types.KeyMap) *OptionsMode {
	return &OptionsMode{keys: keys}
}

func (m *OptionsMode) Name() string {
	return "options"
}

func (m *OptionsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OptionsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OptionsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := handleGlobalKey(m.keys, types.ModeSearch, msg, ctx); ok {
		return actions, true
	}
	if key.Matches(msg, m.keys.Check) {
		return []types.Action{types.ToggleSortAction{}}, true
	}
	// Other keys are swallowed while the checkbox has focus
	return nil, true
}
