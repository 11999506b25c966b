package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dexsearch/internal/ui/input/types"
)

// handleGlobalKey handles keys that behave the same in every mode
func handleGlobalKey(km types.KeyMap, next types.Mode, msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, km.NextFocus), key.Matches(msg, km.PrevFocus):
		return []types.Action{types.ChangeModeAction{Mode: next}}, true
	case key.Matches(msg, km.ToggleSort):
		return []types.Action{types.ToggleSortAction{}}, true
	case key.Matches(msg, km.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, key.NewBinding(key.WithKeys(km.Retry.Keys()...))):
		// Retry keys are swallowed while there is nothing to retry
		if ctx.CanRetry() {
			return []types.Action{types.RetryAction{}}, true
		}
		return nil, true
	}
	return nil, false
}
