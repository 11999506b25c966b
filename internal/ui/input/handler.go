package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dexsearch/internal/ui/input/modes"
	"dexsearch/internal/ui/input/types"
)

// Handler routes keys to the mode that has focus
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler with focus on the search field
func New(keys types.KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.CharLimit = 0 // no limit: every keystroke is part of the query
	ti.Width = 32
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeOptions] = modes.NewOptionsMode(keys)

	return h
}

// HandleKey returns the actions for a key press. Keys the current mode does
// not consume are fed to the text input; a QueryChangedAction is emitted only
// when that changes the text.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if changeMode.Mode == types.ModeSearch {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.QueryChangedAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// CurrentMode returns the focused mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared search field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key bindings in use
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
