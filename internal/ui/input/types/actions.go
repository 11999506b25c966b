package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// QueryChangedAction is emitted when the search text changes
type QueryChangedAction struct {
	Text string
}

func (a QueryChangedAction) Type() string { return "query_changed" }

// ToggleSortAction flips the max CP checkbox
type ToggleSortAction struct{}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

// RetryAction reissues the last failed search
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

// ShowHelpAction opens the key reference in the pager
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// QuitAction exits the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
