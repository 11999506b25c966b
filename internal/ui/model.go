package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dexsearch/internal/config"
	"dexsearch/internal/eventbus"
	"dexsearch/internal/pager"
	"dexsearch/internal/source"
	"dexsearch/internal/ui/input"
	inputtypes "dexsearch/internal/ui/input/types"
	"dexsearch/internal/ui/logic"
	"dexsearch/internal/ui/state"
	"dexsearch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.WidgetState

	// Data access
	source   source.Source
	pipeline *logic.Pipeline
	timeout  time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	inFlight context.CancelFunc // cancels the latest fetch when a newer one supersedes it

	// UI-specific state not in WidgetState
	width   int
	height  int
	help    help.Model
	spinner spinner.Model

	// Handlers
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every fetch the model issues.
func NewModel(ctx context.Context, cfg *config.Config, src source.Source, bus eventbus.EventBus) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		log.Printf("Ignoring request timeout: %v", err)
		timeout = 0
	}

	appState := state.NewWidgetState()
	appState.SetSortByMaxCP(cfg.Search.SortByMaxCP)
	appState.DiscardStale = cfg.Search.DiscardStale
	appState.SurfaceErrors = cfg.Search.SurfaceErrors

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	modelCtx, cancel := context.WithCancel(ctx)

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		source:       src,
		pipeline:     logic.NewPipeline(cfg.Search.Limit, logic.ParseTypeMatch(cfg.Search.TypeMatch)),
		timeout:      timeout,
		ctx:          modelCtx,
		cancel:       cancel,
		help:         help.New(),
		spinner:      s,
		inputHandler: input.New(inputtypes.DefaultKeyMap(), cfg.UI.Placeholder),
		renderer:     views.NewRenderer(cfg.UI.ShowImages),
		helpRenderer: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// State exposes the widget state for inspection
func (m *Model) State() *state.WidgetState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case recordsFetchedMsg:
		m.handleRecords(msg)
		return m, nil

	case fetchFailedMsg:
		m.handleFailure(msg)
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in the view
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QueryChangedAction:
		wasLoading := m.state.Loading
		search, ok := m.state.SetSearchText(a.Text)
		if !ok {
			return nil
		}
		return m.startFetch(search, wasLoading)

	case inputtypes.RetryAction:
		wasLoading := m.state.Loading
		search, ok := m.state.Retry()
		if !ok {
			return nil
		}
		log.Printf("Retrying search %q", search.Query)
		return m.startFetch(search, wasLoading)

	case inputtypes.ToggleSortAction:
		sortByMaxCP := m.state.ToggleSortByMaxCP()
		m.publish(eventbus.SortModeChangedEvent{SortByMaxCP: sortByMaxCP})
		return nil

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		m.cancel()
		return tea.Quit
	}
	return nil
}

// startFetch issues the fetch for search and starts the spinner if it was idle
func (m *Model) startFetch(search state.Search, wasLoading bool) tea.Cmd {
	m.publish(eventbus.SearchIssuedEvent{
		Generation:  search.Generation,
		Query:       search.Query,
		SortByMaxCP: search.SortByMaxCP,
	})

	fetch := m.fetchRecords(search)
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

// fetchRecords returns a command that fetches the full list and runs the
// pipeline with the query and sort mode captured when the search was issued
func (m *Model) fetchRecords(search state.Search) tea.Cmd {
	if m.state.DiscardStale && m.inFlight != nil {
		// the older response would be discarded anyway
		m.inFlight()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	if m.state.DiscardStale {
		m.inFlight = cancel
	}

	src := m.source
	pipeline := m.pipeline
	timeout := m.timeout

	return func() tea.Msg {
		defer cancel()

		fetchCtx := ctx
		if timeout > 0 {
			var cancelTimeout context.CancelFunc
			fetchCtx, cancelTimeout = context.WithTimeout(ctx, timeout)
			defer cancelTimeout()
		}

		if src == nil {
			return fetchFailedMsg{search: search, err: fmt.Errorf("no data source configured")}
		}

		records, err := src.Fetch(fetchCtx)
		if err != nil {
			return fetchFailedMsg{search: search, err: err}
		}

		return recordsFetchedMsg{
			search:  search,
			fetched: len(records),
			results: pipeline.Run(records, search.Query, search.SortByMaxCP),
		}
	}
}

func (m *Model) handleRecords(msg recordsFetchedMsg) {
	if !m.state.ApplyResults(msg.search.Generation, msg.results) {
		log.Printf("Discarding results for %q (generation %d, latest %d)", msg.search.Query, msg.search.Generation, m.state.Generation)
		m.publish(eventbus.ResultsDiscardedEvent{
			Generation: msg.search.Generation,
			Latest:     m.state.Generation,
			Query:      msg.search.Query,
		})
		return
	}

	m.publish(eventbus.ResultsAppliedEvent{
		Generation: msg.search.Generation,
		Query:      msg.search.Query,
		Fetched:    msg.fetched,
		Shown:      len(msg.results),
	})
}

func (m *Model) handleFailure(msg fetchFailedMsg) {
	if m.state.IsStale(msg.search.Generation) {
		log.Printf("Ignoring failure of superseded search %q: %v", msg.search.Query, msg.err)
		return
	}

	log.Printf("Fetching records for %q failed: %v", msg.search.Query, msg.err)
	m.publish(eventbus.FetchFailedEvent{
		Generation: msg.search.Generation,
		Query:      msg.search.Query,
		Err:        msg.err,
	})

	m.state.FailFetch(msg.search.Generation, state.FetchFailure{
		Kind:    source.KindOf(msg.err).String(),
		Message: msg.err.Error(),
		Query:   msg.search.Query,
	})
}

// showHelp returns a command that shows the key reference in the pager
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := m.helpRenderer.renderHelpContent(m.sourceLocation(), m.pipeline.Limit)
	program := m.program
	return func() tea.Msg {
		return helpPagerMsg{err: pager.ShowReleased(program, content)}
	}
}

func (m *Model) sourceLocation() string {
	if m.source == nil {
		return "(none)"
	}
	return m.source.Location()
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// View renders the UI
func (m *Model) View() string {
	keys := m.inputHandler.Keys()
	keys.Retry.SetEnabled(m.state.CanRetry())

	errorMessage := ""
	if m.state.Err != nil {
		errorMessage = fmt.Sprintf("Could not load results for %q: %s", m.state.Err.Query, m.state.Err.Message)
	}

	return m.renderer.Render(views.ViewState{
		Width:           m.width,
		Query:           m.state.SearchText,
		InputView:       m.inputHandler.TextInput().View(),
		SortByMaxCP:     m.state.SortByMaxCP,
		CheckboxFocused: m.inputHandler.CurrentMode() == inputtypes.ModeOptions,
		Loading:         m.state.Loading,
		SpinnerView:     m.spinner.View(),
		Results:         m.state.Results,
		ErrorMessage:    errorMessage,
		HelpView:        m.help.View(keys),
	})
}
