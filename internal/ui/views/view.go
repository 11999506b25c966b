package views

import (
	"fmt"
	"strings"

	"dexsearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Query           string // the current search text
	InputView       string // rendered text input
	SortByMaxCP     bool
	CheckboxFocused bool
	Loading         bool
	SpinnerView     string
	Results         []domain.Record
	ErrorMessage    string // empty when there is no error to show
	HelpView        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showImages bool) *Renderer {
	styles := NewStyles()
	mode := ImageHidden
	if showImages {
		mode = ImageLink
	}
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles, mode),
	}
}

// Results returns the renderer used for the result list
func (r *Renderer) Results() *ResultRenderer {
	return r.resultRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("dexsearch"))
	content.WriteString("\n")

	content.WriteString(r.RenderCheckbox(state.SortByMaxCP, state.CheckboxFocused))
	content.WriteString("\n")

	content.WriteString(r.styles.Prompt.Render("> "))
	content.WriteString(state.InputView)
	content.WriteString("\n")

	// The indicator is absent, not blank, when nothing is loading
	if state.Loading {
		content.WriteString(r.styles.Spinner.Render(state.SpinnerView))
		content.WriteString(r.styles.StatusLoading.Render(" Loading..."))
		content.WriteString("\n")
	}

	list := r.resultRender.RenderList(state.Results, state.Query)
	width := state.Width
	if width <= 0 {
		width = 80
	}
	if width > 8 {
		content.WriteString(r.styles.List.MaxWidth(width - 4).Render(list))
	} else {
		content.WriteString(list)
	}

	if state.ErrorMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.StatusError.Render(state.ErrorMessage))
	}

	if state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(content.String())
}

// RenderCheckbox renders the max CP sort toggle
func (r *Renderer) RenderCheckbox(checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[" + r.styles.CheckboxMarked.Render("x") + "]"
	}
	label := r.styles.Label.Render("Maximum Combat Points")
	if focused {
		label = r.styles.Focused.Render("Maximum Combat Points")
	}
	return fmt.Sprintf("%s %s", box, label)
}
