package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	Focused        lipgloss.Style
	Prompt         lipgloss.Style
	Spinner        lipgloss.Style
	Dim            lipgloss.Style
	Main           lipgloss.Style
	List           lipgloss.Style
	Name           lipgloss.Style
	Highlight      lipgloss.Style
	NoResults      lipgloss.Style
	Image          lipgloss.Style
	Badge          lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	StatusLoading  lipgloss.Style
	CheckboxMarked lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle().Padding(1, 2),
		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Name:           lipgloss.NewStyle().Bold(true),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		NoResults:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Image:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Badge:          lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		CheckboxMarked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
	}
}

// GetTypeColor returns the badge background for a creature type
func GetTypeColor(typeName string) string {
	switch strings.ToLower(typeName) {
	case "normal":
		return "144"
	case "fire":
		return "202"
	case "water":
		return "33"
	case "electric":
		return "220"
	case "grass":
		return "71"
	case "ice":
		return "117"
	case "fighting":
		return "124"
	case "poison":
		return "97"
	case "ground":
		return "179"
	case "flying":
		return "141"
	case "psychic":
		return "205"
	case "bug":
		return "106"
	case "rock":
		return "137"
	case "ghost":
		return "60"
	case "dragon":
		return "57"
	case "dark":
		return "95"
	case "steel":
		return "146"
	case "fairy":
		return "218"
	default:
		return "241" // gray for anything the palette does not know
	}
}
