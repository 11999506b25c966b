package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the full key reference shown in the pager
func (r *HelpRenderer) renderHelpContent(source string, limit int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", key)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("dexsearch Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(line("type", "Search by name or type prefix"))
	help.WriteString(line("backspace", "Edit the query (clearing it keeps the last results)"))
	help.WriteString(fmt.Sprintf("  %s\n", descStyle.Render(fmt.Sprintf("Every keystroke fetches the full list again and shows the top %d matches.", limit))))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Sorting"))
	help.WriteString("\n")
	help.WriteString(line("tab", "Move focus between the search field and the checkbox"))
	help.WriteString(line("space", "Toggle the checkbox while it has focus"))
	help.WriteString(line("ctrl+t", "Toggle Maximum Combat Points sorting"))
	help.WriteString(fmt.Sprintf("  %s\n", descStyle.Render("The new order applies from the next keystroke.")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("ctrl+r", "Retry after a failed fetch"))
	help.WriteString(line("f1", "Show this help"))
	help.WriteString(line("esc", "Quit"))
	help.WriteString("\n")

	sourceStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(sourceStyle.Render("  Source: " + source))

	return help.String()
}
