package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dexsearch/internal/domain"
	"dexsearch/internal/ui/logic"
)

// PlaceholderImageURL is shown on the "No results" row
const PlaceholderImageURL = "https://cyndiquil721.files.wordpress.com/2014/02/missingno.png"

// NoResultsText is the fallback row's label
const NoResultsText = "No results"

// imageGlyph stands in for a record's picture
const imageGlyph = "▣"

// ImageMode selects how a row shows its image
type ImageMode int

const (
	ImageHidden ImageMode = iota
	ImageLink             // glyph carrying an OSC 8 hyperlink to the image
	ImageURL              // the URL as plain text, for non-interactive output
)

// ResultRenderer renders the result list
type ResultRenderer struct {
	styles    *Styles
	imageMode ImageMode
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles, imageMode ImageMode) *ResultRenderer {
	return &ResultRenderer{styles: styles, imageMode: imageMode}
}

// RenderList renders one row per record, or the single fallback row when
// there are none
func (r *ResultRenderer) RenderList(results []domain.Record, query string) string {
	if len(results) == 0 {
		return r.RenderNoResults()
	}

	rows := make([]string, 0, len(results))
	for _, rec := range results {
		rows = append(rows, r.RenderRow(rec, query))
	}
	return strings.Join(rows, "\n")
}

// RenderRow renders image, highlighted name and type badges for one record
func (r *ResultRenderer) RenderRow(rec domain.Record, query string) string {
	parts := make([]string, 0, 3)
	if img := r.renderImage(rec.ImageURL); img != "" {
		parts = append(parts, img)
	}
	parts = append(parts, r.RenderName(rec.Name, query))
	if badges := r.RenderBadges(rec.Types); badges != "" {
		parts = append(parts, badges)
	}
	return strings.Join(parts, " ")
}

// RenderName renders name with its matched prefix highlighted
func (r *ResultRenderer) RenderName(name, query string) string {
	h := logic.Highlight(name, query)
	if !h.Matched {
		return r.styles.Name.Render(h.Plain)
	}
	return r.styles.Highlight.Render(h.Prefix) + r.styles.Name.Render(h.Rest)
}

// RenderBadges renders one badge per type, in order
func (r *ResultRenderer) RenderBadges(types []string) string {
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badge := r.styles.Badge.Background(lipgloss.Color(GetTypeColor(t))).Render(t)
		badges = append(badges, badge)
	}
	return strings.Join(badges, " ")
}

// RenderNoResults renders the fallback row
func (r *ResultRenderer) RenderNoResults() string {
	parts := make([]string, 0, 2)
	if img := r.renderImage(PlaceholderImageURL); img != "" {
		parts = append(parts, img)
	}
	parts = append(parts, r.styles.NoResults.Render(NoResultsText))
	return strings.Join(parts, " ")
}

func (r *ResultRenderer) renderImage(url string) string {
	switch r.imageMode {
	case ImageLink:
		if url == "" {
			return r.styles.Dim.Render(imageGlyph)
		}
		return ansi.SetHyperlink(url) + r.styles.Image.Render(imageGlyph) + ansi.ResetHyperlink()
	case ImageURL:
		if url == "" {
			return r.styles.Dim.Render("-")
		}
		return r.styles.Dim.Render(ansi.Truncate(url, 96, "…"))
	default:
		return ""
	}
}
