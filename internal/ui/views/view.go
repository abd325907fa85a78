package views

import (
	"fmt"
	"strings"
)

// ViewState is the full frame description handed to the renderer.
type ViewState struct {
	Grid *GridState

	DatasetName   string
	SelectionMode string
	RowCount      int

	Status      string
	StatusError bool
	Selection   string

	Prompt    string
	InputView string

	// HelpView is the pre-rendered key help footer.
	HelpView string
	ShowHelp bool
	Width    int
	Height   int
}

// Renderer turns a ViewState into the terminal frame.
type Renderer struct {
	styles *Styles
}

func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

func (r *Renderer) Render(vs *ViewState) string {
	var b strings.Builder

	title := fmt.Sprintf("gridsel: %s", vs.DatasetName)
	meta := fmt.Sprintf("%d rows · %s selection", vs.RowCount, vs.SelectionMode)
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(meta))
	b.WriteString("\n\n")

	if vs.Grid != nil && len(vs.Grid.Columns) > 0 {
		b.WriteString(r.renderHeader(vs.Grid))
		b.WriteString("\n")
		for _, row := range vs.Grid.Visible {
			b.WriteString(r.renderRow(vs.Grid, row))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(r.styles.Dim.Render("loading dataset..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.renderStatusLine(vs))
	b.WriteString("\n")

	if vs.Prompt != "" {
		b.WriteString(r.styles.Prompt.Render(vs.Prompt))
		b.WriteString(vs.InputView)
		b.WriteString("\n")
	}

	switch {
	case vs.ShowHelp:
		b.WriteString(r.renderHelpLines())
	case vs.HelpView != "":
		b.WriteString(vs.HelpView)
	default:
		b.WriteString(r.styles.Help.Render("? help · / search · g goto · m mode · v export · q quit"))
	}

	return b.String()
}

func (r *Renderer) renderStatusLine(vs *ViewState) string {
	if vs.Status != "" {
		if vs.StatusError {
			return r.styles.StatusError.Render(vs.Status)
		}
		return r.styles.Status.Render(vs.Status)
	}
	if vs.Selection != "" {
		return r.styles.Status.Render(vs.Selection)
	}
	return r.styles.Status.Render("no selection")
}

func (r *Renderer) renderHelpLines() string {
	lines := []string{
		"↑/↓/←/→, hjkl  move focus        shift+move      extend range",
		"click          select cell       shift+click     extend to cell",
		"ctrl+click     add range         drag            sweep range",
		"ctrl+a         select all        esc             clear selection",
		"/              search rows       n/N             next/prev match",
		"g              go to row[,col]",
		"m              cycle mode        #               toggle row numbers",
		"v              export selection  r               reload dataset",
		"?              close help        q               quit",
	}
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(r.styles.Help.Render(line))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
