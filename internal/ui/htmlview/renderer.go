// Package htmlview renders widget structures as HTML markup.
package htmlview

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

//go:embed templates/*
var templateFS embed.FS

// CellViewModel is one cell of the table markup.
type CellViewModel struct {
	Text  string
	Class string
}

// TableViewModel is the data handed to the table template.
type TableViewModel struct {
	Empty       bool
	Placeholder string
	Classes     string
	Header      []CellViewModel
	Rows        [][]CellViewModel
}

// NewTableViewModel flattens a table into template data.
func NewTableViewModel(t *components.Table) TableViewModel {
	grid, ok := t.Grid()
	if !ok {
		return TableViewModel{Empty: true, Placeholder: t.Placeholder()}
	}

	vm := TableViewModel{
		Classes: grid.Classes.String(),
		Header:  cells(grid.Header),
		Rows:    make([][]CellViewModel, len(grid.Rows)),
	}
	for i, row := range grid.Rows {
		vm.Rows[i] = cells(row)
	}
	return vm
}

func cells(in []components.Cell) []CellViewModel {
	out := make([]CellViewModel, len(in))
	for i, c := range in {
		out[i] = CellViewModel{Text: c.Text, Class: c.Classes.String()}
	}
	return out
}

// TableRenderer writes tables as HTML.
type TableRenderer struct {
	tableTemplate *template.Template
}

// NewTableRenderer parses the embedded templates.
func NewTableRenderer() (*TableRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, err
	}

	return &TableRenderer{tableTemplate: tableTemplate}, nil
}

// Render writes the table markup for vm to w.
func (r *TableRenderer) Render(w io.Writer, vm TableViewModel) error {
	return r.tableTemplate.Execute(w, vm)
}

// RenderTable writes the markup for t to w.
func (r *TableRenderer) RenderTable(w io.Writer, t *components.Table) error {
	return r.Render(w, NewTableViewModel(t))
}
