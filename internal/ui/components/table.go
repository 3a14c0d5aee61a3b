package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// DefaultPlaceholder is shown instead of a grid when there are no records.
const DefaultPlaceholder = "No data available"

// HeaderStyleFunc returns an extra style token for the header of column.
type HeaderStyleFunc func(column string) StyleToken

// CellStyleFunc returns an extra style token for a body cell.
type CellStyleFunc func(column string, value any) StyleToken

// TableProps configures a Table.
type TableProps struct {
	Records []Record
	// Columns fixes the column order. When empty the columns are the keys
	// of the first record.
	Columns []string

	TableStyle      StyleToken
	HeaderCellStyle StyleToken
	BodyCellStyle   StyleToken

	HeaderStyle HeaderStyleFunc
	CellStyle   CellStyleFunc

	Placeholder string
}

// Cell is one rendered table cell.
type Cell struct {
	Text    string
	Value   any
	Column  string
	Classes ClassList
}

// Grid is the resolved structure of a table, independent of any output
// format.
type Grid struct {
	Classes ClassList
	Columns []string
	Header  []Cell
	Rows    [][]Cell
}

// HeaderTexts returns the header cell texts in column order.
func (g Grid) HeaderTexts() []string {
	out := make([]string, len(g.Header))
	for i, c := range g.Header {
		out[i] = c.Text
	}
	return out
}

// RowTexts returns the body cell texts row by row.
func (g Grid) RowTexts() [][]string {
	out := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		texts := make([]string, len(row))
		for j, c := range row {
			texts[j] = c.Text
		}
		out[i] = texts
	}
	return out
}

// Table renders a record set as a grid of header and body cells.
type Table struct {
	BaseComponent
	props    TableProps
	grid     Grid
	empty    bool
	border   BorderVariant
	warnings []error
	log      *logger.Logger
}

// NewTable resolves the grid for props. Records whose keys differ from the
// column set are rendered anyway and reported through Warnings.
func NewTable(props TableProps, opts ...Option) *Table {
	o := applyOptions(opts)
	if props.Placeholder == "" {
		props.Placeholder = DefaultPlaceholder
	}

	t := &Table{
		BaseComponent: NewBaseComponent(),
		props:         props,
		border:        BorderVariantRounded,
		log:           o.log.WithComponent("table"),
	}
	t.SetClasses(ClassTable, props.TableStyle)
	t.build()
	return t
}

func (t *Table) build() {
	if len(t.props.Records) == 0 {
		t.empty = true
		return
	}

	columns := t.columns()
	grid := Grid{
		Classes: t.Classes(),
		Columns: columns,
		Header:  make([]Cell, len(columns)),
		Rows:    make([][]Cell, 0, len(t.props.Records)),
	}

	for i, column := range columns {
		classes := NewClassList(t.props.HeaderCellStyle)
		if t.props.HeaderStyle != nil {
			classes = classes.With(t.props.HeaderStyle(column))
		}
		grid.Header[i] = Cell{Text: column, Value: column, Column: column, Classes: classes}
	}

	for _, record := range t.props.Records {
		row := make([]Cell, len(columns))
		for j, column := range columns {
			value, _ := record.Get(column)
			classes := NewClassList(t.props.BodyCellStyle)
			if t.props.CellStyle != nil {
				classes = classes.With(t.props.CellStyle(column, value))
			}
			row[j] = Cell{Text: FormatValue(value), Value: value, Column: column, Classes: classes}
		}
		grid.Rows = append(grid.Rows, row)
	}

	t.grid = grid
	t.checkShape(columns)
}

func (t *Table) columns() []string {
	if len(t.props.Columns) == 0 {
		return t.props.Records[0].Keys()
	}

	seen := make(map[string]bool, len(t.props.Columns))
	columns := make([]string, 0, len(t.props.Columns))
	for _, column := range t.props.Columns {
		if seen[column] {
			t.warn(tkerrors.NewValidationError("columns", fmt.Sprintf("duplicate column %q ignored", column), nil))
			continue
		}
		seen[column] = true
		columns = append(columns, column)
	}
	return columns
}

// checkShape reports records that are missing a shown column or whose keys
// differ from the first record's. Keys left out of an explicit column list
// are a projection, not a defect.
func (t *Table) checkShape(columns []string) {
	reference := make(map[string]bool)
	for _, key := range t.props.Records[0].Keys() {
		reference[key] = true
	}

	for i, record := range t.props.Records {
		field := fmt.Sprintf("records[%d]", i)
		for _, column := range columns {
			if _, ok := record.Get(column); !ok {
				t.warn(tkerrors.NewValidationError(field, fmt.Sprintf("missing field %q rendered empty", column), nil))
			}
		}
		for _, key := range record.Keys() {
			if !reference[key] {
				t.warn(tkerrors.NewValidationError(field, fmt.Sprintf("extra field %q ignored", key), nil))
			}
		}
	}
}

func (t *Table) warn(err error) {
	t.warnings = append(t.warnings, err)
	t.log.WarnErr(err, "heterogeneous table data")
}

// Grid returns the resolved grid. It reports false when the table shows the
// placeholder instead.
func (t *Table) Grid() (Grid, bool) {
	if t.empty {
		return Grid{}, false
	}
	return t.grid, true
}

// IsEmpty reports whether the placeholder is shown.
func (t *Table) IsEmpty() bool {
	return t.empty
}

// Placeholder returns the text shown for an empty record set.
func (t *Table) Placeholder() string {
	return t.props.Placeholder
}

// Warnings returns the shape problems found in the records, in order.
func (t *Table) Warnings() []error {
	return append([]error(nil), t.warnings...)
}

// WithBorder selects the border drawn around and inside the grid.
func (t *Table) WithBorder(variant BorderVariant) *Table {
	t.border = variant
	return t
}

// View renders the table with the default context.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the grid with lipgloss/table, resolving each
// cell's class tokens through the context's style sheet.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	if t.empty {
		return ctx.Styles.Apply(lipgloss.NewStyle(), ctx.Theme, ClassNoData).Render(t.props.Placeholder)
	}

	frame := t.ResolveStyle(ctx)
	border := BorderForVariant(ctx.Theme, t.border)
	if t.border == BorderVariantNone {
		border = lipgloss.HiddenBorder()
	}

	rows := t.grid.RowTexts()
	grid := t.grid
	tbl := table.New().
		Border(border).
		BorderStyle(lipgloss.NewStyle().Foreground(frame.GetBorderTopForeground())).
		Headers(grid.HeaderTexts()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
				if col < len(grid.Header) {
					return ctx.Styles.Apply(base, ctx.Theme, grid.Header[col].Classes...)
				}
				return base
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(grid.Rows) && col < len(grid.Rows[row]) {
				return ctx.Styles.Apply(base, ctx.Theme, grid.Rows[row][col].Classes...)
			}
			return base
		})

	if width := ctx.Constraints.MaxWidth; width > 0 {
		tbl = tbl.Width(width)
	}
	return tbl.String()
}
