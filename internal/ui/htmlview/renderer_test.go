package htmlview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

func render(t *testing.T, tbl *components.Table) string {
	t.Helper()
	r, err := NewTableRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderTable(&buf, tbl))
	return buf.String()
}

func TestRenderTable(t *testing.T) {
	out := render(t, components.NewTable(components.TableProps{
		Records: []components.Record{
			components.R("id", 1, "name", "John", "age", 30),
			components.R("id", 2, "name", "Alice", "age", 25),
		},
		TableStyle: "striped",
	}))

	assert.Contains(t, out, `<table class="table striped">`)
	assert.Contains(t, out, `<tr><th class="">id</th><th class="">name</th><th class="">age</th></tr>`)
	assert.Contains(t, out, `<tr><td class="">1</td><td class="">John</td><td class="">30</td></tr>`)
	assert.Contains(t, out, `<tr><td class="">2</td><td class="">Alice</td><td class="">25</td></tr>`)
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
}

func TestRenderTableCellClasses(t *testing.T) {
	out := render(t, components.NewTable(components.TableProps{
		Records:       []components.Record{components.R("age", 30)},
		BodyCellStyle: "num",
		CellStyle: func(column string, value any) components.StyleToken {
			return "highlighted-cell"
		},
	}))

	assert.Contains(t, out, `<td class="num highlighted-cell">30</td>`)
}

func TestRenderTableEscapesText(t *testing.T) {
	out := render(t, components.NewTable(components.TableProps{
		Records: []components.Record{components.R("note", "<script>alert(1)</script>")},
	}))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderEmptyTable(t *testing.T) {
	out := render(t, components.NewTable(components.TableProps{}))

	assert.Equal(t, `<p class="no-data">No data available</p>`, strings.TrimSpace(out))
	assert.NotContains(t, out, "<table")
}
