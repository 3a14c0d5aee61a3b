package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const peopleYAML = `- id: 1
  name: John
  age: 30
- id: 2
  name: Alice
  age: 25
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return ansi.Strip(out.String()), err
}

func TestTableCommandTerminal(t *testing.T) {
	data := writeFile(t, "people.yaml", peopleYAML)

	out, err := execute(t, "table", "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "Alice")
}

func TestTableCommandHTML(t *testing.T) {
	data := writeFile(t, "people.yaml", peopleYAML)

	out, err := execute(t, "table", "--data", data, "--format", "html", "--highlight", "age>=30")
	require.NoError(t, err)
	assert.Contains(t, out, `<table class="table">`)
	assert.Contains(t, out, `<th class="highlighted-header">age</th>`)
	assert.Contains(t, out, `<td class="highlighted-cell">30</td>`)
	assert.Contains(t, out, `<td class="">25</td>`)
}

func TestTableCommandColumnsOrder(t *testing.T) {
	data := writeFile(t, "people.yaml", peopleYAML)

	out, err := execute(t, "table", "--data", data, "--format", "html", "--columns", "name,id")
	require.NoError(t, err)
	assert.Contains(t, out, `<tr><th class="">name</th><th class="">id</th></tr>`)
}

func TestTableCommandEmptyData(t *testing.T) {
	data := writeFile(t, "empty.yaml", "[]\n")

	out, err := execute(t, "table", "--data", data, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, `<p class="no-data">No data available</p>`)
}

func TestTableCommandRejectsBadInput(t *testing.T) {
	data := writeFile(t, "people.yaml", peopleYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing data flag", args: []string{"table"}, want: "data"},
		{name: "missing file", args: []string{"table", "--data", filepath.Join(t.TempDir(), "nope.yaml")}, want: "does not exist"},
		{name: "unknown format", args: []string{"table", "--data", data, "--format", "pdf"}, want: "unsupported --format"},
		{name: "bad highlight", args: []string{"table", "--data", data, "--highlight", "age"}, want: "invalid --highlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStylesFlagLoadsConfig(t *testing.T) {
	data := writeFile(t, "people.yaml", peopleYAML)
	styles := writeFile(t, "styles.yaml", "table:\n  placeholder: nothing here\n")
	empty := writeFile(t, "empty.yaml", "[]\n")

	out, err := execute(t, "--styles", styles, "table", "--data", empty, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing here")

	bad := writeFile(t, "bad.yaml", "theme: neon\n")
	_, err = execute(t, "--styles", bad, "table", "--data", data)
	require.Error(t, err)
}

func TestBarCommand(t *testing.T) {
	out, err := execute(t, "bar", "50", "Half", "--width", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Half")

	out, err = execute(t, "bar", "--width", "10", "--", "-40%")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = execute(t, "bar", "10", "--width", "-1")
	require.Error(t, err)
}

func TestRatingCommand(t *testing.T) {
	out, err := execute(t, "rating", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3/5")
	assert.Equal(t, 5, countRune(out, '★'))

	_, err = execute(t, "rating", "6")
	require.Error(t, err)

	_, err = execute(t, "rating", "three")
	require.Error(t, err)
}

func TestShowcaseRendersStaticWhenNotTerminal(t *testing.T) {
	out, err := execute(t, "showcase", "--rating", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "tuikit showcase")
	assert.Contains(t, out, "2/5")

	_, err = execute(t, "showcase", "--rating", "9")
	require.Error(t, err)
}

func TestShowcaseDataWithoutRecordsShowsPlaceholder(t *testing.T) {
	docs := map[string]string{
		"null":         "~\n",
		"empty":        "",
		"columns only": "columns: [id, name]\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			data := writeFile(t, "data.yaml", doc)

			out, err := execute(t, "showcase", "--data", data)
			require.NoError(t, err)
			assert.Contains(t, out, "No data available")
			assert.NotContains(t, out, "John")
		})
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
