package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

func decode(t *testing.T, doc string) (*Dataset, error) {
	t.Helper()
	return Decode(strings.NewReader(doc), "test.yaml")
}

func TestDecodeKeepsKeyOrder(t *testing.T) {
	ds, err := decode(t, `
- {id: 1, name: John, age: 30}
- {id: 2, name: Alice, age: 25}
`)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	assert.Equal(t, []string{"id", "name", "age"}, ds.Records[0].Keys())
	v, _ := ds.Records[1].Get("name")
	assert.Equal(t, "Alice", v)
	v, _ = ds.Records[1].Get("age")
	assert.Equal(t, 25, v)
}

func TestDecodeJSON(t *testing.T) {
	ds, err := decode(t, `[{"zeta": 1.5, "alpha": true, "mid": null, "tag": "x"}]`)
	require.NoError(t, err)

	r := ds.Records[0]
	assert.Equal(t, []string{"zeta", "alpha", "mid", "tag"}, r.Keys())
	v, _ := r.Get("zeta")
	assert.Equal(t, 1.5, v)
	v, _ = r.Get("alpha")
	assert.Equal(t, true, v)
	v, ok := r.Get("mid")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDecodeEnvelope(t *testing.T) {
	ds, err := decode(t, `
columns: [name, id]
records:
  - id: 1
    name: John
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "id"}, ds.Columns)
	assert.Len(t, ds.Records, 1)
}

func TestDecodeEmpty(t *testing.T) {
	for _, doc := range []string{"", "[]", "~"} {
		ds, err := decode(t, doc)
		require.NoError(t, err, "doc %q", doc)
		assert.Empty(t, ds.Records)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLine int
		contains string
	}{
		{name: "scalar root", doc: "hello", wantLine: 1, contains: "expected a list of records"},
		{name: "non mapping record", doc: "- 1\n- 2\n", wantLine: 1, contains: "record 0 is not a mapping"},
		{name: "nested value", doc: "- id: 1\n  tags: [a, b]\n", wantLine: 2, contains: "records[0].tags"},
		{name: "unknown envelope field", doc: "rows: []\n", wantLine: 1, contains: `unknown field "rows"`},
		{name: "syntax", doc: "- {id: 1\n", contains: "parse error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.doc)
			require.Error(t, err)

			var perr *tkerrors.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "test.yaml", perr.Path)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, perr.Line)
			}
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "name": "John"}]`), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, ds.Records[0].Keys())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var perr *tkerrors.ParseError
	require.True(t, errors.As(err, &perr))
}
