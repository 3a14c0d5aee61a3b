package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

const sampleConfig = `
theme: dark
styles:
  highlighted-cell:
    fg: "#ff8800"
    bold: true
  modal:
    border: double
    border_color: "212"
    padding: 2
bar:
  font_size: 18px
  width: 60
table:
  border: thick
  placeholder: Nothing to show
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "dark", cfg.ThemeValue().Name)
	assert.Equal(t, "18px", cfg.Bar.FontSize)
	assert.Equal(t, 60, cfg.Bar.Width)
	assert.Equal(t, components.BorderVariantThick, cfg.TableBorder())
	assert.Equal(t, "Nothing to show", cfg.Table.Placeholder)
	require.NotNil(t, cfg.Styles["modal"].Padding)
	assert.Equal(t, 2, *cfg.Styles["modal"].Padding)
}

func TestConfigStyleSheet(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleConfig), "inline")
	require.NoError(t, err)

	sheet := cfg.StyleSheet()
	theme := cfg.ThemeValue()

	cell := sheet.Apply(lipgloss.NewStyle(), theme, "highlighted-cell")
	assert.Equal(t, lipgloss.Color("#ff8800"), cell.GetForeground())
	assert.True(t, cell.GetBold())

	modal := sheet.Apply(lipgloss.NewStyle(), theme, components.ClassModal)
	assert.Equal(t, lipgloss.DoubleBorder(), modal.GetBorderStyle())
	assert.Equal(t, lipgloss.Color("212"), modal.GetBorderTopForeground())
	assert.Equal(t, 2, modal.GetPaddingLeft())

	assert.True(t, sheet.Has(components.ClassSidebar), "built-in tokens stay defined")
}

func TestParseEmptyConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil, "empty")
	require.NoError(t, err)
	assert.Equal(t, components.BorderVariantRounded, cfg.TableBorder())
	assert.Equal(t, "default", cfg.ThemeValue().Name)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantField string
		wantLine  int
	}{
		{name: "unknown theme", doc: "theme: neon\n", wantField: "theme"},
		{name: "bad colour", doc: "styles:\n  cell:\n    fg: orange\n", wantField: "styles[cell].fg"},
		{name: "ansi out of range", doc: "styles:\n  cell:\n    bg: \"300\"\n", wantField: "styles[cell].bg"},
		{name: "bad token", doc: "styles:\n  \"two words\":\n    bold: true\n", wantField: "styles[two words]"},
		{name: "bad border", doc: "table:\n  border: dotted\n", wantField: "table.border"},
		{name: "bad font size", doc: "bar:\n  font_size: big\n", wantField: "bar.font_size"},
		{name: "padding too large", doc: "styles:\n  cell:\n    padding: 9\n", wantField: "styles[cell].padding"},
		{name: "unknown field", doc: "theme: dark\ncolours: {}\n", wantLine: 2},
		{name: "syntax", doc: "theme: [dark\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc), "styles.yaml")
			require.Error(t, err)

			if tt.wantField != "" {
				var verr *tkerrors.ValidationError
				require.True(t, errors.As(err, &verr), "got %v", err)
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}

			var perr *tkerrors.ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, "styles.yaml", perr.Path)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, perr.Line)
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	var perr *tkerrors.ParseError
	require.True(t, errors.As(err, &perr))
}

func TestIsColor(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"#fff", "#A1B2C3", "0", "255"} {
		assert.True(t, isColor(ok), ok)
	}
	for _, bad := range []string{"", "#ffff", "256", "-1", "red"} {
		assert.False(t, isColor(bad), bad)
	}
}
