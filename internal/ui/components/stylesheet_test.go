package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestClassList(t *testing.T) {
	t.Parallel()

	list := NewClassList("table", "", "  striped  compact ", "")

	assert.Equal(t, ClassList{"table", "striped", "compact"}, list)
	assert.Equal(t, "table striped compact", list.String())
	assert.True(t, list.Has("compact"))
	assert.False(t, list.Has(""))
	assert.Nil(t, NewClassList("", " "))
}

func TestClassListWithDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := NewClassList("a")
	first := base.With("b")
	second := base.With("c")

	assert.Equal(t, ClassList{"a", "b"}, first)
	assert.Equal(t, ClassList{"a", "c"}, second)
}

func TestStyleSheetApplyOrder(t *testing.T) {
	t.Parallel()

	sheet := NewStyleSheet().
		Define("red", TextColor("#ff0000")).
		Define("blue", TextColor("#0000ff"))
	theme := DefaultTheme()

	got := sheet.Apply(lipgloss.NewStyle(), theme, "red", "blue")
	assert.Equal(t, lipgloss.Color("#0000ff"), got.GetForeground())

	got = sheet.Apply(lipgloss.NewStyle(), theme, "blue", "red", "unknown")
	assert.Equal(t, lipgloss.Color("#ff0000"), got.GetForeground())
}

func TestStyleSheetExtendAndMerge(t *testing.T) {
	t.Parallel()

	base := NewStyleSheet().Define("cell", Bold())
	base.Extend("cell", Italic())

	style := base.Apply(lipgloss.NewStyle(), DefaultTheme(), "cell")
	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())

	merged := base.Merge(NewStyleSheet().Define("cell", Underline()).Define("extra"))
	style = merged.Apply(lipgloss.NewStyle(), DefaultTheme(), "cell")
	assert.False(t, style.GetBold())
	assert.True(t, style.GetUnderline())
	assert.Equal(t, []StyleToken{"cell", "extra"}, merged.Tokens())
}

func TestNilStyleSheet(t *testing.T) {
	t.Parallel()

	var sheet *StyleSheet
	base := lipgloss.NewStyle().Bold(true)

	assert.Equal(t, base, sheet.Apply(base, DefaultTheme(), ClassModal))
	assert.False(t, sheet.Has(ClassModal))
	assert.Nil(t, sheet.Tokens())
}

func TestDefaultStyleSheetCoversWidgetTokens(t *testing.T) {
	t.Parallel()

	sheet := DefaultStyleSheet()
	for _, token := range []StyleToken{
		ClassTable, ClassNoData, ClassModal, ClassSidebar, ClassOpen, ClassCloseButton,
		ClassStarOn, ClassStarOff, ClassBarPositive, ClassBarNegative, ClassHeader,
	} {
		assert.True(t, sheet.Has(token), "token %q", token)
	}
}

func TestResolveStyleLayersClasses(t *testing.T) {
	t.Parallel()

	text := NewText("x").WithAppliers(Bold()).WithClasses("warn")
	ctx := DefaultContext().WithStyles(NewStyleSheet().Define("warn", TextColor("#ffaa00")))

	style := text.ResolveStyle(ctx)
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.Color("#ffaa00"), style.GetForeground())
}
