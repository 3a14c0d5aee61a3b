package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("records.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "records.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "records.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("styles.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: styles.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("styles.highlight.fg", "must be a color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "styles.highlight.fg", validationErr.Field)
	require.Contains(t, err.Error(), "must be a color")
}

func TestMissingInputErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewMissingInputError("modal", "OnClose", "required")

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "modal", missing.Component)
	require.Equal(t, "OnClose", missing.Field)
	require.ErrorIs(t, err, ErrMissingInput)
	require.Equal(t, "modal: missing required input OnClose", err.Error())

	wrapped := fmt.Errorf("render: %w", err)
	require.ErrorIs(t, wrapped, ErrMissingInput)
}

func TestMissingInputErrorForRangeTag(t *testing.T) {
	t.Parallel()

	err := NewMissingInputError("rating", "Committed", "max")
	require.Equal(t, "rating: invalid input Committed (max)", err.Error())
}
