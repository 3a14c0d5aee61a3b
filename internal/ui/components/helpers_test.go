package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
)

// visible strips escape sequences so assertions see what a user sees.
func visible(s string) string {
	return ansi.Strip(s)
}

// visibleLines returns the visible lines with trailing blanks removed.
func visibleLines(s string) []string {
	lines := strings.Split(visible(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func captureLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	return log, &buf
}
