package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHighlight(t *testing.T) {
	tests := []struct {
		expr string
		want highlightRule
	}{
		{expr: "age>=30", want: highlightRule{column: "age", operator: ">=", operand: "30"}},
		{expr: "age <= 30", want: highlightRule{column: "age", operator: "<=", operand: "30"}},
		{expr: "name=John", want: highlightRule{column: "name", operator: "=", operand: "John"}},
		{expr: "name!=John", want: highlightRule{column: "name", operator: "!=", operand: "John"}},
		{expr: "age<5", want: highlightRule{column: "age", operator: "<", operand: "5"}},
		{expr: "name=a>b", want: highlightRule{column: "name", operator: "=", operand: "a>b"}},
		{expr: "note!=x>=y", want: highlightRule{column: "note", operator: "!=", operand: "x>=y"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			rule, err := parseHighlight(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule)
		})
	}

	_, err := parseHighlight("age")
	require.Error(t, err)
	_, err = parseHighlight(">=3")
	require.Error(t, err)
}

func TestHighlightRuleMatches(t *testing.T) {
	ge := highlightRule{column: "age", operator: ">=", operand: "30"}
	assert.True(t, ge.matches(30))
	assert.True(t, ge.matches(41.5))
	assert.False(t, ge.matches(25))
	assert.False(t, ge.matches("n/a"))

	eq := highlightRule{column: "name", operator: "=", operand: "John"}
	assert.True(t, eq.matches("John"))
	assert.False(t, eq.matches("Alice"))

	ne := highlightRule{column: "name", operator: "!=", operand: "John"}
	assert.True(t, ne.matches(nil))
}

func TestStyleHooks(t *testing.T) {
	header, cell := styleHooks(nil)
	assert.Nil(t, header)
	assert.Nil(t, cell)

	header, cell = styleHooks([]highlightRule{{column: "age", operator: ">", operand: "26"}})
	assert.Equal(t, highlightedHeader, header("age"))
	assert.Empty(t, header("name"))
	assert.Equal(t, highlightedCell, cell("age", 30))
	assert.Empty(t, cell("age", 25))
	assert.Empty(t, cell("name", 30))
}
