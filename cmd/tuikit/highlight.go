package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

const (
	highlightedCell   components.StyleToken = "highlighted-cell"
	highlightedHeader components.StyleToken = "highlighted-header"
)

// Longer operators first so ">=" wins over ">" at the same position.
var highlightOperators = []string{">=", "<=", "!=", ">", "<", "="}

// highlightRule marks the cells of one column whose value satisfies a
// comparison, e.g. "age>=30" or "name=John".
type highlightRule struct {
	column   string
	operator string
	operand  string
}

func parseHighlight(expr string) (highlightRule, error) {
	at, op := -1, ""
	for _, candidate := range highlightOperators {
		i := strings.Index(expr, candidate)
		if i >= 0 && (at < 0 || i < at) {
			at, op = i, candidate
		}
	}
	if at < 0 {
		return highlightRule{}, fmt.Errorf("invalid --highlight %q: expected COLUMN OP VALUE with one of %s", expr, strings.Join(highlightOperators, " "))
	}

	column := strings.TrimSpace(expr[:at])
	if column == "" {
		return highlightRule{}, fmt.Errorf("invalid --highlight %q: missing column", expr)
	}
	return highlightRule{column: column, operator: op, operand: strings.TrimSpace(expr[at+len(op):])}, nil
}

func (h highlightRule) matches(value any) bool {
	text := components.FormatValue(value)
	left, lerr := strconv.ParseFloat(text, 64)
	right, rerr := strconv.ParseFloat(h.operand, 64)
	if lerr == nil && rerr == nil {
		switch h.operator {
		case ">=":
			return left >= right
		case "<=":
			return left <= right
		case ">":
			return left > right
		case "<":
			return left < right
		case "=":
			return left == right
		case "!=":
			return left != right
		}
	}

	switch h.operator {
	case "=":
		return text == h.operand
	case "!=":
		return text != h.operand
	}
	return false
}

// styleHooks builds the table hooks for rules. Columns named by a rule get
// the highlighted header token.
func styleHooks(rules []highlightRule) (components.HeaderStyleFunc, components.CellStyleFunc) {
	if len(rules) == 0 {
		return nil, nil
	}

	header := func(column string) components.StyleToken {
		for _, rule := range rules {
			if rule.column == column {
				return highlightedHeader
			}
		}
		return ""
	}
	cell := func(column string, value any) components.StyleToken {
		for _, rule := range rules {
			if rule.column == column && rule.matches(value) {
				return highlightedCell
			}
		}
		return ""
	}
	return header, cell
}
