package components

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleToken is an opaque style identifier, the terminal analogue of a CSS
// class name. Widgets never interpret tokens; a StyleSheet gives them a look.
type StyleToken string

// Well-known tokens the widgets attach on their own.
const (
	ClassTable       StyleToken = "table"
	ClassNoData      StyleToken = "no-data"
	ClassModal       StyleToken = "modal"
	ClassSidebar     StyleToken = "sidebar"
	ClassOpen        StyleToken = "open"
	ClassCloseButton StyleToken = "close-btn"
	ClassStarOn      StyleToken = "on"
	ClassStarOff     StyleToken = "off"
	ClassBarPositive StyleToken = "bar-positive"
	ClassBarNegative StyleToken = "bar-negative"
	ClassHeader      StyleToken = "header"
)

// ClassList is an ordered list of non-empty style tokens.
type ClassList []StyleToken

// NewClassList builds a class list. Tokens holding several whitespace
// separated names are split, and empty tokens are dropped.
func NewClassList(tokens ...StyleToken) ClassList {
	var list ClassList
	return list.With(tokens...)
}

// With returns a copy of the list with tokens appended.
func (c ClassList) With(tokens ...StyleToken) ClassList {
	out := make(ClassList, len(c), len(c)+len(tokens))
	copy(out, c)
	for _, token := range tokens {
		for _, name := range strings.Fields(string(token)) {
			out = append(out, StyleToken(name))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Has reports whether token is part of the list.
func (c ClassList) Has(token StyleToken) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

// Strings returns the tokens as plain strings.
func (c ClassList) Strings() []string {
	out := make([]string, len(c))
	for i, t := range c {
		out[i] = string(t)
	}
	return out
}

// String joins the tokens with single spaces, like a class attribute.
func (c ClassList) String() string {
	return strings.Join(c.Strings(), " ")
}

// StyleSheet maps style tokens to style rules. Rules for several tokens
// are layered in class order, later tokens winning on conflicts.
// A nil *StyleSheet resolves every token to nothing.
type StyleSheet struct {
	rules map[StyleToken][]StyleFunc
}

// NewStyleSheet creates an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{rules: make(map[StyleToken][]StyleFunc)}
}

// Define replaces the rule for token.
func (s *StyleSheet) Define(token StyleToken, funcs ...StyleFunc) *StyleSheet {
	s.rules[token] = append([]StyleFunc(nil), funcs...)
	return s
}

// Extend appends style functions to the rule for token.
func (s *StyleSheet) Extend(token StyleToken, funcs ...StyleFunc) *StyleSheet {
	s.rules[token] = append(s.rules[token], funcs...)
	return s
}

// Has reports whether the sheet defines token.
func (s *StyleSheet) Has(token StyleToken) bool {
	if s == nil {
		return false
	}
	_, ok := s.rules[token]
	return ok
}

// Tokens lists the defined tokens in sorted order.
func (s *StyleSheet) Tokens() []StyleToken {
	if s == nil {
		return nil
	}
	tokens := make([]StyleToken, 0, len(s.rules))
	for token := range s.rules {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}

// Apply layers the rules for tokens onto base. Unknown tokens are ignored.
func (s *StyleSheet) Apply(base lipgloss.Style, theme Theme, tokens ...StyleToken) lipgloss.Style {
	if s == nil {
		return base
	}
	for _, token := range tokens {
		for _, fn := range s.rules[token] {
			base = fn(base, theme)
		}
	}
	return base
}

// Merge returns a new sheet holding the rules of s overridden by other.
func (s *StyleSheet) Merge(other *StyleSheet) *StyleSheet {
	merged := NewStyleSheet()
	if s != nil {
		for token, funcs := range s.rules {
			merged.rules[token] = funcs
		}
	}
	if other != nil {
		for token, funcs := range other.rules {
			merged.rules[token] = funcs
		}
	}
	return merged
}

// DefaultStyleSheet returns the rules for the tokens the widgets attach
// themselves, plus a couple of highlight tokens handy for style hooks.
func DefaultStyleSheet() *StyleSheet {
	return NewStyleSheet().
		Define(ClassTable, BorderColor(PaletteNeutral)).
		Define(ClassNoData, Typography(TypographyVariantSubtitle), Italic()).
		Define(ClassHeader,
			Background(PalettePrimary),
			Bold(),
			PaddingX(SpacingSizeSmall),
		).
		Define(ClassModal,
			Border(BorderVariantRounded),
			BorderColor(PalettePrimary),
			Padding(SpacingSizeSmall),
		).
		Define(ClassCloseButton, Foreground(PaletteDanger), Bold()).
		Define(ClassSidebar,
			Border(BorderVariantNormal),
			BorderColor(PaletteNeutral),
			PaddingX(SpacingSizeSmall),
		).
		Define(ClassOpen, BorderColor(PalettePrimary)).
		Define(ClassStarOn, Foreground(PaletteWarning)).
		Define(ClassStarOff, Foreground(PaletteNeutral), Faint()).
		Define(ClassBarPositive, Background(PalettePositive)).
		Define(ClassBarNegative, Background(PaletteNegative)).
		Define("highlighted-cell", Foreground(PaletteWarning), Bold()).
		Define("highlighted-header", Foreground(PalettePrimary), Underline())
}
