package config

import (
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Theme: "default"}
}

// ThemeValue returns the configured theme.
func (c *Config) ThemeValue() components.Theme {
	theme, err := components.ThemeByName(c.Theme)
	if err != nil {
		return components.DefaultTheme()
	}
	return theme
}

// StyleSheet returns the built-in style sheet with the configured tokens
// layered on top. A configured token replaces the built-in rule entirely.
func (c *Config) StyleSheet() *components.StyleSheet {
	custom := components.NewStyleSheet()

	for token, rule := range c.Styles {
		custom.Define(components.StyleToken(token), rule.funcs()...)
	}
	return components.DefaultStyleSheet().Merge(custom)
}

func (r StyleRule) funcs() []components.StyleFunc {
	var funcs []components.StyleFunc
	if r.Border != "" {
		if variant, err := components.ParseBorderVariant(r.Border); err == nil && variant != components.BorderVariantNone {
			funcs = append(funcs, components.Border(variant))
		}
	}
	if r.BorderColor != "" {
		funcs = append(funcs, components.LineColor(r.BorderColor))
	}
	if r.Fg != "" {
		funcs = append(funcs, components.TextColor(r.Fg))
	}
	if r.Bg != "" {
		funcs = append(funcs, components.FillColor(r.Bg))
	}
	if r.Padding != nil {
		funcs = append(funcs, components.Inset(*r.Padding))
	}
	if r.Bold {
		funcs = append(funcs, components.Bold())
	}
	if r.Italic {
		funcs = append(funcs, components.Italic())
	}
	if r.Underline {
		funcs = append(funcs, components.Underline())
	}
	if r.Faint {
		funcs = append(funcs, components.Faint())
	}
	return funcs
}

// TableBorder returns the configured table border, rounded by default.
func (c *Config) TableBorder() components.BorderVariant {
	if c.Table.Border == "" {
		return components.BorderVariantRounded
	}
	variant, err := components.ParseBorderVariant(c.Table.Border)
	if err != nil {
		return components.BorderVariantRounded
	}
	return variant
}
