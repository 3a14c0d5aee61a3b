// Package components provides theme-aware presentational widgets for
// terminal applications, rendered with lipgloss and driven by bubbletea
// messages.
//
// # Overview
//
// Every widget maps a props struct to a visual structure. Widgets hold at
// most a little transient state (a hover preview, a key subscription); the
// data they show is owned by the caller and supplied again whenever it
// changes.
//
// Widgets:
//   - Table: a grid of header and body cells derived from a record set
//   - Bar: a signed percentage drawn as a coloured bar
//   - HeaderBanner: a message banner with pass-through attributes
//   - Modal: a dialog shown while open, dismissed by Escape or its close control
//   - Sidebar: a collapsible side panel
//   - Rating: a five star selector with a hover preview
//
// Building blocks:
//   - Text, Button, Divider
//   - Stack, Container
//
// # Style tokens
//
// Widgets attach opaque StyleTokens to their parts, the way markup carries
// class names. A StyleSheet gives tokens their look:
//
//	sheet := components.DefaultStyleSheet().
//		Define("highlighted-cell", components.Foreground(components.PaletteWarning), components.Bold())
//
//	table := components.NewTable(components.TableProps{
//		Records: records,
//		CellStyle: func(column string, value any) components.StyleToken {
//			if column == "age" {
//				return "highlighted-cell"
//			}
//			return ""
//		},
//	})
//
//	out := table.ViewWithContext(components.DefaultContext().WithStyles(sheet))
//
// Tokens the sheet does not define are ignored.
//
// # Context-based rendering
//
// All widgets implement View and ViewWithContext. The RenderContext carries
// the theme, the style sheet and the space offered by the parent:
//
//	ctx := components.DefaultContext().
//		WithTheme(components.DarkTheme()).
//		WithSize(80, 24)
//	out := modal.ViewWithContext(ctx)
//
// # Input
//
// Interactive widgets take bubbletea messages through Update. The modal
// listens for Escape on a KeyBus; attach a shared bus with WithKeyBus when
// the host dispatches keys itself.
//
// # Validation
//
// Required props are checked when a widget is created or given new props.
// Violations are logged, exposed through Err, and replaced by defaults.
package components
