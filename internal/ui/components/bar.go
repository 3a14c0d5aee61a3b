package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

const (
	// DefaultFontSize is the label size used when BarProps.FontSize is empty.
	DefaultFontSize = "13px"
	// FullBar is the value assumed when none is supplied.
	FullBar = 100.0

	defaultTrackWidth = 40
)

// BarScheme is the colour scheme a bar picks from the sign of its value.
type BarScheme int

const (
	// BarNegative is used for zero and negative values.
	BarNegative BarScheme = iota
	// BarPositive is used for values above zero.
	BarPositive
)

func (s BarScheme) String() string {
	if s == BarPositive {
		return "positive"
	}
	return "negative"
}

// Class returns the style token carrying the scheme's colours.
func (s BarScheme) Class() StyleToken {
	if s == BarPositive {
		return ClassBarPositive
	}
	return ClassBarNegative
}

func (s BarScheme) slot() PaletteSlot {
	if s == BarPositive {
		return PalettePositive
	}
	return PaletteNegative
}

// BarProps configures a Bar.
type BarProps struct {
	// Value is a signed percentage. Numbers and numeric strings, with an
	// optional trailing "%", are accepted. nil means a full bar.
	Value any
	// FontSize is a CSS-like size such as "13px", "1rem" or "12pt".
	FontSize string
	Content  ui.Renderable
}

// BarLayout is the resolved geometry of a bar.
type BarLayout struct {
	Value      float64
	Percent    float64
	Scheme     BarScheme
	FontSize   string
	Typography TypographyVariant
}

// Bar is a horizontal bar whose length is the magnitude of a signed
// percentage and whose colours follow its sign.
type Bar struct {
	BaseComponent
	props BarProps
	value float64
	track int
	log   *logger.Logger
}

// NewBar creates a bar for props.
func NewBar(props BarProps, opts ...Option) *Bar {
	o := applyOptions(opts)
	if props.FontSize == "" {
		props.FontSize = DefaultFontSize
	}

	b := &Bar{
		BaseComponent: NewBaseComponent(),
		props:         props,
		log:           o.log.WithComponent("bar"),
	}

	value, err := ParseBarValue(props.Value)
	if err != nil {
		b.log.WarnErr(err, "unreadable bar value, drawing a full bar")
	}
	b.value = value
	b.SetClasses(b.Scheme().Class())
	return b
}

// ParseBarValue converts a bar value to a number. nil yields FullBar; a
// value that cannot be read yields FullBar and an error.
func ParseBarValue(v any) (float64, error) {
	switch value := v.(type) {
	case nil:
		return FullBar, nil
	case float64:
		return finiteOr(value)
	case float32:
		return finiteOr(float64(value))
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case string:
		text := strings.TrimSpace(value)
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
		if text == "" {
			return FullBar, nil
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return FullBar, fmt.Errorf("parse bar value %q: %w", value, err)
		}
		return finiteOr(parsed)
	default:
		return FullBar, fmt.Errorf("unsupported bar value type %T", v)
	}
}

func finiteOr(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FullBar, fmt.Errorf("bar value %v is not finite", v)
	}
	return v, nil
}

// Magnitude returns |v|. Only negative input is changed.
func Magnitude(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// SchemeFor returns the positive scheme for v > 0 and the negative one
// otherwise, zero included.
func SchemeFor(v float64) BarScheme {
	if v > 0 {
		return BarPositive
	}
	return BarNegative
}

// FontSizeVariant maps a CSS-like font size onto the typography scale.
// Unreadable sizes map to the default size's variant.
func FontSizeVariant(size string) TypographyVariant {
	px, ok := fontSizePixels(size)
	if !ok {
		return TypographyVariantTextSm
	}
	switch {
	case px < 12:
		return TypographyVariantTextXs
	case px < 14:
		return TypographyVariantTextSm
	case px < 16:
		return TypographyVariantTextBase
	case px < 18:
		return TypographyVariantTextLg
	case px < 20:
		return TypographyVariantTextXl
	case px < 24:
		return TypographyVariantText2Xl
	default:
		return TypographyVariantText3Xl
	}
}

var fontUnits = []struct {
	suffix string
	scale  float64
}{
	{"rem", 16},
	{"em", 16},
	{"px", 1},
	{"pt", 4.0 / 3.0},
}

func fontSizePixels(size string) (float64, bool) {
	text := strings.ToLower(strings.TrimSpace(size))
	scale := 1.0
	for _, unit := range fontUnits {
		if strings.HasSuffix(text, unit.suffix) {
			text = strings.TrimSuffix(text, unit.suffix)
			scale = unit.scale
			break
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n * scale, true
}

// Value returns the parsed signed value.
func (b *Bar) Value() float64 {
	return b.value
}

// Magnitude returns the bar length as a percentage.
func (b *Bar) Magnitude() float64 {
	return Magnitude(b.value)
}

// Scheme returns the colour scheme picked from the value's sign.
func (b *Bar) Scheme() BarScheme {
	return SchemeFor(b.value)
}

// Layout returns the resolved geometry.
func (b *Bar) Layout() BarLayout {
	return BarLayout{
		Value:      b.value,
		Percent:    b.Magnitude(),
		Scheme:     b.Scheme(),
		FontSize:   b.props.FontSize,
		Typography: FontSizeVariant(b.props.FontSize),
	}
}

// WithTrackWidth fixes the width, in cells, that a 100% bar fills.
func (b *Bar) WithTrackWidth(cells int) *Bar {
	b.track = cells
	return b
}

// Cells returns the bar length in cells for a track of the given width.
// The result never exceeds the track and is never negative.
func (b *Bar) Cells(track int) int {
	if track <= 0 {
		return 0
	}
	cells := int(math.Round(float64(track) * b.Magnitude() / 100))
	if cells > track {
		return track
	}
	return cells
}

// View renders the bar with the default context.
func (b *Bar) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar. The label sits inside the bar when it
// fits and follows it otherwise.
func (b *Bar) ViewWithContext(ctx RenderContext) string {
	track := b.track
	if track <= 0 {
		track = ctx.AvailableWidth(defaultTrackWidth)
	}
	cells := b.Cells(track)

	label := renderChild(b.props.Content, ctx)
	typo := TypographyStyle(ctx.Theme, FontSizeVariant(b.props.FontSize))
	style := b.ResolveStyle(ctx).Inherit(typo)

	labelWidth := lipgloss.Width(label)
	if label != "" && labelWidth+1 <= cells {
		return style.PaddingLeft(1).Width(cells).Render(label)
	}

	var bar string
	if cells > 0 {
		bar = style.Width(cells).Render("")
	}
	if label == "" {
		return bar
	}
	overflow := Foreground(b.Scheme().slot())(lipgloss.NewStyle(), ctx.Theme).Inherit(typo)
	return lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", overflow.Render(label))
}
