package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
)

// RatingLevels is the number of stars a Rating shows.
const RatingLevels = 5

const (
	starGlyph = "★"
	// starCells is the width of one rendered star, glyph plus padding.
	starCells = 3
)

// RatingProps configures a Rating. Committed is owned by the caller and
// changes only when the caller feeds a new value back in.
type RatingProps struct {
	Committed *int      `validate:"required,min=0,max=5"`
	Update    func(int) `validate:"required"`
}

// Rating is a five star selector with a transient hover preview.
type Rating struct {
	BaseComponent
	committed int
	hover     int
	update    func(int)
	keys      RatingKeyMap

	originX, originY int
	pointerInside    bool

	err error
	log *logger.Logger
}

// NewRating creates a rating selector.
func NewRating(props RatingProps, opts ...Option) *Rating {
	o := applyOptions(opts)
	r := &Rating{
		BaseComponent: NewBaseComponent(),
		keys:          DefaultRatingKeyMap(),
		log:           o.log.WithComponent("rating"),
	}
	r.SetProps(props)
	return r
}

// SetProps applies new props. The hover preview is kept.
func (r *Rating) SetProps(props RatingProps) {
	r.err = validateProps("Rating", props)
	reportInputErrors(r.log, r.err)

	r.committed = 0
	if props.Committed != nil && *props.Committed >= 0 && *props.Committed <= RatingLevels {
		r.committed = *props.Committed
	}
	r.update = props.Update
	if r.update == nil {
		r.update = noopInt
	}
}

// Committed returns the committed value last supplied by the caller.
func (r *Rating) Committed() int {
	return r.committed
}

// Hover returns the hover preview, 0 when there is none.
func (r *Rating) Hover() int {
	return r.hover
}

// Display is the value the stars show: the preview when set, the committed
// value otherwise.
func (r *Rating) Display() int {
	if r.hover != 0 {
		return r.hover
	}
	return r.committed
}

// LevelOn reports whether star level is lit.
func (r *Rating) LevelOn(level int) bool {
	return level >= 1 && level <= r.Display()
}

// States returns the lit state of levels 1 through 5.
func (r *Rating) States() []bool {
	states := make([]bool, RatingLevels)
	for i := range states {
		states[i] = r.LevelOn(i + 1)
	}
	return states
}

// LevelClass returns the style token of star level.
func (r *Rating) LevelClass(level int) StyleToken {
	if r.LevelOn(level) {
		return ClassStarOn
	}
	return ClassStarOff
}

// PointerEnter previews level. Levels outside 1..5 are ignored.
func (r *Rating) PointerEnter(level int) {
	if level < 1 || level > RatingLevels {
		return
	}
	r.hover = level
}

// PointerLeave resets the preview to the committed value.
func (r *Rating) PointerLeave() {
	r.hover = r.committed
}

// Select reports level to the update callback, once, whatever the preview.
func (r *Rating) Select(level int) {
	if level < 1 || level > RatingLevels {
		r.log.Warn(fmt.Sprintf("ignoring selection of level %d", level))
		return
	}
	r.log.WithFields(map[string]any{"level": level}).Debug("rating selected")
	r.update(level)
}

// SetOrigin records the screen cell where the first star is drawn, so
// mouse events can be mapped to levels.
func (r *Rating) SetOrigin(x, y int) {
	r.originX, r.originY = x, y
}

// LevelAt returns the level drawn at screen cell (x, y), or 0.
func (r *Rating) LevelAt(x, y int) int {
	if y != r.originY || x < r.originX {
		return 0
	}
	level := (x-r.originX)/starCells + 1
	if level > RatingLevels {
		return 0
	}
	return level
}

// Update maps key presses and mouse events onto pointer enter, pointer
// leave and selection.
func (r *Rating) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		r.handleKey(msg)
	case tea.MouseMsg:
		r.handleMouse(msg)
	}
	return nil
}

func (r *Rating) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, r.keys.Prev):
		if d := r.Display(); d > 1 {
			r.PointerEnter(d - 1)
		}
	case key.Matches(msg, r.keys.Next):
		if d := r.Display(); d < RatingLevels {
			r.PointerEnter(d + 1)
		}
	case key.Matches(msg, r.keys.Select):
		if d := r.Display(); d >= 1 {
			r.Select(d)
		}
	case key.Matches(msg, r.keys.Direct):
		if level, err := strconv.Atoi(msg.String()); err == nil {
			r.Select(level)
		}
	case key.Matches(msg, r.keys.Leave):
		r.PointerLeave()
	}
}

func (r *Rating) handleMouse(msg tea.MouseMsg) {
	level := r.LevelAt(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if level > 0 {
			r.Select(level)
		}
	case msg.Action == tea.MouseActionMotion:
		if level > 0 {
			r.pointerInside = true
			r.PointerEnter(level)
			return
		}
		if r.pointerInside {
			r.pointerInside = false
			r.PointerLeave()
		}
	}
}

// KeyMap returns the rating bindings for help rendering.
func (r *Rating) KeyMap() RatingKeyMap {
	return r.keys
}

// Err returns the input validation errors of the last props, if any.
func (r *Rating) Err() error {
	return r.err
}

// View renders the stars with the default context.
func (r *Rating) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the five stars side by side.
func (r *Rating) ViewWithContext(ctx RenderContext) string {
	row := HStack()
	for level := 1; level <= RatingLevels; level++ {
		row.Add(NewButton(" " + starGlyph + " ").
			WithAriaLabel(fmt.Sprintf("%d stars", level)).
			WithClasses(r.LevelClass(level)))
	}
	row.SetClasses(r.Classes()...)
	return row.ViewWithContext(ctx)
}
