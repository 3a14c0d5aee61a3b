package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

type updateRecorder struct {
	calls []int
}

func (u *updateRecorder) record(level int) {
	u.calls = append(u.calls, level)
}

func newTestRating(committed int) (*Rating, *updateRecorder) {
	rec := &updateRecorder{}
	return NewRating(RatingProps{Committed: Int(committed), Update: rec.record}), rec
}

func TestRatingReflectsCommittedValue(t *testing.T) {
	r, _ := newTestRating(3)

	assert.Equal(t, []bool{true, true, true, false, false}, r.States())
	assert.Equal(t, ClassStarOn, r.LevelClass(3))
	assert.Equal(t, ClassStarOff, r.LevelClass(4))
	require.NoError(t, r.Err())
}

func TestRatingHoverPreview(t *testing.T) {
	r, rec := newTestRating(3)

	r.PointerEnter(5)
	assert.Equal(t, []bool{true, true, true, true, true}, r.States())

	r.PointerLeave()
	assert.Equal(t, []bool{true, true, true, false, false}, r.States())
	assert.Equal(t, 3, r.Hover())
	assert.Empty(t, rec.calls, "hovering never commits")
}

func TestRatingLeaveUsesCurrentCommittedValue(t *testing.T) {
	r, rec := newTestRating(1)

	r.PointerEnter(4)
	r.SetProps(RatingProps{Committed: Int(2), Update: rec.record})
	r.PointerLeave()

	assert.Equal(t, 2, r.Display())
}

func TestRatingSelectCallsUpdateOnce(t *testing.T) {
	for level := 1; level <= RatingLevels; level++ {
		r, rec := newTestRating(3)
		r.PointerEnter(5)

		r.Select(level)

		assert.Equal(t, []int{level}, rec.calls)
		assert.Equal(t, 3, r.Committed(), "the caller owns the committed value")
	}
}

func TestRatingIgnoresOutOfRangeLevels(t *testing.T) {
	r, rec := newTestRating(2)

	r.PointerEnter(0)
	r.PointerEnter(6)
	r.Select(9)

	assert.Equal(t, 0, r.Hover())
	assert.Empty(t, rec.calls)
}

func TestRatingMissingInputs(t *testing.T) {
	log, buf := captureLogger(t)
	r := NewRating(RatingProps{}, WithLogger(log))

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, tkerrors.ErrMissingInput))
	assert.Contains(t, err.Error(), "Committed")
	assert.Contains(t, err.Error(), "Update")
	assert.Contains(t, buf.String(), "invalid widget input")

	assert.Equal(t, 0, r.Committed())
	assert.NotPanics(t, func() { r.Select(2) })
}

func TestRatingRejectsCommittedOutOfRange(t *testing.T) {
	r := NewRating(RatingProps{Committed: Int(7), Update: func(int) {}})

	var missing *tkerrors.MissingInputError
	require.True(t, errors.As(r.Err(), &missing))
	assert.Equal(t, "Committed", missing.Field)
	assert.Equal(t, "max", missing.Tag)
	assert.Equal(t, 0, r.Committed())
}

func TestRatingKeyboard(t *testing.T) {
	r, rec := newTestRating(2)

	r.Update(tea.KeyMsg{Type: tea.KeyRight})
	r.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 4, r.Hover())

	r.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, r.Hover())

	r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	assert.Equal(t, []int{3, 5}, rec.calls)

	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 2, r.Display())
}

func TestRatingMouse(t *testing.T) {
	r, rec := newTestRating(1)
	r.SetOrigin(10, 4)

	r.Update(tea.MouseMsg{X: 17, Y: 4, Action: tea.MouseActionMotion})
	assert.Equal(t, 3, r.Hover())

	r.Update(tea.MouseMsg{X: 17, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, r.Display(), "leaving the row resets the preview")

	r.Update(tea.MouseMsg{X: 23, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []int{5}, rec.calls)

	r.Update(tea.MouseMsg{X: 40, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Len(t, rec.calls, 1)
}

func TestRatingLevelAt(t *testing.T) {
	r, _ := newTestRating(0)
	assert.Equal(t, 1, r.LevelAt(0, 0))
	assert.Equal(t, 1, r.LevelAt(2, 0))
	assert.Equal(t, 2, r.LevelAt(3, 0))
	assert.Equal(t, 5, r.LevelAt(14, 0))
	assert.Equal(t, 0, r.LevelAt(15, 0))
	assert.Equal(t, 0, r.LevelAt(1, 1))
}

func TestRatingViewAlwaysShowsFiveStars(t *testing.T) {
	for _, committed := range []int{0, 3, 5} {
		r, _ := newTestRating(committed)
		assert.Equal(t, RatingLevels, strings.Count(visible(r.View()), starGlyph))
	}
}
