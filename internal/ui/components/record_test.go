package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	r := R("zeta", 1, "alpha", 2, "mid", 3)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())
	assert.Equal(t, 3, r.Len())
}

func TestRecordSetExistingKeyKeepsPosition(t *testing.T) {
	t.Parallel()

	r := R("id", 1, "name", "John")
	updated := r.Set("id", 7)

	assert.Equal(t, []string{"id", "name"}, updated.Keys())
	v, ok := updated.Get("id")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, _ = r.Get("id")
	assert.Equal(t, 1, v, "Set leaves the original untouched")
}

func TestRecordGetMissing(t *testing.T) {
	t.Parallel()

	var r Record
	v, ok := r.Get("anything")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Empty(t, r.Keys())
}

func TestRecordOddArguments(t *testing.T) {
	t.Parallel()

	r := R("a", 1, 2, "two", "dangling")
	assert.Equal(t, []string{"a", "2", "dangling"}, r.Keys())
	v, ok := r.Get("dangling")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"John", "John"},
		{30, "30"},
		{int64(-4), "-4"},
		{2.0, "2"},
		{2.5, "2.5"},
		{float32(0.25), "0.25"},
		{true, "true"},
		{false, "false"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in), "value %#v", tt.in)
	}
}
