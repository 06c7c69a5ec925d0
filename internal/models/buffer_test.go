package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferEditClearsMarks(t *testing.T) {
	b := NewBuffer(White, Black, DefaultFont)
	b.SetText("abc abc")
	b.Mark([]Match{{0, 3}, {4, 7}})

	b.SetText("abc abc!")
	assert.Empty(t, b.Matches())
}

func TestBufferListeners(t *testing.T) {
	b := NewBuffer(White, Black, DefaultFont)
	calls := 0
	b.AddListener(func(*Buffer) { calls++ })

	b.SetText("x")
	b.SetText("x")
	b.SetColors(White, Black)
	b.SetColors("#333333", White)
	b.Replace("x")
	b.ClearMarks()

	assert.Equal(t, 3, calls)
}

func TestBufferMatchesIsCopy(t *testing.T) {
	b := NewBuffer(White, Black, DefaultFont)
	b.Mark([]Match{{0, 1}})
	got := b.Matches()
	got[0].Start = 9
	assert.Equal(t, []Match{{0, 1}}, b.Matches())
}
