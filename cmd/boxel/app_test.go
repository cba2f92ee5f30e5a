package main

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxel"
)

func newTestApp(t *testing.T, forceError bool) (*app, *[]string) {
	t.Helper()
	var frames []string
	out := boxel.FrameFunc(func(f string) error {
		frames = append(frames, f)
		return nil
	})
	size := boxel.Size{X: 60, Y: 20}
	w := boxel.NewWindow(size, out)
	return newApp(w, defaultLayout(size, forceError), log.New(io.Discard)), &frames
}

func TestDefaultLayoutDraws(t *testing.T) {
	a, _ := newTestApp(t, false)
	a.draw()

	buf := a.window.Buffer()
	assert.Equal(t, "╭", buf.Get(0, 0).Content)
	assert.Equal(t, "┌", buf.Get(0, 3).Content, "rule keeps its corners")
	assert.Equal(t, "╔", buf.Get(4, 5).Content)

	note, ok := a.window.Div("note")
	require.True(t, ok)
	assert.Equal(t, boxel.Point{X: 6, Y: 10}, note.Position)
}

func TestForcedErrorStillDraws(t *testing.T) {
	a, _ := newTestApp(t, true)
	a.draw()
	assert.Equal(t, "╔", a.window.Buffer().Get(4, 5).Content)
	_, ok := a.window.Div("note")
	assert.True(t, ok, "boxes after the failing one are drawn")
}

func TestHandleKey(t *testing.T) {
	a, _ := newTestApp(t, false)
	require.Equal(t, "mover", a.divs[a.focus].ID)

	assert.True(t, a.handleKey(boxel.Key{Name: "right"}))
	assert.True(t, a.handleKey(boxel.Key{Name: "down"}))
	assert.Equal(t, boxel.Point{X: 5, Y: 6}, a.divs[a.focus].Position)

	assert.False(t, a.handleKey(boxel.Key{Name: "x", Rune: 'x'}))

	assert.False(t, a.handleKey(boxel.Key{Name: "tab"}))
	assert.Equal(t, "clipped", a.divs[a.focus].ID)
}

func TestLoop(t *testing.T) {
	a, frames := newTestApp(t, false)

	err := a.loop(boxel.ReadKeys(strings.NewReader("\x1b[Cxq\x1b[C")))
	require.NoError(t, err)

	// first frame, one after the arrow, one after x; q stops before the last arrow
	assert.Len(t, *frames, 3)
	mover, _ := a.window.Div("mover")
	assert.Equal(t, boxel.Point{X: 5, Y: 5}, mover.Position)
	assert.Equal(t, "╔", a.window.Buffer().Get(5, 5).Content)
}
