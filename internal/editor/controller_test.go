package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tkdraft/internal/layout"
)

func TestDropCreatesAndSelects(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, ok := c.Drop("Button", 10, 10)
	require.True(t, ok)
	require.Equal(t, id, m.SelectedID())

	w, found := m.Get(id)
	require.True(t, found)
	require.Equal(t, 10, w.X)
	require.Equal(t, 10, w.Y)
	require.Equal(t, 100, w.Width)
	require.Equal(t, 30, w.Height)
	require.Equal(t, "Button", w.Text)
}

func TestDropIgnoresUnknownTag(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	for _, tag := range []string{"", "Buton", "canvas", "button"} {
		_, ok := c.Drop(tag, 0, 0)
		require.False(t, ok, "tag %q should be ignored", tag)
	}
	require.Equal(t, 0, m.Len())
}

func TestPointerDownSelectsTopmost(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	under, _ := c.Drop("Frame", 0, 0) // 150x100
	over, _ := c.Drop("Button", 20, 20)

	// point inside both widgets: the later one wins
	id, hit := c.PointerDown(25, 25)
	require.True(t, hit)
	require.Equal(t, over, id)
	require.Equal(t, over, m.SelectedID())
	c.PointerUp()

	// point only inside the frame
	id, hit = c.PointerDown(5, 80)
	require.True(t, hit)
	require.Equal(t, under, id)
	c.PointerUp()
}

func TestBackgroundPressChangesNothing(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, _ := c.Drop("Button", 10, 10)
	before := m.Snapshot()

	_, hit := c.PointerDown(500, 500)
	require.False(t, hit)
	require.False(t, c.Dragging())
	require.Equal(t, id, m.SelectedID(), "background press must not deselect")
	require.Equal(t, before, m.Snapshot())
}

func TestDragTracksGrabOffset(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, _ := c.Drop("Button", 10, 10)

	// grab 5,5 inside the widget
	_, hit := c.PointerDown(15, 15)
	require.True(t, hit)
	require.True(t, c.Dragging())

	c.PointerMove(50, 60)
	w, _ := m.Get(id)
	require.Equal(t, 45, w.X)
	require.Equal(t, 55, w.Y)

	// intermediate moves don't matter; the final cursor position decides
	c.PointerMove(200, 300)
	c.PointerMove(50, 60)
	w, _ = m.Get(id)
	require.Equal(t, 45, w.X)
	require.Equal(t, 55, w.Y)
}

func TestDragMayLeaveCanvas(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, _ := c.Drop("Button", 0, 0)
	c.PointerDown(1, 1)
	c.PointerMove(-100, -100)
	w, _ := m.Get(id)
	require.Equal(t, -101, w.X)
	require.Equal(t, -101, w.Y)
}

func TestPointerUpEndsGesture(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, _ := c.Drop("Button", 10, 10)
	c.PointerDown(15, 15)
	c.PointerUp()
	require.False(t, c.Dragging())

	// moves after release must not leak into the ended gesture
	c.PointerMove(999, 999)
	w, _ := m.Get(id)
	require.Equal(t, 10, w.X)
	require.Equal(t, 10, w.Y)
}

func TestMoveWithoutGestureIsNoOp(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)
	c.Drop("Label", 3, 4)
	before := m.Snapshot()

	c.PointerMove(100, 100)
	require.Equal(t, before, m.Snapshot())
}

// Mirrors the full editing session: drop, edit, drag, snapshot.
func TestEditSessionEndToEnd(t *testing.T) {
	t.Parallel()

	m := layout.NewModel()
	c := NewController(m)

	id, ok := c.Drop("Button", 10, 10)
	require.True(t, ok)
	w, _ := m.Get(id)
	require.Equal(t, layout.Widget{ID: id, Kind: layout.KindButton, X: 10, Y: 10, Width: 100, Height: 30, Text: "Button"}, w)
	require.Equal(t, id, m.SelectedID())

	m.SetProperty(id, layout.PropText, "Submit")
	w, _ = m.Get(id)
	require.Equal(t, "Submit", w.Text)
	require.Equal(t, 10, w.X)
	require.Equal(t, 100, w.Width)

	c.PointerDown(15, 15) // offset (5,5)
	c.PointerMove(50, 60)
	c.PointerUp()

	snap := m.Snapshot()
	require.Len(t, snap, 1)
	require.Equal(t, layout.Widget{ID: id, Kind: layout.KindButton, X: 45, Y: 55, Width: 100, Height: 30, Text: "Submit"}, snap[0])
}
