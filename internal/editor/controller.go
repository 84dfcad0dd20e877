package editor

import (
	"github.com/jask/tkdraft/internal/layout"
)

// Controller translates pointer and drop events into layout model mutations.
// Coordinates are canvas-relative model pixels; the terminal UI converts cell
// positions before calling in, so the state machine stays independent of the
// rendering surface.
//
// A drag gesture runs from a pointer-down over a widget to the next
// pointer-up, anywhere. The pointer's offset from the widget's top-left is
// recorded at the start of the gesture so the widget doesn't jump to the
// cursor position.
type Controller struct {
	model *layout.Model

	dragID string // "" when idle
	offX   int
	offY   int
}

// NewController returns a controller over m.
func NewController(m *layout.Model) *Controller {
	return &Controller{model: m}
}

// Drop handles a placement event carrying a widget type tag and a canvas
// point. An empty or unrecognized tag is silently ignored (the original
// editor swallows these); callers may surface a diagnostic but must not
// treat it as an error. Returns the new widget's id when a drop succeeds.
func (c *Controller) Drop(tag string, x, y int) (string, bool) {
	if !layout.Known(tag) {
		return "", false
	}
	return c.model.Create(layout.Kind(tag), x, y), true
}

// PointerDown selects the topmost widget under the pointer and starts a drag
// gesture on it. A press on the canvas background changes nothing: there is
// no deselect-on-background-click. Returns the hit widget's id, if any.
func (c *Controller) PointerDown(x, y int) (string, bool) {
	w, ok := c.hitTest(x, y)
	if !ok {
		return "", false
	}
	c.model.Select(w.ID)
	c.dragID = w.ID
	c.offX = x - w.X
	c.offY = y - w.Y
	return w.ID, true
}

// PointerMove repositions the dragged widget so its top-left tracks the
// cursor minus the recorded grab offset. Positions are not clamped and every
// move event is applied. No-op when no drag is in progress.
func (c *Controller) PointerMove(x, y int) {
	if c.dragID == "" {
		return
	}
	c.model.Move(c.dragID, x-c.offX, y-c.offY)
}

// PointerUp ends the drag gesture, wherever the pointer is.
func (c *Controller) PointerUp() {
	c.dragID = ""
	c.offX, c.offY = 0, 0
}

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragID != ""
}

// hitTest returns the topmost widget containing (x, y). Later widgets in
// insertion order draw on top, so the scan runs back to front.
func (c *Controller) hitTest(x, y int) (layout.Widget, bool) {
	snap := c.model.Snapshot()
	for i := len(snap) - 1; i >= 0; i-- {
		w := snap[i]
		if x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height {
			return w, true
		}
	}
	return layout.Widget{}, false
}
