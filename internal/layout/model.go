package layout

import (
	"fmt"
	"strconv"
)

// Widget is one placed instance on the canvas. Geometry is in pixels of the
// generated Tkinter window, not terminal cells.
type Widget struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Text   string `json:"text"`
}

// Model is the authoritative in-memory store of all placed widgets and the
// current selection. All mutation goes through its methods; the renderer and
// the exporter only ever see Snapshot copies. Insertion order is stable and
// doubles as z-order (later entries draw on top) and export order.
type Model struct {
	widgets  []Widget
	selected string // id, "" when nothing is selected
	nextID   int
}

// NewModel returns an empty model for one editing session.
func NewModel() *Model {
	return &Model{nextID: 1}
}

// Create appends a new widget of the given kind at (x, y) with the catalog's
// default size and text, selects it, and returns its id. Ids are unique for
// the session and never reused.
func (m *Model) Create(kind Kind, x, y int) string {
	d := DefaultsFor(kind)
	id := fmt.Sprintf("w%d", m.nextID)
	m.nextID++
	m.widgets = append(m.widgets, Widget{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		Width:  d.Width,
		Height: d.Height,
		Text:   d.Text,
	})
	m.selected = id
	return id
}

// Select sets the selection to id if such a widget exists, otherwise clears
// it. Selecting an unknown id is not an error, it just means "no selection".
func (m *Model) Select(id string) {
	if m.indexOf(id) < 0 {
		m.selected = ""
		return
	}
	m.selected = id
}

// Move overwrites the widget's position. Positions are deliberately not
// clamped: dragging a widget off-canvas is allowed. Unknown id is a no-op.
func (m *Model) Move(id string, x, y int) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}
	m.widgets[i].X = x
	m.widgets[i].Y = y
}

// Property keys accepted by SetProperty.
const (
	PropText   = "text"
	PropX      = "x"
	PropY      = "y"
	PropWidth  = "width"
	PropHeight = "height"
)

// SetProperty updates one field of a widget. Text is stored raw. Numeric
// keys are parsed as integers with a failed parse coerced to 0, so a field
// is never left in an undefined state. Width and height additionally floor
// at 0; positions may go negative (off-canvas is allowed). Unknown id or
// key is a no-op.
func (m *Model) SetProperty(id, key, value string) {
	i := m.indexOf(id)
	if i < 0 {
		return
	}
	w := &m.widgets[i]
	switch key {
	case PropText:
		w.Text = value
	case PropX:
		w.X = parseIntOrZero(value)
	case PropY:
		w.Y = parseIntOrZero(value)
	case PropWidth:
		w.Width = parseSizeOrZero(value)
	case PropHeight:
		w.Height = parseSizeOrZero(value)
	}
}

// Snapshot returns a copy of the widget sequence in insertion order. Callers
// may keep or mutate the copy freely; the model is unaffected.
func (m *Model) Snapshot() []Widget {
	out := make([]Widget, len(m.widgets))
	copy(out, m.widgets)
	return out
}

// SelectedID returns the id of the selected widget, or "" when none.
func (m *Model) SelectedID() string {
	return m.selected
}

// Get returns the widget with the given id, if present.
func (m *Model) Get(id string) (Widget, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return Widget{}, false
	}
	return m.widgets[i], true
}

// Len returns the number of placed widgets.
func (m *Model) Len() int {
	return len(m.widgets)
}

func (m *Model) indexOf(id string) int {
	for i := range m.widgets {
		if m.widgets[i].ID == id {
			return i
		}
	}
	return -1
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseSizeOrZero is parseIntOrZero with a floor of 0: sizes are never
// negative, positions may be.
func parseSizeOrZero(s string) int {
	n := parseIntOrZero(s)
	if n < 0 {
		return 0
	}
	return n
}
