package editor

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tkdraft/internal/layout"
)

// propInput is one editable field of the property panel.
type propInput struct {
	key   string
	input textinput.Model
}

// openProps (re)builds the property inputs for the selected widget and
// enters editing mode. Frame widgets get no text field.
func (a *App) openProps() {
	id := a.model.SelectedID()
	w, ok := a.model.Get(id)
	if !ok {
		a.closeProps()
		return
	}

	type field struct {
		key   string
		label string
		value string
	}
	fields := []field{}
	if layout.HasText(w.Kind) {
		fields = append(fields, field{layout.PropText, "text", w.Text})
	}
	fields = append(fields,
		field{layout.PropX, "x", strconv.Itoa(w.X)},
		field{layout.PropY, "y", strconv.Itoa(w.Y)},
		field{layout.PropWidth, "width", strconv.Itoa(w.Width)},
		field{layout.PropHeight, "height", strconv.Itoa(w.Height)},
	)

	prevFocus := 0
	if a.editingProps && a.propsFor == id && a.focus < len(fields) {
		prevFocus = a.focus
	}

	a.inputs = a.inputs[:0]
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = fmt.Sprintf("%-7s ", f.label)
		inp.SetValue(f.value)
		inp.CharLimit = 64
		inp.Width = propsWidth - 10
		if i == prevFocus {
			inp.Focus()
		}
		a.inputs = append(a.inputs, propInput{key: f.key, input: inp})
	}
	a.focus = prevFocus
	a.propsFor = id
	a.editingProps = true
}

func (a *App) closeProps() {
	a.editingProps = false
	a.inputs = a.inputs[:0]
	a.propsFor = ""
	a.focus = 0
}

func (a *App) updateProps(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.closeProps()
		a.setStatus("Closed properties.")
		return a, nil
	case "tab", "shift+tab":
		dir := 1
		if msg.String() == "shift+tab" {
			dir = -1
		}
		a.inputs[a.focus].input.Blur()
		a.focus = (a.focus + dir + len(a.inputs)) % len(a.inputs)
		a.inputs[a.focus].input.Focus()
		return a, nil
	case "enter":
		a.commitProps()
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focus].input, cmd = a.inputs[a.focus].input.Update(msg)
	return a, cmd
}

// commitProps applies every field to the model and rebuilds the inputs so
// the panel reflects what was actually stored (bad numbers coerce to 0).
func (a *App) commitProps() {
	id := a.propsFor
	for _, f := range a.inputs {
		a.model.SetProperty(id, f.key, f.input.Value())
	}
	a.openProps()
	a.setStatus(fmt.Sprintf("Applied properties to %s.", id))
}
