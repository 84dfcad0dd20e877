package editor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tkdraft/internal/codegen"
	"github.com/jask/tkdraft/internal/config"
	"github.com/jask/tkdraft/internal/layout"
)

const appName = "tkdraft"

// Canvas projection: one terminal cell covers this many model pixels. The
// model itself always works in pixels of the generated Tkinter window.
const (
	pxPerCellX = 10
	pxPerCellY = 20
)

// Pane metrics (content widths; borders and padding add 4 to each).
const (
	paletteWidth = 16
	propsWidth   = 26
)

// ---------------------------------------------------------------------------
// Palette item (implements list.Item)
// ---------------------------------------------------------------------------

type kindItem struct {
	kind layout.Kind
}

func (k kindItem) Title() string       { return string(k.kind) }
func (k kindItem) Description() string { return "" }
func (k kindItem) FilterValue() string { return string(k.kind) }

type kindItemDelegate struct{}

func (d kindItemDelegate) Height() int  { return 1 }
func (d kindItemDelegate) Spacing() int { return 0 }
func (d kindItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d kindItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(kindItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	def := layout.DefaultsFor(entry.kind)
	line := fmt.Sprintf("%s%-7s %dx%d", prefix, entry.kind, def.Width, def.Height)
	fmt.Fprint(w, padRight(line, m.Width()))
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type exportDoneMsg struct {
	code string
	err  error
}

type scriptSavedMsg struct {
	path string
	err  error
}

// ---------------------------------------------------------------------------
// App model
// ---------------------------------------------------------------------------

// App is the terminal editor: palette, canvas, property panel, export.
type App struct {
	cfg    config.Config
	model  *layout.Model
	ctrl   *Controller
	client *codegen.Client

	palette   list.Model
	keys      keyMap
	propsKeys propsKeyMap

	armed        layout.Kind // type waiting for a canvas click, "" when none
	editingProps bool
	inputs       []propInput
	focus        int
	propsFor     string // widget id the inputs were built for

	status    string
	statusErr bool
	width     int
	height    int
}

// New constructs the editor for one session.
func New(cfg config.Config) *App {
	items := make([]list.Item, 0, len(layout.Kinds()))
	for _, k := range layout.Kinds() {
		items = append(items, kindItem{kind: k})
	}
	palette := list.New(items, kindItemDelegate{}, paletteWidth, len(items)+4)
	palette.Title = "Palette"
	palette.Styles.Title = titleStyle
	palette.Styles.NoItems = lipgloss.NewStyle()
	palette.SetShowStatusBar(false)
	palette.SetFilteringEnabled(false)
	palette.SetShowHelp(false)
	palette.DisableQuitKeybindings()

	m := layout.NewModel()
	return &App{
		cfg:     cfg,
		model:   m,
		ctrl:    NewController(m),
		client:  codegen.NewClient(cfg.Generator.Endpoint, time.Duration(cfg.Generator.TimeoutSeconds)*time.Second),
		palette: palette,
		keys:    newKeyMap(),
		propsKeys: propsKeyMap{
			keyMap: newKeyMap(),
		},
		status: "Select a type, press enter, then click the canvas to place it.",
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case exportDoneMsg:
		return a.handleExportDone(msg)
	case scriptSavedMsg:
		return a.handleScriptSaved(msg)
	case tea.KeyMsg:
		if a.editingProps {
			return a.updateProps(msg)
		}
		return a.updateMain(msg)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "enter":
		item, ok := a.palette.SelectedItem().(kindItem)
		if !ok {
			return a, nil
		}
		a.armed = item.kind
		a.setStatus(fmt.Sprintf("Click the canvas to place a %s.", a.armed))
		return a, nil
	case "esc":
		if a.armed != "" {
			a.armed = ""
			a.setStatus("Placement cancelled.")
		}
		return a, nil
	case "p":
		if a.model.SelectedID() == "" {
			a.setError("Select a widget first.")
			return a, nil
		}
		a.openProps()
		return a, nil
	case "e":
		return a.startExport()
	}

	var cmd tea.Cmd
	a.palette, cmd = a.palette.Update(msg)
	return a, cmd
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

func (a *App) handleMouse(ev tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if !a.inCanvas(ev.X, ev.Y) {
			return a, nil
		}
		px, py := a.toModel(ev.X, ev.Y)
		if a.armed != "" {
			a.dropArmed(px, py)
			return a, nil
		}
		if id, hit := a.ctrl.PointerDown(px, py); hit {
			if a.editingProps {
				a.openProps() // selection may have changed
			}
			a.setStatus(fmt.Sprintf("Selected %s.", id))
		}
		return a, nil
	case tea.MouseActionMotion:
		// drags follow the cursor even outside the canvas, unclamped
		if a.ctrl.Dragging() {
			px, py := a.toModel(ev.X, ev.Y)
			a.ctrl.PointerMove(px, py)
		}
		return a, nil
	case tea.MouseActionRelease:
		if a.ctrl.Dragging() {
			a.ctrl.PointerUp()
			if a.editingProps {
				a.openProps() // refresh x/y fields after the drag
			}
		}
		return a, nil
	}
	return a, nil
}

// dropArmed handles a placement event for the armed type. Drop swallows
// unrecognized tags; the status line only gets a diagnostic hint.
func (a *App) dropArmed(px, py int) {
	tag := string(a.armed)
	a.armed = ""
	id, ok := a.ctrl.Drop(tag, px, py)
	if !ok {
		a.setStatus(fmt.Sprintf("Ignored unknown widget type %q (closest: %s).", tag, layout.Closest(tag)))
		return
	}
	a.setStatus(fmt.Sprintf("Placed %s %s at (%d, %d).", tag, id, px, py))
}

// ---------------------------------------------------------------------------
// Export flow
// ---------------------------------------------------------------------------

func (a *App) startExport() (tea.Model, tea.Cmd) {
	if a.model.Len() == 0 {
		a.setError("Add widgets to the canvas first.")
		return a, nil
	}
	snap := a.model.Snapshot()
	a.setStatus(fmt.Sprintf("Generating code for %d widgets...", len(snap)))
	client := a.client
	timeout := time.Duration(a.cfg.Generator.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		// same fallback as the client, so a zero config doesn't yield an
		// already-expired context
		timeout = 10 * time.Second
	}
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		code, err := client.Generate(ctx, snap)
		return exportDoneMsg{code: code, err: err}
	}
}

func (a *App) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setError(fmt.Sprintf("Export failed: %v", msg.err))
		return a, nil
	}
	path := a.cfg.Export.Filename
	code := msg.code
	return a, func() tea.Msg {
		return scriptSavedMsg{path: path, err: codegen.SaveScript(path, code)}
	}
}

func (a *App) handleScriptSaved(msg scriptSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setError(fmt.Sprintf("Save failed: %v", msg.err))
		return a, nil
	}
	a.setStatus(fmt.Sprintf("Saved %s.", msg.path))
	return a, nil
}

// ---------------------------------------------------------------------------
// Canvas geometry
// ---------------------------------------------------------------------------

// canvasOrigin returns the terminal cell of the canvas content's top-left:
// past the palette pane's outer width plus the canvas border and padding,
// below the header line and the canvas border.
func (a *App) canvasOrigin() (x, y int) {
	return paletteWidth + 4 + 2, 3
}

func (a *App) canvasSize() (cols, rows int) {
	if a.width == 0 || a.height == 0 {
		return 60, 20
	}
	cols = a.width - (paletteWidth + 4) - (propsWidth + 4) - 4
	if cols < 20 {
		cols = 20
	}
	rows = a.height - 2 - 2 - 2
	if rows < 8 {
		rows = 8
	}
	return cols, rows
}

func (a *App) inCanvas(x, y int) bool {
	ox, oy := a.canvasOrigin()
	cols, rows := a.canvasSize()
	return x >= ox && x < ox+cols && y >= oy && y < oy+rows
}

// toModel converts a terminal cell to canvas-relative model pixels.
func (a *App) toModel(x, y int) (px, py int) {
	ox, oy := a.canvasOrigin()
	return (x - ox) * pxPerCellX, (y - oy) * pxPerCellY
}

// ---------------------------------------------------------------------------
// Status helpers
// ---------------------------------------------------------------------------

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}
