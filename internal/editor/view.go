package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tkdraft/internal/layout"
)

func (a *App) View() string {
	header := titleStyle.Render(appName) + helpDescStyle.Render("  Tkinter layout editor")

	cols, rows := a.canvasSize()
	canvas := renderCanvas(a.model.Snapshot(), a.model.SelectedID(), cols, rows)

	canvasStyle := paneStyle
	if a.armed != "" {
		canvasStyle = paneFocusStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(a.palette.View()),
		canvasStyle.Render(canvas),
		a.propsPane(),
	)

	statusLine := a.renderStatus()
	footer := a.renderFooter()

	main := header + "\n\n" + row
	if a.height == 0 {
		return main + "\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(main) < contentHeight {
		main = lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, main)
	}
	return main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Canvas projection
// ---------------------------------------------------------------------------

// renderCanvas paints the widget snapshot onto a cols x rows cell grid.
// Later widgets paint over earlier ones, matching hit-test z-order. The
// projection is lossy (cells are coarser than pixels); the model keeps the
// exact geometry.
func renderCanvas(widgets []layout.Widget, selected string, cols, rows int) string {
	cells := make([][]rune, rows)
	marks := make([][]byte, rows) // 0 background, 1 widget, 2 selected
	for y := 0; y < rows; y++ {
		cells[y] = make([]rune, cols)
		marks[y] = make([]byte, cols)
		for x := 0; x < cols; x++ {
			cells[y][x] = ' '
		}
	}

	for _, w := range widgets {
		cx := w.X / pxPerCellX
		cy := w.Y / pxPerCellY
		cw := w.Width / pxPerCellX
		if cw < 1 {
			cw = 1
		}
		ch := w.Height / pxPerCellY
		if ch < 1 {
			ch = 1
		}

		mark := byte(1)
		fill := '░'
		if w.ID == selected {
			mark = 2
			fill = '▓'
		}
		for y := cy; y < cy+ch; y++ {
			if y < 0 || y >= rows {
				continue
			}
			for x := cx; x < cx+cw; x++ {
				if x < 0 || x >= cols {
					continue
				}
				cells[y][x] = fill
				marks[y][x] = mark
			}
		}

		label := truncate(w.ID+" "+string(w.Kind), cw)
		if cy >= 0 && cy < rows {
			for i, r := range label {
				x := cx + i
				if x < 0 || x >= cols {
					continue
				}
				cells[cy][x] = r
				marks[cy][x] = mark
			}
		}
	}

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		lines[y] = styleRuns(cells[y], marks[y])
	}
	return strings.Join(lines, "\n")
}

// styleRuns renders one grid row, grouping adjacent cells with the same
// mark into a single styled segment.
func styleRuns(cells []rune, marks []byte) string {
	var b strings.Builder
	start := 0
	for x := 1; x <= len(cells); x++ {
		if x < len(cells) && marks[x] == marks[start] {
			continue
		}
		segment := string(cells[start:x])
		switch marks[start] {
		case 1:
			b.WriteString(widgetStyle.Render(segment))
		case 2:
			b.WriteString(selectedWidgetStyle.Render(segment))
		default:
			b.WriteString(segment)
		}
		start = x
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// Property pane
// ---------------------------------------------------------------------------

func (a *App) propsPane() string {
	style := paneStyle
	if a.editingProps {
		style = paneFocusStyle
	}
	return style.Render(padBlock(a.propsView(), propsWidth))
}

func (a *App) propsView() string {
	id := a.model.SelectedID()
	w, ok := a.model.Get(id)
	if !ok {
		return paneTitleStyle.Render("Properties") + "\n\n" +
			helpDescStyle.Render("No widget selected.")
	}

	lines := []string{paneTitleStyle.Render(fmt.Sprintf("Properties  %s (%s)", w.ID, w.Kind)), ""}
	if a.editingProps {
		for _, f := range a.inputs {
			lines = append(lines, f.input.View())
		}
		lines = append(lines, "", helpDescStyle.Render("enter apply · esc close"))
		return strings.Join(lines, "\n")
	}

	if layout.HasText(w.Kind) {
		lines = append(lines, fmt.Sprintf("%-7s %s", "text", w.Text))
	}
	lines = append(lines,
		fmt.Sprintf("%-7s %d", "x", w.X),
		fmt.Sprintf("%-7s %d", "y", w.Y),
		fmt.Sprintf("%-7s %d", "width", w.Width),
		fmt.Sprintf("%-7s %d", "height", w.Height),
		"",
		helpDescStyle.Render("press p to edit"),
	)
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Status bar and footer
// ---------------------------------------------------------------------------

func (a *App) renderStatus() string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	if a.width == 0 {
		return style.Render(a.status)
	}
	flat := strings.ReplaceAll(a.status, "\n", " ")
	return style.Render(padRight(flat, a.width-2))
}

func (a *App) renderFooter() string {
	var bindings []key.Binding
	if a.editingProps {
		bindings = a.propsKeys.ShortHelp()
	} else {
		bindings = a.keys.ShortHelp()
	}
	text := renderHelp(bindings)
	if a.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, a.width-2))
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

// ---------------------------------------------------------------------------
// Text helpers
// ---------------------------------------------------------------------------

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padBlock pads every line of a block to width so the pane keeps its shape.
func padBlock(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, width)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
