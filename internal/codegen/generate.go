package codegen

import (
	"fmt"
	"strings"

	"github.com/jask/tkdraft/internal/layout"
)

// Generate builds a runnable Tkinter script from a widget snapshot. Each
// widget becomes one constructor call plus a .place() with its stored
// geometry; the root window is sized to the widgets' max extents.
func Generate(widgets []layout.Widget) (string, error) {
	for _, w := range widgets {
		if !layout.Known(string(w.Kind)) {
			return "", fmt.Errorf("unsupported widget type: %s", w.Kind)
		}
	}

	maxRight, maxBottom := 0, 0
	for _, w := range widgets {
		if r := w.X + w.Width; r > maxRight {
			maxRight = r
		}
		if b := w.Y + w.Height; b > maxBottom {
			maxBottom = b
		}
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("import tkinter as tk")
	line("")
	line("root = tk.Tk()")
	line("root.title('Generated GUI')")
	line("root.geometry('%dx%d')", maxRight, maxBottom)
	line("")

	for _, w := range widgets {
		switch {
		case w.Text != "" && (w.Kind == layout.KindButton || w.Kind == layout.KindLabel):
			line("%s = tk.%s(root, text=%s)", w.ID, w.Kind, pyQuote(w.Text))
		default:
			line("%s = tk.%s(root)", w.ID, w.Kind)
		}
		if w.Kind == layout.KindEntry && w.Text != "" {
			line("%s.insert(0, %s)", w.ID, pyQuote(w.Text))
		}
		line("%s.place(x=%d, y=%d, width=%d, height=%d)", w.ID, w.X, w.Y, w.Width, w.Height)
		line("")
	}

	line("root.mainloop()")
	return b.String(), nil
}

// pyQuote renders s as a single-quoted Python string literal.
func pyQuote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
				break
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
