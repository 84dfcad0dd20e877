package editor

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, matching the rest of the jask tooling.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorError  = colorRed
	colorMuted  = colorOverlay1
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)
	paneFocusStyle = paneStyle.
			BorderForeground(colorFocus)
	paneTitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)

	selectedWidgetStyle = lipgloss.NewStyle().Foreground(colorAccent)
	widgetStyle         = lipgloss.NewStyle().Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Background(colorSurface0).
			Padding(0, 1)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0).
				Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Padding(0, 1)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
