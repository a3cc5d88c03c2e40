package cli

import (
	"github.com/charmbracelet/lipgloss"

	"evtxview/internal/config"
)

// Help screen palette
var (
	accent    = lipgloss.Color("#7D56F4")
	highlight = lipgloss.Color("#04B575")
	code      = lipgloss.Color("#FFA726")
	text      = lipgloss.Color("#E0E0E0")
	subtle    = lipgloss.Color("#9E9E9E")
	failure   = lipgloss.Color("#EF5350")
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	versionStyle = lipgloss.NewStyle().Foreground(subtle)
	bannerStyle  = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
	textStyle    = lipgloss.NewStyle().Foreground(text)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1).MarginBottom(1)
	flagStyle    = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	exampleStyle = lipgloss.NewStyle().Bold(true).Foreground(code)
	hintStyle    = lipgloss.NewStyle().Italic(true).Foreground(subtle).MarginTop(2)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(failure)
)

// RenderTitle renders the name, version and one-line description
func RenderTitle() string {
	banner := bannerStyle.Render(nameStyle.Render(config.AppName) + versionStyle.Render(" v"+config.Version))

	return lipgloss.JoinVertical(lipgloss.Left, banner, textStyle.Render(config.AppDescription))
}

// RenderHelp renders the hint shown below the interactive help screen
func RenderHelp() string {
	return hintStyle.Render("Press q or esc to exit")
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}
