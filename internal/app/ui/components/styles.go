package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across the viewer
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	FooterStyle = lipgloss.NewStyle()

	// HelpStyle for the key binding line
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	FooterHelpStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// PanelStyle for the focused table pane
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary)

	// DetailPanelStyle for the detail pane
	DetailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FgBorder)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgMuted)

	SelectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Background(BgSelection)

	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	ScrollTrackStyle = lipgloss.NewStyle().
				Foreground(FgBorder)

	ScrollThumbStyle = lipgloss.NewStyle().
				Foreground(FgPrimary)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(FgActive)

	FollowStyle = lipgloss.NewStyle().
			Foreground(FgWarning)

	FinishedStyle = lipgloss.NewStyle().
			Foreground(FgFinished)
)
