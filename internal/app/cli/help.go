package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evtxview/internal/config"
)

type helpModel struct{}

func newHelpModel() helpModel {
	return helpModel{}
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m helpModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, renderUsage(), RenderHelp()) + "\n"
}

// renderUsage renders the title, usage, options and examples
func renderUsage() string {
	line := func(cmd, desc string) string {
		return textStyle.Render(fmt.Sprintf("  %s%s", flagStyle.Render(fmt.Sprintf("%-34s", cmd)), desc))
	}

	example := func(cmd, desc string) string {
		return textStyle.Render(fmt.Sprintf("  %s%s", exampleStyle.Render(fmt.Sprintf("%-42s", cmd)), desc))
	}

	name := config.AppName

	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		line(name+" <files or dirs...>", "Open the records in the viewer"),
		line(name+" help", "Show help"),
		line(name+" version", "Show version"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		line("-f, --follow", "Keep reading records appended to the files"),
		line("-e, --include-event <id,...>", "Only show these event ids"),
		line("-E, --exclude-event <id,...>", "Hide these event ids"),
		line("-u, --include-user <sid,...>", "Only show these users"),
		line("-U, --exclude-user <sid,...>", "Hide these users"),
		line("    --no-ui", "Print the filtered records instead"),
		line("    --format summary|json", "Output format with --no-ui"),
		line("-c, --config <path>", "Config file (default "+config.FileName+")"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		example(name+" Security.jsonl", "Browse one export"),
		example(name+" ./exports -E 4672", "Browse a directory, hiding 4672"),
		example(name+" -f live.jsonl", "Follow a growing file"),
		example(name+" --no-ui --format json a.jsonl.gz", "Print matching records as JSON"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionStyle.Render("Usage:"),
		usage,
		sectionStyle.Render("Options:"),
		options,
		sectionStyle.Render("Examples:"),
		examples,
	)
}
