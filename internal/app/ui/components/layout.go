package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"evtxview/internal/app/selection"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := max(HeaderSeparatorMinWidth, width-titleWidth-infoWidth-HeaderFixedChars)

	return HeaderStyle.Render(RenderLine(3) + " " + TitleStyle.Render(title) + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders the status rule and the key binding line
func RenderFooter(width int, status, helpText string) string {
	statusWidth := lipgloss.Width(status)

	separatorWidth := max(FooterSeparatorMinWidth, width-statusWidth-FooterFixedChars)
	statusLine := RenderLine(separatorWidth) + " " + status + " " + RenderLine(3)

	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, help))
}

// Split divides total cells by percent, returning the sizes of the first and second part
func Split(total, percent int) (int, int) {
	if total <= 0 {
		return 0, 0
	}

	percent = max(0, min(100, percent))
	first := total * percent / 100

	return first, total - first
}

// RenderScrollbar renders a vertical scrollbar of height cells
func RenderScrollbar(bar selection.Scrollbar, height int) string {
	if height <= 0 {
		return ""
	}

	start, size := bar.Thumb(height)
	cells := make([]string, height)

	for i := range cells {
		if bar.Length > 0 && i >= start && i < start+size {
			cells[i] = ScrollThumbStyle.Render("█")
		} else {
			cells[i] = ScrollTrackStyle.Render("│")
		}
	}

	return strings.Join(cells, "\n")
}

// PadRight pads s with spaces to width cells, truncating when it is wider
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}

	s = Truncate(s, width)

	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

// Truncate shortens s to maxWidth cells, ending it with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}
