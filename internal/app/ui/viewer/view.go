package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"evtxview/internal/app/filter"
	"evtxview/internal/app/ingest"
	"evtxview/internal/app/table"
	"evtxview/internal/app/ui/components"
	"evtxview/internal/config"
)

var columnWidths = []int{
	components.ColumnTimeWidth,
	components.ColumnEventIDWidth,
	components.ColumnRecordIDWidth,
	components.ColumnUserWidth,
	components.ColumnComputerWidth,
}

var columnTitles = []string{"Time", "Event", "Record", "User", "Computer"}

const channelTitle = "Channel"

// View renders the model
func (m Model) View() string {
	if m.ui.width == 0 || m.ui.height == 0 {
		return ""
	}

	f := m.layout()

	tablePane := m.renderTable(f.table)
	detailPane := m.renderDetail(f.detail)

	var body string
	if m.state.orientation == config.OrientationVertical {
		body = lipgloss.JoinVertical(lipgloss.Left, tablePane, detailPane)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
	}

	body = lipgloss.NewStyle().Width(f.body.width).Height(f.body.height).MaxHeight(f.body.height).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	title := config.AppName
	if summary := filterSummary(m.table.Predicates()); summary != "" {
		title += "  " + summary
	}

	info := fmt.Sprintf("%d/%d %s", m.table.Len(), m.table.Total(), m.renderIngestState())

	return components.RenderHeader(m.ui.width, title, info)
}

// renderIngestState shows whether sources are still delivering records
func (m Model) renderIngestState() string {
	failed := 0
	for _, s := range m.table.Sources() {
		if s.State == ingest.StateFailed {
			failed++
		}
	}

	var state string

	switch {
	case m.table.Loading() && m.state.follow:
		state = m.ui.pulse.Render(components.FollowStyle) + " " + components.FollowStyle.Render("following")
	case m.table.Loading():
		state = m.ui.pulse.Render(components.LoadingStyle) + " " + components.LoadingStyle.Render("loading")
	default:
		state = components.FinishedStyle.Render("done")
	}

	if failed > 0 {
		state += " " + components.ErrorStyle.Render(fmt.Sprintf("%d failed", failed))
	}

	return state
}

// filterSummary lists the active predicates as +category=value and -category=value
func filterSummary(p *filter.PredicateSet) string {
	var parts []string

	for _, c := range filter.Categories {
		for _, v := range p.Included(c) {
			parts = append(parts, "+"+c.String()+"="+v.String())
		}

		for _, v := range p.Excluded(c) {
			parts = append(parts, "-"+c.String()+"="+v.String())
		}
	}

	return strings.Join(parts, " ")
}

func (m Model) renderTable(p pane) string {
	if !p.visible() {
		return blank(p.outer)
	}

	lines := make([]string, 0, p.inner.height)
	lines = append(lines, components.ColumnHeaderStyle.Render(components.PadRight(joinColumns(columnTitles, channelTitle), p.inner.width)))

	rows, _ := m.table.Visible(p.rows())
	if len(rows) == 0 {
		lines = append(lines, components.MutedStyle.Render(components.PadRight(m.emptyMessage(), p.inner.width)))
	}

	for _, r := range rows {
		lines = append(lines, renderRow(r, p.inner.width))
	}

	content := lipgloss.NewStyle().Width(p.inner.width).Height(p.inner.height).Render(strings.Join(lines, "\n"))
	bar := "\n" + components.RenderScrollbar(m.table.Scrollbar(), p.rows())

	return components.PanelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, content, bar))
}

func (m Model) emptyMessage() string {
	switch {
	case m.table.Total() > 0:
		return "no records match the filter"
	case m.table.Loading():
		return "loading…"
	default:
		return "no records"
	}
}

func (m Model) renderDetail(p pane) string {
	if !p.visible() {
		return blank(p.outer)
	}

	text := m.ui.detail.View()
	if _, ok := m.table.Current(); !ok {
		text = components.MutedStyle.Render("no record selected")
	}

	content := lipgloss.NewStyle().Width(p.inner.width).Height(p.inner.height).MaxHeight(p.inner.height).Render(text)
	bar := components.RenderScrollbar(m.detailScrollbar(), p.inner.height)

	return components.DetailPanelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, content, bar))
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, 4)

	if status, isErr := m.statusLine(); status != "" {
		status = components.Truncate(status, max(1, m.ui.width/2))
		if isErr {
			status = components.ErrorStyle.Render(status)
		}

		parts = append(parts, status)
	}

	parts = append(parts,
		fmt.Sprintf("cpu %s", formatCPU(m.state.appCPU)),
		fmt.Sprintf("mem %s", formatMEM(m.state.appMEM)),
		"v"+config.Version,
	)

	return components.RenderFooter(m.ui.width, strings.Join(parts, " · "), m.ui.help.View(m.ui.keys))
}

// statusLine returns the last action's message, or the first source failure
func (m Model) statusLine() (string, bool) {
	if m.state.status != "" {
		return m.state.status, m.state.statusErr
	}

	for _, s := range m.table.Sources() {
		if s.State == ingest.StateFailed && s.Err != nil {
			return s.Err.Error(), true
		}
	}

	return "", false
}

// renderRow lays out the fixed columns and gives the channel the remaining width
func renderRow(r table.Row, width int) string {
	ts := ""
	if !r.Timestamp.IsZero() {
		ts = r.Timestamp.UTC().Format(components.TimeLayout)
	}

	user := r.User
	if user == "" {
		user = "-"
	}

	prefix := joinColumns([]string{
		ts,
		strconv.FormatUint(uint64(r.EventID), 10),
		strconv.FormatUint(r.RecordID, 10),
		user,
		r.Computer,
	}, "")

	if lipgloss.Width(prefix) >= width {
		line := components.PadRight(prefix, width)
		if r.Selected {
			return components.SelectedRowStyle.Render(line)
		}

		return line
	}

	channel := components.PadRight(r.Channel, width-lipgloss.Width(prefix))
	if r.Selected {
		return components.SelectedRowStyle.Render(prefix + channel)
	}

	return prefix + lipgloss.NewStyle().Foreground(components.ChannelColor(r.Channel)).Render(channel)
}

// joinColumns pads each cell to its column width and appends the free-width last cell
func joinColumns(cells []string, last string) string {
	var b strings.Builder

	for i, c := range cells {
		b.WriteString(components.PadRight(c, columnWidths[i]))
		b.WriteString(strings.Repeat(" ", components.ColumnGap))
	}

	b.WriteString(last)

	return b.String()
}

func blank(s size) string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	return lipgloss.NewStyle().Width(s.width).Height(s.height).Render("")
}

func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM formats a memory value in MB or GB
func formatMEM(mem float64) string {
	if mem < mbPerGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/mbPerGB)
}
