package viewer

import (
	"fmt"

	"evtxview/internal/app/detail"
	"evtxview/internal/app/selection"
	"evtxview/internal/app/ui/components"
)

// refreshDetail re-renders the detail pane when the selected record, the format or the
// pane width changed. A new record scrolls the pane back to the top.
func (m *Model) refreshDetail() {
	pane := m.layout().detail
	m.ui.detail.Width = pane.inner.width
	m.ui.detail.Height = pane.inner.height

	index, ok := m.table.Current()
	k := detailKey{index: index, format: m.state.detailFormat, width: pane.inner.width, ok: ok}

	if k == m.state.detailKey {
		m.clampDetail()
		return
	}

	if k.index != m.state.detailKey.index || k.ok != m.state.detailKey.ok {
		m.ui.detail.YOffset = 0
	}

	m.state.detailKey = k
	m.state.detailText = ""

	if !ok {
		m.ui.detail.SetContent("")
		return
	}

	text, err := m.renderer.Render(m.table.Record(index).Payload, m.state.detailFormat)
	if err != nil {
		m.log.Warn().Err(err).Int("index", index).Msg("Failed to render record detail")
		m.ui.detail.SetContent(components.ErrorStyle.Render(err.Error()))

		return
	}

	m.state.detailText = text
	m.ui.detail.SetContent(detail.Wrap(text, pane.inner.width))
	m.clampDetail()
}

// scrollDetail moves the detail pane by delta lines
func (m *Model) scrollDetail(delta int) {
	m.ui.detail.YOffset += delta
	m.clampDetail()
}

func (m *Model) clampDetail() {
	maxOffset := max(0, m.ui.detail.TotalLineCount()-m.ui.detail.Height)
	m.ui.detail.YOffset = max(0, min(m.ui.detail.YOffset, maxOffset))
}

// detailScrollbar returns the detail pane's scrollbar, with the offset spread over the
// whole text so the thumb reaches the end when the last line is shown
func (m *Model) detailScrollbar() selection.Scrollbar {
	total := m.ui.detail.TotalLineCount()
	if m.state.detailText == "" || total == 0 {
		return selection.Scrollbar{}
	}

	position := 0
	if maxOffset := total - m.ui.detail.Height; maxOffset > 0 {
		position = m.ui.detail.YOffset * (total - 1) / maxOffset
	}

	return selection.NewScrollbar(position, total)
}

// copyDetail puts the unwrapped detail text on the clipboard
func (m *Model) copyDetail() {
	if m.state.detailText == "" {
		return
	}

	method, err := m.clipboard.Copy(m.state.detailText)
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to copy record detail")
		m.setStatus(err.Error(), true)

		return
	}

	m.setStatus(fmt.Sprintf("copied (%s)", method), false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.state.status = text
	m.state.statusErr = isErr
}
