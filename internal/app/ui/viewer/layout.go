package viewer

import (
	"evtxview/internal/app/ui/components"
	"evtxview/internal/config"
)

type size struct {
	width  int
	height int
}

// pane is one bordered region; inner excludes the border and the scrollbar column
type pane struct {
	outer size
	inner size
}

func newPane(outer size) pane {
	return pane{
		outer: outer,
		inner: size{
			width:  max(0, outer.width-components.PaneBorder-components.ScrollWidth),
			height: max(0, outer.height-components.PaneBorder),
		},
	}
}

// visible reports whether the pane has room for any content
func (p pane) visible() bool {
	return p.inner.width > 0 && p.inner.height > 0
}

// rows is the number of record rows below the column header
func (p pane) rows() int {
	return max(0, p.inner.height-1)
}

type frame struct {
	body   size
	table  pane
	detail pane
}

// layout splits the body between the table and the detail pane. Horizontal places them
// side by side, vertical stacks them.
func (m *Model) layout() frame {
	body := size{
		width:  max(0, m.ui.width),
		height: max(0, m.ui.height-components.HeaderHeight-components.FooterHeight),
	}

	if m.state.orientation == config.OrientationVertical {
		top, bottom := components.Split(body.height, m.state.tablePercent)

		return frame{
			body:   body,
			table:  newPane(size{width: body.width, height: top}),
			detail: newPane(size{width: body.width, height: bottom}),
		}
	}

	left, right := components.Split(body.width, m.state.tablePercent)

	return frame{
		body:   body,
		table:  newPane(size{width: left, height: body.height}),
		detail: newPane(size{width: right, height: body.height}),
	}
}
