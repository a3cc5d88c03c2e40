package components

// Frame layout constants
const (
	HeaderHeight = 1
	FooterHeight = 2
	PaneBorder   = 2
	ScrollWidth  = 1
	MinPaneSize  = 3
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Table column widths
const (
	ColumnTimeWidth     = 19
	ColumnEventIDWidth  = 6
	ColumnRecordIDWidth = 9
	ColumnUserWidth     = 14
	ColumnComputerWidth = 16
	ColumnMinWidth      = 8
	ColumnGap           = 1
)

// TimeLayout formats record timestamps in the table
const TimeLayout = "2006-01-02 15:04:05"
