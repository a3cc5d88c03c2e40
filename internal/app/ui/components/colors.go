package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - selected row background

	// Status colors - ingestion and filter states
	FgActive   = lipgloss.Color("10") // Green - loading / included values
	FgWarning  = lipgloss.Color("11") // Yellow - follow mode
	FgError    = lipgloss.Color("9")  // Red - failed source / excluded values
	FgFinished = lipgloss.Color("8")  // Gray - all sources finished
)

// SeparatorColor is the adaptive color for header and footer rules
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// ChannelPalette provides distinct colors for event log channels
var ChannelPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
}

// ChannelColor picks a stable palette color for a channel name
func ChannelColor(channel string) lipgloss.AdaptiveColor {
	var h uint32
	for i := 0; i < len(channel); i++ {
		h = h*31 + uint32(channel[i])
	}

	return ChannelPalette[h%uint32(len(ChannelPalette))]
}
