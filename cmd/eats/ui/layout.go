// Package ui layout constants for consistent pane sizing.
package ui

// Layout constants for the split list/map screen.
const (
	// Split between the restaurant list and the map pane.
	ListPaneRatio = 0.55
	MapPaneRatio  = 0.45

	HeaderHeight    = 1
	FilterBarHeight = 3
	FooterHeight    = 2
	StatusBarHeight = 1

	PanelBorderWidth = 2
	PanelPaddingH    = 1

	// Responsive breakpoints
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 20
	CompactModeWidth      = 100
)

// LayoutConfig provides computed pane dimensions for a terminal size.
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout for the given terminal size.
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ListPaneWidth returns the width available to the restaurant list. In
// compact mode the map pane is hidden and the list takes the full width.
func (lc LayoutConfig) ListPaneWidth() int {
	if lc.IsCompact {
		return lc.TerminalWidth
	}
	return int(float64(lc.TerminalWidth) * ListPaneRatio)
}

// MapPaneWidth returns the width available to the map pane, 0 in compact
// mode.
func (lc LayoutConfig) MapPaneWidth() int {
	if lc.IsCompact {
		return 0
	}
	return lc.TerminalWidth - lc.ListPaneWidth()
}

// ContentHeight returns the height left for the panes after the chrome.
func (lc LayoutConfig) ContentHeight() int {
	h := lc.TerminalHeight - HeaderHeight - FilterBarHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}
