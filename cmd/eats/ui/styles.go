// Package ui provides the visual styling for the campuseats terminal
// interface: the light/dark themes, shared lipgloss styles, layout
// constants, and the marker map pane.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Light theme colors
	LightBackground = lipgloss.Color("#f7f7f5")
	LightForeground = lipgloss.Color("#1d2230")
	LightPrimary    = lipgloss.Color("#0f6e44") // campus green
	LightAccent     = lipgloss.Color("#d97706") // amber
	LightSecondary  = lipgloss.Color("#e5e7eb")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#d1d5db")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark theme colors
	DarkBackground = lipgloss.Color("#14171f")
	DarkForeground = lipgloss.Color("#e8eaed")
	DarkPrimary    = lipgloss.Color("#34d399")
	DarkAccent     = lipgloss.Color("#fbbf24")
	DarkSecondary  = lipgloss.Color("#1f2430")
	DarkMuted      = lipgloss.Color("#8b93a5")
	DarkBorder     = lipgloss.Color("#2a3040")
	DarkCard       = lipgloss.Color("#1b202b")

	// Semantic colors, same in both modes
	ColorError    = lipgloss.Color("#ef4444")
	ColorSuccess  = lipgloss.Color("#22c55e")
	ColorWarning  = lipgloss.Color("#f59e0b")
	ColorFavorite = lipgloss.Color("#f472b6") // favorite marker
	ColorSelf     = lipgloss.Color("#60a5fa") // own-location marker
)

// Theme holds one color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName maps the persisted "dark"/"light" preference to a theme,
// defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled components shared by the panes.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Pane    lipgloss.Style
	Overlay lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Restaurant cards
	CardTitle    lipgloss.Style
	CardSelected lipgloss.Style
	Favorite     lipgloss.Style
	Distance     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Map markers
	Marker         lipgloss.Style
	FavoriteMarker lipgloss.Style
	SelfMarker     lipgloss.Style
}

// NewStyles creates the style set for one theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Background).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		CardTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		CardSelected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Favorite: lipgloss.NewStyle().
			Foreground(ColorFavorite).
			Bold(true),

		Distance: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Marker: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		FavoriteMarker: lipgloss.NewStyle().
			Foreground(ColorFavorite).
			Bold(true),

		SelfMarker: lipgloss.NewStyle().
			Foreground(ColorSelf).
			Bold(true),
	}
}
