package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default map center (Helsinki) and the fixed zoom, expressed as the
// east-west span of the pane in kilometers.
const (
	DefaultCenterLat = 60.1699
	DefaultCenterLon = 24.9384
	DefaultSpanKm    = 30.0
)

// kmPerDegreeLat is the approximate north-south size of one degree.
const kmPerDegreeLat = 111.32

// MarkerKind selects the glyph and color of a map marker.
type MarkerKind int

const (
	MarkerRestaurant MarkerKind = iota
	MarkerFavorite
	MarkerSelf
)

// Marker is one point plotted on the map pane.
type Marker struct {
	Lat   float64
	Lon   float64
	Label string
	Kind  MarkerKind
}

// MapView renders restaurant markers on a character grid. The base grid is
// initialized once, the first time a usable size arrives; subsequent
// renders only replace the marker layer. Rendering before the pane has a
// size yields a placeholder instead of panicking.
type MapView struct {
	styles    Styles
	width     int
	height    int
	centerLat float64
	centerLon float64
	spanKm    float64
	markers   []Marker
	ready     bool
}

// NewMapView creates a map pane centered on the default coordinate. It is
// not ready to plot until SetSize delivers a usable size.
func NewMapView(styles Styles) *MapView {
	return &MapView{
		styles:    styles,
		centerLat: DefaultCenterLat,
		centerLon: DefaultCenterLon,
		spanKm:    DefaultSpanKm,
	}
}

// SetSize initializes or resizes the grid. Sizes too small to plot leave
// the view in its deferred state.
func (m *MapView) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = width >= 10 && height >= 5
}

// Ready reports whether the pane can plot markers.
func (m *MapView) Ready() bool { return m.ready }

// SetStyles swaps the color scheme on a theme change.
func (m *MapView) SetStyles(styles Styles) { m.styles = styles }

// SetMarkers replaces the marker layer. The base grid and center persist.
func (m *MapView) SetMarkers(markers []Marker) {
	m.markers = markers
}

// Markers returns the current marker layer.
func (m *MapView) Markers() []Marker { return m.markers }

// Render draws the map grid with the current markers.
func (m *MapView) Render() string {
	if !m.ready {
		return m.styles.Muted.Render("map loading…")
	}

	cols := m.width
	rows := m.height - 1 // reserve the legend line

	type cell struct {
		glyph rune
		kind  MarkerKind
		set   bool
	}
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
	}

	for _, mk := range m.markers {
		col, row, ok := m.project(mk.Lat, mk.Lon, cols, rows)
		if !ok {
			continue
		}
		// Self and favorite markers win cell conflicts.
		if grid[row][col].set && grid[row][col].kind != MarkerRestaurant {
			continue
		}
		grid[row][col] = cell{glyph: glyphFor(mk.Kind), kind: mk.Kind, set: true}
	}

	var sb strings.Builder
	for _, line := range grid {
		for _, c := range line {
			if !c.set {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(m.styleFor(c.kind).Render(string(c.glyph)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(m.legend())
	return sb.String()
}

// project maps a coordinate to a grid cell via an equirectangular
// projection around the center. Markers outside the span are dropped.
func (m *MapView) project(lat, lon float64, cols, rows int) (col, row int, ok bool) {
	kmPerDegreeLon := kmPerDegreeLat * math.Cos(m.centerLat*math.Pi/180)

	dxKm := (lon - m.centerLon) * kmPerDegreeLon
	dyKm := (lat - m.centerLat) * kmPerDegreeLat

	// Terminal cells are roughly twice as tall as wide; halve the vertical
	// span so distances look right on screen.
	spanY := m.spanKm * float64(rows) / float64(cols) * 2

	col = int((dxKm/m.spanKm + 0.5) * float64(cols))
	row = int((0.5 - dyKm/spanY) * float64(rows))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func (m *MapView) styleFor(kind MarkerKind) lipgloss.Style {
	switch kind {
	case MarkerFavorite:
		return m.styles.FavoriteMarker
	case MarkerSelf:
		return m.styles.SelfMarker
	default:
		return m.styles.Marker
	}
}

func (m *MapView) legend() string {
	parts := []string{
		m.styles.Marker.Render("●") + m.styles.Muted.Render(" restaurant"),
		m.styles.FavoriteMarker.Render("♥") + m.styles.Muted.Render(" favorite"),
		m.styles.SelfMarker.Render("◆") + m.styles.Muted.Render(" you"),
	}
	return strings.Join(parts, "  ")
}

func glyphFor(kind MarkerKind) rune {
	switch kind {
	case MarkerFavorite:
		return '♥'
	case MarkerSelf:
		return '◆'
	default:
		return '●'
	}
}
