package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"campuseats/cmd/eats/ui"
)

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "starting…"
	}

	if m.notice != "" {
		return m.renderNotice()
	}

	switch m.viewMode {
	case MenuOverlay:
		return m.renderOverlay()
	case LoginFormView, RegisterFormView, ProfileFormView:
		return m.renderForm()
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderFilterBar())
	sb.WriteString("\n")
	sb.WriteString(m.renderPanes())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m *Model) renderHeader() string {
	title := m.styles.Header.Render(" " + m.translate.T("app_title") + " ")

	var right string
	if user := m.sessions.User(); user != nil {
		right = m.styles.Success.Render(user.Username)
	} else {
		right = m.styles.Muted.Render(m.translate.T("login") + " [l]")
	}
	if m.loading {
		right = m.spinner.View() + " " + right
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m *Model) renderFilterBar() string {
	city := m.filter.city
	if city == "" {
		city = m.translate.T("all_cities")
	}
	provider := m.filter.provider
	if provider == "" {
		provider = m.translate.T("all_providers")
	}

	parts := []string{
		m.styles.Bold.Render(m.translate.T("city")+":") + " " + city + " [c]",
		m.styles.Bold.Render(m.translate.T("provider")+":") + " " + provider + " [p]",
		m.search.View(),
	}
	return m.styles.Pane.Width(m.width - ui.PanelBorderWidth).Render(strings.Join(parts, "  "))
}

// renderPanes draws the restaurant list and the marker map side by side.
// The panes share one state pass (see rerender) and disjoint screen
// regions.
func (m *Model) renderPanes() string {
	lc := ui.NewLayoutConfig(m.width, m.height)

	listPane := m.renderListPane(lc)
	if lc.IsCompact {
		return listPane
	}

	mapPane := m.styles.Pane.
		Width(lc.MapPaneWidth() - ui.PanelBorderWidth).
		Height(lc.ContentHeight()).
		Render(m.mapPane.Render())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, mapPane)
}

func (m *Model) renderListPane(lc ui.LayoutConfig) string {
	var content string
	switch {
	case m.err != nil:
		content = m.styles.Error.Render(m.translate.T("cannot_reach"))
	case len(m.list.Items()) == 0 && !m.loading:
		content = m.styles.Muted.Render(m.translate.T("no_results"))
	default:
		content = m.list.View()
	}
	return m.styles.Pane.
		Width(lc.ListPaneWidth() - ui.PanelBorderWidth).
		Height(lc.ContentHeight()).
		Render(content)
}

func (m *Model) renderFooter() string {
	keys := []string{
		"[enter] " + m.translate.T("daily_menu"),
		"[w] " + m.translate.T("weekly_menu"),
		"[f] " + m.translate.T("favorite"),
		"[/] " + m.translate.T("search"),
		"[t] " + m.themeLabel(),
		"[g] " + m.translate.T("language"),
		"[q] quit",
	}
	return m.styles.Footer.Render(strings.Join(keys, "  "))
}

func (m *Model) themeLabel() string {
	if m.styles.Theme.IsDark {
		return m.translate.T("theme_light")
	}
	return m.translate.T("theme_dark")
}

func (m *Model) renderOverlay() string {
	body := m.styles.Overlay.
		Width(min(m.width-4, 78)).
		Render(m.overlay.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(f.title))
	sb.WriteString("\n\n")
	for i, input := range f.inputs {
		label := f.labels[i]
		if i == f.focused {
			sb.WriteString(m.styles.CardSelected.Render("> " + label))
		} else {
			sb.WriteString(m.styles.Muted.Render("  " + label))
		}
		sb.WriteString("\n")
		sb.WriteString("  " + input.View())
		sb.WriteString("\n\n")
	}
	if f.err != nil {
		sb.WriteString(m.styles.Error.Render(f.err.Error()))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.styles.Muted.Render("[enter] submit  [esc] cancel"))

	body := m.styles.Overlay.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderNotice draws the blocking notification modal. Any key dismisses it.
func (m *Model) renderNotice() string {
	body := m.styles.Overlay.
		BorderForeground(ui.ColorError).
		Render(m.styles.Error.Render(m.notice) + "\n\n" +
			m.styles.Muted.Render("press any key"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderMarkdown renders menu markdown through glamour, falling back to
// the raw text if the renderer is unavailable.
func (m *Model) renderMarkdown(markdown string) string {
	if m.renderer == nil {
		return markdown
	}
	out, err := m.renderer.Render(markdown)
	if err != nil {
		m.logger.Debug("markdown render failed")
		return markdown
	}
	return out
}

func newOverlayViewport(width, height int) viewport.Model {
	w := min(width-8, 76)
	h := height - 8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return viewport.New(w, h)
}
