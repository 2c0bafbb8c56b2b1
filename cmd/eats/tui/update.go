package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"campuseats/cmd/eats/ui"
	"campuseats/internal/config"
	"campuseats/internal/directory"
	"campuseats/internal/i18n"
	"campuseats/internal/types"
)

// Update is the bubbletea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		m.rerender()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case restaurantsMsg:
		m.loading = false
		m.err = msg.err
		m.rerender()
		return m, nil

	case locationMsg:
		m.location = msg.point
		m.rerender()
		return m, nil

	case menuMsg:
		m.overlayText = m.renderMarkdown(msg.markdown)
		m.overlay.SetContent(m.overlayText)
		m.overlay.GotoTop()
		m.viewMode = MenuOverlay
		m.loading = false
		return m, nil

	case sessionMsg:
		m.loading = false
		if msg.err != nil {
			if m.form != nil {
				m.form.err = msg.err
			}
			return m, nil
		}
		m.form = nil
		m.viewMode = ListView
		m.rerender()
		return m, nil

	case favoriteMsg:
		m.loading = false
		if msg.err == nil {
			m.rerender()
		}
		return m, nil

	case noticeMsg:
		m.notice = msg.notice.text
		return m, m.listenNotices()

	case configMsg:
		m.applyConfig(msg.cfg)
		return m, m.listenConfig()

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// handleKey routes key presses by surface.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending notice blocks everything until acknowledged.
	if m.notice != "" {
		m.notice = ""
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.viewMode == MenuOverlay {
		switch msg.String() {
		case "esc", "q", "enter":
			m.viewMode = ListView
			return m, nil
		}
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		switch msg.String() {
		case "esc":
			m.search.Blur()
			return m, nil
		case "enter":
			m.search.Blur()
			m.filter.search = m.search.Value()
			m.rerender()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		// Live filtering while typing.
		m.filter.search = m.search.Value()
		m.rerender()
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit

	case "/":
		m.search.Focus()
		return m, nil

	case "c":
		m.filter.city = cycleOption(m.dir.Cities(), m.filter.city)
		m.rerender()
		return m, nil

	case "p":
		m.filter.provider = cycleOption(m.dir.Providers(), m.filter.provider)
		m.rerender()
		return m, nil

	case "x":
		m.filter = filters{}
		m.search.SetValue("")
		m.rerender()
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd(), m.locateCmd())

	case "enter", "d":
		if r, ok := m.selected(); ok {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.dailyMenuCmd(r))
		}
		return m, nil

	case "w":
		if r, ok := m.selected(); ok {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.weeklyMenuCmd(r))
		}
		return m, nil

	case "f":
		if !m.sessions.Authenticated() {
			m.form = newLoginForm(m.translate)
			m.viewMode = LoginFormView
			return m, nil
		}
		if r, ok := m.selected(); ok {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.toggleFavoriteCmd(r.ID))
		}
		return m, nil

	case "l":
		if m.sessions.Authenticated() {
			_ = m.sessions.Clear()
			m.rerender()
			return m, nil
		}
		m.form = newLoginForm(m.translate)
		m.viewMode = LoginFormView
		return m, nil

	case "n":
		m.form = newRegisterForm(m.translate)
		m.viewMode = RegisterFormView
		return m, nil

	case "e":
		if m.sessions.Authenticated() {
			m.form = newProfileForm(m.translate, m.sessions.User())
			m.viewMode = ProfileFormView
		}
		return m, nil

	case "t":
		next := "light"
		if m.sessions.Theme() == "light" {
			next = "dark"
		}
		_ = m.sessions.SetTheme(next)
		m.applyTheme(next)
		m.rerender()
		return m, nil

	case "g":
		next := i18n.LangEN
		if m.translate.Lang() == i18n.LangEN {
			next = i18n.LangFI
		}
		_ = m.sessions.SetLanguage(next)
		m.translate = i18n.New(next)
		m.search.Placeholder = m.translate.T("search")
		m.rerender()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selected returns the restaurant under the cursor.
func (m *Model) selected() (types.Restaurant, bool) {
	item, ok := m.list.SelectedItem().(restaurantItem)
	if !ok {
		return types.Restaurant{}, false
	}
	return item.restaurant, true
}

// rerender runs the refresh pipeline over current state: filter the
// directory, order the result, and rebuild the list items and map markers
// together. The two panes draw from the same pass and need no ordering
// between them.
func (m *Model) rerender() {
	user := m.sessions.User()
	filtered := m.dir.Filter(m.filter.city, m.filter.provider, m.filter.search)
	ordered := directory.Order(filtered, user, m.location)

	items := make([]list.Item, len(ordered))
	for i, r := range ordered {
		items[i] = newRestaurantItem(r, user, m.location)
	}
	m.list.SetItems(items)

	markers := make([]ui.Marker, 0, len(ordered)+1)
	for _, r := range ordered {
		if !r.Location.Valid() {
			continue
		}
		kind := ui.MarkerRestaurant
		if user != nil && user.FavouriteRestaurant == r.ID {
			kind = ui.MarkerFavorite
		}
		markers = append(markers, ui.Marker{
			Lat:   r.Location.Lat(),
			Lon:   r.Location.Lon(),
			Label: r.Name,
			Kind:  kind,
		})
	}
	if m.location != nil {
		markers = append(markers, ui.Marker{
			Lat:  m.location.Lat,
			Lon:  m.location.Lon,
			Kind: ui.MarkerSelf,
		})
	}
	m.mapPane.SetMarkers(markers)
}

// applyConfig takes a reloaded config live. The ui section only applies
// where the user has not pinned a persisted preference; a chosen theme or
// language always wins over the file.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	if _, ok := m.sessions.ThemePreference(); !ok {
		m.applyTheme(cfg.UI.Theme)
	}
	if m.sessions.Language() == "" && i18n.Supported(cfg.UI.Language) {
		m.translate = i18n.New(cfg.UI.Language)
		m.search.Placeholder = m.translate.T("search")
	}
	m.rerender()
}

func (m *Model) resize() {
	lc := ui.NewLayoutConfig(m.width, m.height)
	content := lc.ContentHeight()

	m.list.SetSize(lc.ListPaneWidth()-ui.PanelBorderWidth, content)
	m.mapPane.SetSize(lc.MapPaneWidth()-ui.PanelBorderWidth, content)
	m.overlay = newOverlayViewport(m.width, m.height)
	m.overlay.SetContent(m.overlayText)
	m.search.Width = lc.ListPaneWidth() - 10
}

// cycleOption steps through an option set: none -> first -> ... -> none.
func cycleOption(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}
