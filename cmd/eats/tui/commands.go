package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"campuseats/internal/api"
	"campuseats/internal/config"
	"campuseats/internal/geo"
	"campuseats/internal/types"
	"campuseats/internal/validate"
)

// Messages produced by background commands.
type (
	restaurantsMsg struct{ err error }
	locationMsg    struct{ point *geo.Point }
	menuMsg        struct{ markdown string }
	sessionMsg     struct{ err error }
	noticeMsg      struct{ notice notice }
	favoriteMsg    struct{ err error }
	configMsg      struct{ cfg *config.Config }
)

// refreshCmd reloads the directory. The list and map panes re-render from
// the refreshed state when the message lands.
func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return restaurantsMsg{err: m.dir.Refresh(m.ctx)}
	}
}

// locateCmd resolves the device position; it never fails, it just reports
// nil when the position is unknown.
func (m *Model) locateCmd() tea.Cmd {
	return func() tea.Msg {
		return locationMsg{point: m.locator.Locate(m.ctx)}
	}
}

// dailyMenuCmd fetches and composes one restaurant's daily menu.
func (m *Model) dailyMenuCmd(r types.Restaurant) tea.Cmd {
	tr := m.translate
	return func() tea.Msg {
		return menuMsg{markdown: m.viewer.Daily(m.ctx, r, tr)}
	}
}

// weeklyMenuCmd fetches and composes one restaurant's weekly menu.
func (m *Model) weeklyMenuCmd(r types.Restaurant) tea.Cmd {
	tr := m.translate
	return func() tea.Msg {
		return menuMsg{markdown: m.viewer.Weekly(m.ctx, r, tr)}
	}
}

// loginCmd validates the form client-side, then authenticates and persists
// the session. Validation failures never reach the data layer.
func (m *Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := validate.Struct(validate.Credentials{Username: username, Password: password}); err != nil {
			return sessionMsg{err: err}
		}
		resp, err := m.client.Login(m.ctx, username, password)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{err: m.sessions.Persist(resp.Data, resp.Token)}
	}
}

// registerCmd creates an account and then logs straight in.
func (m *Model) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := validate.Struct(validate.Registration{Username: username, Email: email, Password: password}); err != nil {
			return sessionMsg{err: err}
		}
		if _, err := m.client.Register(m.ctx, username, email, password); err != nil {
			return sessionMsg{err: err}
		}
		resp, err := m.client.Login(m.ctx, username, password)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{err: m.sessions.Persist(resp.Data, resp.Token)}
	}
}

// updateEmailCmd applies a profile email change.
func (m *Model) updateEmailCmd(email string) tea.Cmd {
	return func() tea.Msg {
		if err := validate.Struct(validate.Profile{Email: email}); err != nil {
			return sessionMsg{err: err}
		}
		resp, err := m.client.UpdateProfile(m.ctx, api.ProfileUpdate{Email: &email})
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{err: m.sessions.UpdateUser(resp.Data)}
	}
}

// toggleFavoriteCmd sets or clears the favorite restaurant. The server
// response is authoritative for the cached user.
func (m *Model) toggleFavoriteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		user := m.sessions.User()
		if user == nil {
			return favoriteMsg{}
		}
		next := id
		if user.FavouriteRestaurant == id {
			next = "" // toggling the current favorite clears it
		}
		resp, err := m.client.UpdateProfile(m.ctx, api.ProfileUpdate{FavouriteRestaurant: &next})
		if err != nil {
			return favoriteMsg{err: err}
		}
		return favoriteMsg{err: m.sessions.UpdateUser(resp.Data)}
	}
}

// listenNotices forwards the next queued notification into the update
// loop. It re-arms itself after each message.
func (m *Model) listenNotices() tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-m.notices:
			return noticeMsg{notice: n}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// listenConfig forwards config file reloads into the update loop. Re-arms
// like listenNotices.
func (m *Model) listenConfig() tea.Cmd {
	return func() tea.Msg {
		select {
		case cfg := <-m.cfgCh:
			return configMsg{cfg: cfg}
		case <-m.ctx.Done():
			return nil
		}
	}
}
