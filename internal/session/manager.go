package session

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"campuseats/internal/types"
)

// Manager owns the process-wide session: one bearer token and one cached
// user, bounded by explicit login/logout. It also fronts the persisted
// theme/language preferences.
type Manager struct {
	mu       sync.RWMutex
	kv       *KV
	logger   *zap.Logger
	token    string
	user     *types.User
	onChange func()
}

// NewManager wraps the key-value store. onChange, when non-nil, fires after
// every session mutation so the UI can re-render; it runs on the caller's
// goroutine.
func NewManager(kv *KV, logger *zap.Logger, onChange func()) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{kv: kv, logger: logger, onChange: onChange}
}

// Persist activates a session: both entries are written to the store and
// the in-memory state updated.
func (m *Manager) Persist(user types.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.kv.Set(KeyToken, token); err != nil {
		return err
	}
	if err := m.kv.Set(KeyUser, string(data)); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	u := user
	m.user = &u
	m.mu.Unlock()

	m.fireChange()
	return nil
}

// Restore activates a previously persisted session at startup. A missing
// token or user leaves the session unauthenticated. A corrupt stored user
// payload is logged and otherwise ignored; the session simply stays
// unauthenticated.
func (m *Manager) Restore() {
	token, err := m.kv.Get(KeyToken)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("failed to read stored token", zap.Error(err))
		}
		return
	}
	raw, err := m.kv.Get(KeyUser)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("failed to read stored user", zap.Error(err))
		}
		return
	}

	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Warn("stored user payload is corrupt, staying logged out", zap.Error(err))
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
}

// Clear logs out: both entries are removed and memory reset.
func (m *Manager) Clear() error {
	if err := m.kv.Delete(KeyToken); err != nil {
		return err
	}
	if err := m.kv.Delete(KeyUser); err != nil {
		return err
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.fireChange()
	return nil
}

// Token implements api.TokenSource: the in-memory token wins, with the
// persisted store as fallback.
func (m *Manager) Token() string {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()
	if token != "" {
		return token
	}
	stored, err := m.kv.Get(KeyToken)
	if err != nil {
		return ""
	}
	return stored
}

// User returns a copy of the cached user, or nil when unauthenticated.
func (m *Manager) User() *types.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.token != ""
}

// UpdateUser reconciles the cached user with the authoritative server copy
// after a profile mutation and re-persists it under the same token.
func (m *Manager) UpdateUser(user types.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.kv.Set(KeyUser, string(data)); err != nil {
		return err
	}

	m.mu.Lock()
	u := user
	m.user = &u
	m.mu.Unlock()

	m.fireChange()
	return nil
}

// Theme returns the persisted theme preference, defaulting to "dark".
func (m *Manager) Theme() string {
	if v, ok := m.ThemePreference(); ok {
		return v
	}
	return "dark"
}

// ThemePreference returns the stored theme and whether the user ever chose
// one. Callers that want a config value to apply only when no preference is
// pinned check the second return.
func (m *Manager) ThemePreference() (string, bool) {
	v, err := m.kv.Get(KeyTheme)
	if err != nil || (v != "dark" && v != "light") {
		return "", false
	}
	return v, true
}

// SetTheme persists the theme preference ("dark" or "light").
func (m *Manager) SetTheme(theme string) error {
	return m.kv.Set(KeyTheme, theme)
}

// Language returns the persisted UI locale, or "" when never chosen.
func (m *Manager) Language() string {
	v, err := m.kv.Get(KeyLanguage)
	if err != nil {
		return ""
	}
	return v
}

// SetLanguage persists the UI locale.
func (m *Manager) SetLanguage(lang string) error {
	return m.kv.Set(KeyLanguage, lang)
}

func (m *Manager) fireChange() {
	if m.onChange != nil {
		m.onChange()
	}
}
