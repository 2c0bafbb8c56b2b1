package session

import (
	"errors"
	"path/filepath"
	"testing"

	"campuseats/internal/types"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := OpenKV(filepath.Join(t.TempDir(), "data", "campuseats.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, err := kv.Get("k"); err != nil || v != "v2" {
		t.Fatalf("get: %q %v", v, err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPersistAndRestore(t *testing.T) {
	kv := openTestKV(t)

	var changes int
	m := NewManager(kv, nil, func() { changes++ })
	if err := m.Persist(types.User{Username: "u"}, "t1"); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if changes != 1 {
		t.Fatalf("expected one change callback, got %d", changes)
	}
	if m.Token() != "t1" {
		t.Fatalf("token: %q", m.Token())
	}

	// Fresh manager over the same store simulates a restart.
	m2 := NewManager(kv, nil, nil)
	if m2.Authenticated() {
		t.Fatal("not authenticated before Restore")
	}
	m2.Restore()
	if !m2.Authenticated() {
		t.Fatal("expected authenticated session after restore")
	}
	if u := m2.User(); u == nil || u.Username != "u" {
		t.Fatalf("restored user: %+v", u)
	}
	if m2.Token() != "t1" {
		t.Fatalf("restored token: %q", m2.Token())
	}
}

func TestRestoreCorruptUserStaysLoggedOut(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set(KeyToken, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(KeyUser, "{not json"); err != nil {
		t.Fatal(err)
	}

	m := NewManager(kv, nil, nil)
	m.Restore()
	if m.Authenticated() {
		t.Fatal("corrupt stored user must leave the session unauthenticated")
	}
	if m.User() != nil {
		t.Fatal("expected nil user")
	}
}

func TestClear(t *testing.T) {
	kv := openTestKV(t)
	m := NewManager(kv, nil, nil)
	if err := m.Persist(types.User{Username: "u"}, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := m.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.Authenticated() {
		t.Fatal("still authenticated after clear")
	}
	if m.Token() != "" {
		t.Fatalf("token survived clear: %q", m.Token())
	}
	if _, err := kv.Get(KeyUser); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stored user survived clear: %v", err)
	}
}

func TestTokenFallsBackToStore(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set(KeyToken, "stored-token"); err != nil {
		t.Fatal(err)
	}
	m := NewManager(kv, nil, nil)
	if m.Token() != "stored-token" {
		t.Fatalf("expected store fallback, got %q", m.Token())
	}
}

func TestUpdateUserReconciles(t *testing.T) {
	kv := openTestKV(t)
	m := NewManager(kv, nil, nil)
	if err := m.Persist(types.User{Username: "u"}, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateUser(types.User{Username: "u", FavouriteRestaurant: "r1"}); err != nil {
		t.Fatal(err)
	}

	m2 := NewManager(kv, nil, nil)
	m2.Restore()
	if u := m2.User(); u == nil || u.FavouriteRestaurant != "r1" {
		t.Fatalf("favorite not persisted: %+v", u)
	}
	if m2.Token() != "t1" {
		t.Fatalf("token lost on user update: %q", m2.Token())
	}
}

func TestThemeAndLanguagePreferences(t *testing.T) {
	kv := openTestKV(t)
	m := NewManager(kv, nil, nil)

	if m.Theme() != "dark" {
		t.Fatalf("default theme: %q", m.Theme())
	}
	if _, ok := m.ThemePreference(); ok {
		t.Fatal("no preference should be pinned before the user chooses")
	}
	if err := m.SetTheme("light"); err != nil {
		t.Fatal(err)
	}
	if m.Theme() != "light" {
		t.Fatalf("theme: %q", m.Theme())
	}
	if v, ok := m.ThemePreference(); !ok || v != "light" {
		t.Fatalf("pinned preference: %q %v", v, ok)
	}

	if m.Language() != "" {
		t.Fatalf("default language: %q", m.Language())
	}
	if err := m.SetLanguage("fi"); err != nil {
		t.Fatal(err)
	}
	if m.Language() != "fi" {
		t.Fatalf("language: %q", m.Language())
	}
}
