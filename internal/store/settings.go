package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"flowpilot/internal/model"

	_ "modernc.org/sqlite"
)

// Settings is the generic key-value store backing the two persisted entries:
// the theme preference and the onboarding record. It is a single sqlite table
// in the config dir; read/write failures are reported to the caller, who is
// expected to log and continue (persistence must never block the UI).
type Settings struct {
	// Dir overrides the config dir (tests). Empty means ConfigDir().
	Dir string
}

const (
	keyThemePreference = "theme_preference"
	keyOnboarding      = "onboarding"
)

func (s Settings) dir() (string, error) {
	if strings.TrimSpace(s.Dir) != "" {
		return s.Dir, nil
	}
	return ConfigDir()
}

func (s Settings) open(ctx context.Context) (*sql.DB, error) {
	dir, err := s.dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "settings.sqlite"))
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS settings (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Get returns the raw value for a key; ok=false when the key is absent.
func (s Settings) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM settings WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s Settings) Set(ctx context.Context, key, value string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO settings(k, v) VALUES(?, ?)`, key, value)
	return err
}

func (s Settings) Delete(ctx context.Context, key string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM settings WHERE k = ?`, key)
	return err
}

// LoadThemePreference returns the persisted scheme; ok=false when none saved.
func (s Settings) LoadThemePreference(ctx context.Context) (model.ColorScheme, bool, error) {
	v, ok, err := s.Get(ctx, keyThemePreference)
	if err != nil || !ok {
		return "", false, err
	}
	switch model.ColorScheme(v) {
	case model.SchemeLight, model.SchemeDark:
		return model.ColorScheme(v), true, nil
	default:
		// Unknown value: treat as unset rather than failing.
		return "", false, nil
	}
}

func (s Settings) SaveThemePreference(ctx context.Context, scheme model.ColorScheme) error {
	return s.Set(ctx, keyThemePreference, string(scheme))
}

// LoadOnboarding returns the persisted onboarding record; ok=false on first run.
func (s Settings) LoadOnboarding(ctx context.Context) (model.OnboardingRecord, bool, error) {
	v, ok, err := s.Get(ctx, keyOnboarding)
	if err != nil || !ok {
		return model.OnboardingRecord{}, false, err
	}
	var rec model.OnboardingRecord
	if err := json.Unmarshal([]byte(v), &rec); err != nil {
		return model.OnboardingRecord{}, false, err
	}
	return rec, true, nil
}

func (s Settings) SaveOnboarding(ctx context.Context, rec model.OnboardingRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Set(ctx, keyOnboarding, string(b))
}

// ResetOnboarding removes the record so the questionnaire runs again.
func (s Settings) ResetOnboarding(ctx context.Context) error {
	return s.Delete(ctx, keyOnboarding)
}
