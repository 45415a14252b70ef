package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
)

// Theme values. The original board persisted the preference alongside the
// item data, so it lives in the same store here.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	// Try to generate and insert first (safe against races).
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", persistErr("generating jwt secret", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('jwt_secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", persistErr("storing jwt_secret", err)
	}

	// Always read back (either our insert or the existing value).
	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'jwt_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", persistErr("querying jwt_secret", err)
	}

	return secret, nil
}

// GetTheme returns the stored theme preference, defaulting to dark.
func GetTheme(ctx context.Context, db *sql.DB) (string, error) {
	var theme string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'theme'`,
	).Scan(&theme)
	if err == sql.ErrNoRows {
		return ThemeDark, nil
	}
	if err != nil {
		return "", persistErr("querying theme", err)
	}
	return theme, nil
}

// SetTheme stores the theme preference.
func SetTheme(ctx context.Context, db *sql.DB, theme string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('theme', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		theme,
	)
	if err != nil {
		return persistErr("storing theme", err)
	}
	return nil
}
