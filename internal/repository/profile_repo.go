package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Nomenandrianina/fleet-master/internal/models"
)

type ProfileSQLite struct {
	db *sql.DB
}

func NewProfileSQLite(db *sql.DB) *ProfileSQLite {
	return &ProfileSQLite{db: db}
}

var _ ProfileRepo = (*ProfileSQLite)(nil)

const (
	// The profile lives under a single well-known key in the settings
	// table, stored as one JSON document and replaced wholesale.
	profileKey = "fleet-profile"

	upsertSettingSQL = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`

	selectSettingSQL = `SELECT value FROM settings WHERE key=?`
)

// Load returns the saved profile. A missing row or a value that no
// longer parses both fall back to the default record; the application
// never fails over a broken profile.
func (r *ProfileSQLite) Load(ctx context.Context) (models.Profile, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, selectSettingSQL, profileKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultProfile(), nil
		}
		return models.Profile{}, err
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.DefaultProfile(), nil
	}
	return p, nil
}

// Save replaces the whole stored record. Last write wins.
func (r *ProfileSQLite) Save(ctx context.Context, p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertSettingSQL, profileKey, string(raw))
	return err
}
