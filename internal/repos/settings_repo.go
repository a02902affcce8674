package repos

import (
	"dunestore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(key string) (domain.Setting, error) {
	var s domain.Setting
	err := r.db.Get(&s, `
	  SELECT key, value, COALESCE(updated_at,'') AS updated_at
	  FROM settings WHERE key = ?
	`, key)
	return s, err
}

func (r *SettingsRepo) List() ([]domain.Setting, error) {
	var out []domain.Setting
	err := r.db.Select(&out, `
	  SELECT key, value, COALESCE(updated_at,'') AS updated_at
	  FROM settings ORDER BY key
	`)
	return out, err
}

func (r *SettingsRepo) Upsert(key, value string) error {
	_, err := r.db.Exec(`
	  INSERT INTO settings(key, value, updated_at)
	  VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (r *SettingsRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}
