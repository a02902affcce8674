package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// CartStateRepo stores one JSON cart blob per session key. It is the
// durable backend behind cart.Store.
type CartStateRepo struct{ db *sqlx.DB }

func NewCartStateRepo(db *sqlx.DB) *CartStateRepo { return &CartStateRepo{db: db} }

func (r *CartStateRepo) Load(key string) ([]byte, bool, error) {
	var data string
	err := r.db.Get(&data, `SELECT data FROM cart_state WHERE session_id = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (r *CartStateRepo) Save(key string, data []byte) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_state(session_id, data, updated_at)
	  VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(session_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, key, string(data))
	return err
}

func (r *CartStateRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM cart_state WHERE session_id = ?`, key)
	return err
}
