package repos

import (
	"dunestore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.DB.Get(&u, `
	  SELECT id, email, name, password_hash, role
	  FROM users WHERE LOWER(email) = LOWER(?)
	`, email); err != nil {
		return nil, err
	}
	return &u, nil
}
