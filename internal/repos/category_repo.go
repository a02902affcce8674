package repos

import (
	"dunestore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT id, name, name_fr, image, parent_id, fields_json,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY created_at, id
	`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, name_fr, image, parent_id, fields_json,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE id = ?
	`, id)
	return c, err
}

func (r *CategoryRepo) Create(c domain.Category) error {
	_, err := r.db.Exec(`
	  INSERT INTO categories(id, name, name_fr, image, parent_id, fields_json)
	  VALUES(?,?,?,?,?,?)
	`, c.ID, c.Name, c.NameFr, c.Image, c.ParentID, c.FieldsJSON)
	return err
}

func (r *CategoryRepo) Update(c domain.Category) error {
	_, err := r.db.Exec(`
	  UPDATE categories
	  SET name=?, name_fr=?, image=?, parent_id=?, fields_json=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, c.Name, c.NameFr, c.Image, c.ParentID, c.FieldsJSON, c.ID)
	return err
}

// DeleteCascade removes the category after recursively removing its
// direct children (each of which removes its own children first).
func (r *CategoryRepo) DeleteCascade(id string) error {
	var childIDs []string
	if err := r.db.Select(&childIDs, `SELECT id FROM categories WHERE parent_id = ?`, id); err != nil {
		return err
	}
	for _, cid := range childIDs {
		if err := r.DeleteCascade(cid); err != nil {
			return err
		}
	}
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	return err
}
