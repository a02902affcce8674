package repos

import (
	"dunestore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, name_fr, description, description_fr, price, image, category,
  stock, active, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) ListActive() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE active = 1
	  ORDER BY created_at DESC
	`)
	return out, err
}

func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY created_at DESC
	`)
	return out, err
}

// ListByCategoryNames returns active products tagged with any of the
// given category names (a category plus its descendants, typically).
func (r *ProductRepo) ListByCategoryNames(names []string) ([]domain.Product, error) {
	if len(names) == 0 {
		return []domain.Product{}, nil
	}
	query, args, err := sqlx.In(`
	  SELECT `+productCols+`
	  FROM products
	  WHERE active = 1 AND category IN (?)
	  ORDER BY created_at DESC
	`, names)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	err = r.db.Select(&out, r.db.Rebind(query), args...)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Search(q string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + q + "%"
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE active = 1 AND (name LIKE ? OR name_fr LIKE ? OR description LIKE ?)
	  ORDER BY created_at DESC
	  LIMIT ?
	`, like, like, like, limit)
	return out, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, name_fr, description, description_fr, price, image, category, stock, active)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.NameFr, p.Description, p.DescriptionFr, p.Price, p.Image, p.Category, p.Stock, p.Active)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET name=?, name_fr=?, description=?, description_fr=?, price=?, image=?,
	      category=?, stock=?, active=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.Name, p.NameFr, p.Description, p.DescriptionFr, p.Price, p.Image, p.Category, p.Stock, p.Active, p.ID)
	return err
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}
