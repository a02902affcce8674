package repos

import (
	"dunestore/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BannerRepo struct{ db *sqlx.DB }

func NewBannerRepo(db *sqlx.DB) *BannerRepo { return &BannerRepo{db: db} }

func (r *BannerRepo) ListActive() ([]domain.Banner, error) {
	var out []domain.Banner
	err := r.db.Select(&out, `
	  SELECT id, title, title_fr, image, link, sort_order, active, created_at
	  FROM banners
	  WHERE active = 1
	  ORDER BY sort_order, created_at
	`)
	return out, err
}

func (r *BannerRepo) ListAll() ([]domain.Banner, error) {
	var out []domain.Banner
	err := r.db.Select(&out, `
	  SELECT id, title, title_fr, image, link, sort_order, active, created_at
	  FROM banners
	  ORDER BY sort_order, created_at
	`)
	return out, err
}

func (r *BannerRepo) Create(b domain.Banner) error {
	_, err := r.db.Exec(`
	  INSERT INTO banners(id, title, title_fr, image, link, sort_order, active)
	  VALUES(?,?,?,?,?,?,?)
	`, b.ID, b.Title, b.TitleFr, b.Image, b.Link, b.SortOrder, b.Active)
	return err
}

func (r *BannerRepo) Update(b domain.Banner) error {
	_, err := r.db.Exec(`
	  UPDATE banners
	  SET title=?, title_fr=?, image=?, link=?, sort_order=?, active=?
	  WHERE id=?
	`, b.Title, b.TitleFr, b.Image, b.Link, b.SortOrder, b.Active, b.ID)
	return err
}

func (r *BannerRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM banners WHERE id = ?`, id)
	return err
}
