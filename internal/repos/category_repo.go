package repos

import (
	"database/sql"

	"gadgetbay/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Insert(c domain.Category) error {
	_, err := r.db.Exec(`INSERT INTO categories(id,name,description,image_url) VALUES(?,?,?,?)`,
		c.ID, c.Name, c.Description, c.ImageURL)
	return err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id,name,description,image_url FROM categories WHERE id=?`, id)
	if err == sql.ErrNoRows {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, err
}

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id,name,description,image_url FROM categories ORDER BY rowid`)
	return out, err
}
