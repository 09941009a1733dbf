package repos

import (
	"database/sql"

	"gadgetbay/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, category_id, seller_id, name, description, details, price,
  images_json, specs_json, COALESCE(created_at,'') AS created_at`

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,category_id,seller_id,name,description,details,price,images_json,specs_json)
	  VALUES(?,?,?,?,?,?,?,?,?)`,
		p.ID, p.CategoryID, p.SellerID, p.Name, p.Description, p.Details, p.Price, p.ImagesJSON, p.SpecsJSON)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, err
}

// Scans below return rows in insertion (rowid) order; no ranking is implied.

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY rowid`)
	return out, err
}

func (r *ProductRepo) ListByCategory(catID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE category_id = ? ORDER BY rowid`, catID)
	return out, err
}

func (r *ProductRepo) ListBySeller(sellerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE seller_id = ? ORDER BY rowid`, sellerID)
	return out, err
}

// Search matches a case-insensitive substring against name or description.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	like := "%" + q + "%"
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)
	  ORDER BY rowid`, like, like)
	return out, err
}

// Related returns up to limit products sharing a category, excluding excludeID.
func (r *ProductRepo) Related(catID, excludeID string, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+` FROM products
	  WHERE category_id = ? AND id != ?
	  ORDER BY rowid LIMIT ?`, catID, excludeID, limit)
	return out, err
}

// Featured is a placeholder policy: the first limit products ever inserted.
func (r *ProductRepo) Featured(limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY rowid LIMIT ?`, limit)
	return out, err
}
