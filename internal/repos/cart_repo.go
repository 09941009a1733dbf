package repos

import (
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartLine is a cart entry joined against the live catalog.
type CartLine struct {
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Qty       int     `db:"qty"`
	Subtotal  float64 `db:"subtotal"`
}

// AddQty increments the entry, creating it at qty if absent.
func (r *CartRepo) AddQty(userID, productID string, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(user_id,product_id,qty,created_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(user_id,product_id) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, userID, productID, qty)
	return err
}

// SetQty overwrites the entry's quantity. Returns the number of rows touched
// so callers can distinguish an absent entry.
func (r *CartRepo) SetQty(userID, productID string, qty int) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE cart_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND product_id = ?
	`, qty, userID, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CartRepo) Remove(userID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`, userID, productID)
	return err
}

// Lines resolves cart entries against the current catalog. The inner join
// silently drops entries whose product no longer exists.
func (r *CartRepo) Lines(userID string) ([]CartLine, error) {
	lines := []CartLine{}
	err := r.db.Select(&lines, `
	  SELECT ci.product_id, p.name, p.price, ci.qty, (ci.qty*p.price) AS subtotal
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY ci.rowid
	`, userID)
	return lines, err
}

func (r *CartRepo) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
