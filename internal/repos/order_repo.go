package repos

import (
	"database/sql"

	"gadgetbay/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderItemRow is an order line joined against the catalog for display.
// Products may have been removed since the order was placed; the name then
// falls back to the stored product id.
type OrderItemRow struct {
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Qty       int     `db:"qty"`
	Price     float64 `db:"price"`
	Subtotal  float64 `db:"subtotal"`
}

// CreateWithItems records the order, its items, and empties the buyer's cart
// in one transaction so no caller ever observes a partial checkout.
func (r *OrderRepo) CreateWithItems(o domain.Order, items []domain.OrderItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, total, status, shipping_address, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.UserID, o.Total, o.Status, o.ShippingAddress); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(id, order_id, product_id, qty, price)
		  VALUES(?, ?, ?, ?, ?)
		`, it.ID, it.OrderID, it.ProductID, it.Qty, it.Price); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE user_id = ?`, o.UserID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, []OrderItemRow, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, user_id, total, status, shipping_address, COALESCE(created_at,'') AS created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, nil, domain.ErrNotFound
		}
		return domain.Order{}, nil, err
	}

	items := []OrderItemRow{}
	if err := r.db.Select(&items, `
		SELECT oi.product_id, COALESCE(p.name, oi.product_id) AS name,
		       oi.qty, oi.price, (oi.qty * oi.price) AS subtotal
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY oi.rowid
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT id, user_id, total, status, shipping_address, COALESCE(created_at,'') AS created_at
		FROM orders WHERE user_id = ?
		ORDER BY rowid DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT id, user_id, total, status, shipping_address, COALESCE(created_at,'') AS created_at
		FROM orders ORDER BY rowid DESC LIMIT ?
	`, limit)
	return out, err
}

// ListBySeller returns orders containing at least one of the seller's products.
func (r *OrderRepo) ListBySeller(sellerID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT DISTINCT o.id, o.user_id, o.total, o.status, o.shipping_address,
		       COALESCE(o.created_at,'') AS created_at
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE p.seller_id = ?
		ORDER BY o.rowid DESC
	`, sellerID)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
