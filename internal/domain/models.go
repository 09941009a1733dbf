package domain

import "encoding/json"

type Category struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
}

// Spec is one ordered key/value entry of a product spec sheet.
type Spec struct {
	Key   string `json:"k"`
	Value string `json:"v"`
}

type Product struct {
	ID          string  `db:"id"`
	CategoryID  string  `db:"category_id"`
	SellerID    string  `db:"seller_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Details     string  `db:"details"`
	Price       float64 `db:"price"`
	ImagesJSON  string  `db:"images_json"`
	SpecsJSON   string  `db:"specs_json"`
	CreatedAt   string  `db:"created_at"`
}

func (p Product) Images() []string {
	var out []string
	_ = json.Unmarshal([]byte(p.ImagesJSON), &out)
	return out
}

func (p Product) Specs() []Spec {
	var out []Spec
	_ = json.Unmarshal([]byte(p.SpecsJSON), &out)
	return out
}

// Order statuses. Checkout records orders as already paid; pending through
// delivered are set through the admin panel. Canceled is system-set when the
// buyer's account is deleted and is not an admin-settable value.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
)

// ValidStatus reports whether s is one of the admin-settable statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID              string  `db:"id"`
	UserID          string  `db:"user_id"`
	Total           float64 `db:"total"`
	Status          string  `db:"status"`
	ShippingAddress string  `db:"shipping_address"`
	CreatedAt       string  `db:"created_at"`
}

type OrderItem struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Qty       int     `db:"qty"`
	Price     float64 `db:"price"` // snapshot of the product price at order time
}
