package services

import (
	"gadgetbay/internal/domain"
	"gadgetbay/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Carts  *repos.CartRepo
	Orders *repos.OrderRepo
}

func NewOrderService(carts *repos.CartRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Carts: carts, Orders: orders}
}

// Checkout converts the user's cart into an immutable order. Line prices are
// frozen copies of the current product prices; later catalog edits never touch
// a placed order. Order, items and the cart wipe commit as one transaction.
// An empty (or fully dangling) cart is rejected.
func (s *OrderService) Checkout(userID, shippingAddress string) (string, error) {
	lines, err := s.Carts.Lines(userID)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", domain.ErrEmptyCart
	}

	total := 0.0
	for _, l := range lines {
		total += l.Subtotal
	}

	// Orders are recorded as already paid; there is no authorization step.
	o := domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Total:           total,
		Status:          domain.StatusPaid,
		ShippingAddress: shippingAddress,
	}
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: l.ProductID,
			Qty:       l.Qty,
			Price:     l.Price,
		})
	}

	if err := s.Orders.CreateWithItems(o, items); err != nil {
		return "", err
	}
	return o.ID, nil
}

// Get returns an order with its items if the requester owns it or is admin.
func (s *OrderService) Get(requester *domain.User, orderID string) (domain.Order, []repos.OrderItemRow, error) {
	o, items, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if requester == nil || (requester.ID != o.UserID && !requester.IsAdmin) {
		return domain.Order{}, nil, domain.ErrForbidden
	}
	return o, items, nil
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}

func (s *OrderService) ListBySeller(sellerID string) ([]domain.Order, error) {
	return s.Orders.ListBySeller(sellerID)
}

// UpdateStatus is the admin-only path onto the status enum; there is no
// transition logic beyond membership.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidState
	}
	return s.Orders.UpdateStatus(orderID, status)
}
