package services

import (
	"gadgetbay/internal/domain"
	"gadgetbay/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add increments the cart entry for the product, creating it if absent.
// The product must exist at add time; there is no upper bound on quantity.
func (s *CartService) Add(userID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.Prods.Get(productID); err != nil {
		return err
	}
	return s.Carts.AddQty(userID, productID, qty)
}

// SetQuantity overwrites the entry's quantity. Zero or negative removes the
// entry (no error if it was already gone). A positive quantity for an entry
// not in the cart is ErrInvalidState.
func (s *CartService) SetQuantity(userID, productID string, qty int) error {
	if qty <= 0 {
		return s.Carts.Remove(userID, productID)
	}
	n, err := s.Carts.SetQty(userID, productID, qty)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

type CartView struct {
	Lines []repos.CartLine
	Total float64
}

// Resolve prices the cart against the current catalog. Entries whose product
// has since been removed are dropped, not errors.
func (s *CartService) Resolve(userID string) (CartView, error) {
	lines, err := s.Carts.Lines(userID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal
	}
	return CartView{Lines: lines, Total: total}, nil
}

// Clear empties the cart; clearing an already empty cart is fine.
func (s *CartService) Clear(userID string) error {
	return s.Carts.Clear(userID)
}
