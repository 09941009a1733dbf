package services

import (
	"gadgetbay/internal/repos"
)

type WishlistService struct {
	Repo  *repos.WishlistRepo
	Prods *repos.ProductRepo
}

func NewWishlistService(r *repos.WishlistRepo, prods *repos.ProductRepo) *WishlistService {
	return &WishlistService{Repo: r, Prods: prods}
}

func (s *WishlistService) Save(userID, productID string) error {
	if _, err := s.Prods.Get(productID); err != nil {
		return err
	}
	return s.Repo.Add(userID, productID)
}

func (s *WishlistService) Unsave(userID, productID string) error {
	return s.Repo.Remove(userID, productID)
}

func (s *WishlistService) List(userID string) ([]repos.WishlistRow, error) {
	return s.Repo.List(userID)
}
