package services

import (
	"encoding/json"
	"strings"

	"gadgetbay/internal/domain"
	"gadgetbay/internal/repos"

	"github.com/google/uuid"
)

// DefaultShowcase caps related/featured listings on catalog pages.
const DefaultShowcase = 4

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(id string) (domain.Category, error) {
	return s.Cats.Get(id)
}

// ListByCategory returns the category's products in insertion order.
// An unknown category id is ErrNotFound; a known category with no
// products is an empty slice.
func (s *CatalogService) ListByCategory(catID string) (domain.Category, []domain.Product, error) {
	cat, err := s.Cats.Get(catID)
	if err != nil {
		return domain.Category{}, nil, err
	}
	prods, err := s.Prods.ListByCategory(catID)
	return cat, prods, err
}

func (s *CatalogService) ListBySeller(sellerID string) ([]domain.Product, error) {
	return s.Prods.ListBySeller(sellerID)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Search matches a case-insensitive substring against name or description.
// Empty queries are rejected upstream by the handler.
func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	return s.Prods.Search(q)
}

// Related returns products sharing the category, excluding the product itself.
// Order is incidental scan order, not a ranking.
func (s *CatalogService) Related(productID string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultShowcase
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return nil, err
	}
	return s.Prods.Related(p.CategoryID, p.ID, limit)
}

func (s *CatalogService) Featured(limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = DefaultShowcase
	}
	return s.Prods.Featured(limit)
}

type ProductInput struct {
	Name        string
	Description string
	Details     string
	Price       float64
	CategoryID  string
	Specs       []domain.Spec
}

// AddProduct lists a new product for a seller. The category must exist and the
// user must carry the seller flag; admins do not implicitly qualify.
func (s *CatalogService) AddProduct(seller *domain.User, in ProductInput) (domain.Product, error) {
	if seller == nil || !seller.IsSeller {
		return domain.Product{}, domain.ErrForbidden
	}
	if _, err := s.Cats.Get(in.CategoryID); err != nil {
		return domain.Product{}, err
	}

	images, _ := json.Marshal([]string{
		"https://via.placeholder.com/800x600?text=" + strings.ReplaceAll(in.Name, " ", "+"),
	})
	specs := in.Specs
	if specs == nil {
		specs = []domain.Spec{}
	}
	specsJSON, _ := json.Marshal(specs)

	p := domain.Product{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		SellerID:    seller.ID,
		Name:        in.Name,
		Description: in.Description,
		Details:     in.Details,
		Price:       in.Price,
		ImagesJSON:  string(images),
		SpecsJSON:   string(specsJSON),
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// AddCategory is an admin curation action; names are not deduplicated.
func (s *CatalogService) AddCategory(name, description string) (domain.Category, error) {
	c := domain.Category{ID: uuid.NewString(), Name: name, Description: description}
	if err := s.Cats.Insert(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}
