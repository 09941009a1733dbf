package handlers

import (
	"gadgetbay/internal/config"
	"gadgetbay/internal/repos"
	"gadgetbay/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	SellerHandler   *SellerHandler
	AdminHandler    *AdminHandler
	WishlistHandler *WishlistHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, orderRepo)
	wishSvc := services.NewWishlistService(wishRepo, prodRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Users: auth.Users},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Cart: cartSvc, Order: orderSvc},
		SellerHandler:   &SellerHandler{Catalog: catalogSvc, Orders: orderSvc},
		AdminHandler: &AdminHandler{
			Users: auth.Users, Prods: prodRepo, OrderRepo: orderRepo,
			Catalog: catalogSvc, Orders: orderSvc,
		},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
	}
}
