package handlers

import (
	"errors"
	"fmt"

	"gadgetbay/internal/domain"
	applog "gadgetbay/internal/log"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

// GET /seller
func (h *SellerHandler) Dashboard(c *fiber.Ctx) error {
	u := currentUser(c)
	products, err := h.Catalog.ListBySeller(u.ID)
	if err != nil {
		return err
	}
	orders, err := h.Orders.ListBySeller(u.ID)
	if err != nil {
		return err
	}
	cats, _ := h.Catalog.ListCategories()
	return render(c, "seller_dashboard", fiber.Map{
		"Products": products, "Orders": orders, "Categories": cats,
	})
}

// POST /seller/products
func (h *SellerHandler) AddProduct(c *fiber.Ctx) error {
	u := currentUser(c)

	name, okN := validate.Name(c.FormValue("name"))
	desc, okD := validate.Text(c.FormValue("description"), 200)
	details, okT := validate.Text(c.FormValue("details"), 2000)
	price, okP := validate.Price(c.FormValue("price"))
	catID, okC := validate.ID(c.FormValue("category_id"))
	if !okN || !okD || !okT || !okP || !okC {
		applog.Security(c, "validation.fail", map[string]any{"field": "product_form"})
		return c.Status(400).SendString("invalid product details")
	}

	// Up to three free-form spec rows from the form.
	var specs []domain.Spec
	for i := 1; i <= 3; i++ {
		k := c.FormValue(fmt.Sprintf("spec_key_%d", i))
		v := c.FormValue(fmt.Sprintf("spec_value_%d", i))
		if k != "" && v != "" {
			specs = append(specs, domain.Spec{Key: k, Value: v})
		}
	}

	p, err := h.Catalog.AddProduct(u, services.ProductInput{
		Name: name, Description: desc, Details: details,
		Price: price, CategoryID: catID, Specs: specs,
	})
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(400).SendString("unknown category")
	}
	if err != nil {
		applog.Error(c, "seller.product.add.fail", err, nil)
		return c.Status(400).SendString("could not add product")
	}

	applog.Audit(c, "seller.product.add", map[string]any{"product_id": p.ID, "seller_id": u.ID})
	return c.Redirect("/seller")
}
