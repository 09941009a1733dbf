package handlers

import (
	"gadgetbay/internal/log"
	"gadgetbay/internal/repos"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Users   *repos.UserRepo
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	cat, _ := h.Catalog.GetCategory(p.CategoryID)
	related, _ := h.Catalog.Related(p.ID, services.DefaultShowcase)

	data := fiber.Map{"P": p, "Category": cat, "Related": related}
	if seller, err := h.Users.ByID(p.SellerID); err == nil {
		data["Seller"] = seller
	}
	return render(c, "product", data)
}
