package handlers

import (
	"errors"

	"gadgetbay/internal/domain"
	"gadgetbay/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	featured, err := h.Catalog.Featured(services.DefaultShowcase)
	if err != nil {
		return err
	}
	return render(c, "home", fiber.Map{"Categories": cats, "Featured": featured})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cat, products, err := h.Catalog.ListByCategory(c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	if err != nil {
		return err
	}
	return render(c, "category", fiber.Map{"Category": cat, "Products": products})
}
