package handlers

import (
	"errors"

	"gadgetbay/internal/domain"
	applog "gadgetbay/internal/log"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Wish *services.WishlistService
}

// GET /wishlist
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	u := currentUser(c)
	rows, err := h.Wish.List(u.ID)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		return err
	}
	return render(c, "wishlist", fiber.Map{"Items": rows})
}

// POST /wishlist
func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	u := currentUser(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Wish.Save(u.ID, pid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		return err
	}
	return c.Redirect("/wishlist")
}

// POST /wishlist/delete
func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	u := currentUser(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Wish.Unsave(u.ID, pid); err != nil {
		return err
	}
	return c.Redirect("/wishlist")
}
