package handlers

import (
	"errors"
	"strconv"
	"strings"

	"gadgetbay/internal/domain"
	applog "gadgetbay/internal/log"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := currentUser(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	if err := h.Cart.Add(u.ID, productID, qty); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		return err
	}
	return c.Redirect("/cart")
}

// POST /cart/update
func (h *CartHandler) Update(c *fiber.Ctx) error {
	u := currentUser(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	// Unlike Add, zero and negatives are meaningful here: they remove the line.
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty", "1")))
	if err != nil {
		return c.Status(400).SendString("invalid qty")
	}

	if err := h.Cart.SetQuantity(u.ID, productID, qty); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			applog.Security(c, "cart.update.absent", map[string]any{"product": productID})
			return c.Status(400).SendString("product not in cart")
		}
		return err
	}
	return c.Redirect("/cart")
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	cv, err := h.Cart.Resolve(u.ID)
	if err != nil {
		return err
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}
