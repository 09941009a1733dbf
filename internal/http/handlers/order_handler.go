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

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
}

// GET /checkout
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	u := currentUser(c)
	cv, err := h.Cart.Resolve(u.ID)
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return err
	}
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

// POST /orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	u := currentUser(c)

	address, okA := validate.Text(c.FormValue("address"), 100)
	city, okC := validate.Text(c.FormValue("city"), 50)
	postal, okP := validate.Postal(c.FormValue("postal_code"))
	country, okN := validate.Text(c.FormValue("country"), 50)
	if !okA || !okC || !okP || !okN {
		applog.Security(c, "validation.fail", map[string]any{"field": "shipping"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid shipping address")
	}

	// Card details are format-checked and discarded; nothing is charged.
	if !validate.CardNumber(c.FormValue("card_number")) ||
		!validate.CardExp(c.FormValue("exp_month")) ||
		!validate.CardExp(c.FormValue("exp_year")) ||
		!validate.CardCVV(c.FormValue("cvv")) {
		applog.Security(c, "validation.fail", map[string]any{"field": "card"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid card details")
	}

	shipping := fmt.Sprintf("%s, %s, %s, %s", address, city, postal, country)
	orderID, err := h.Order.Checkout(u.ID, shipping)
	if errors.Is(err, domain.ErrEmptyCart) {
		return c.Status(fiber.StatusBadRequest).SendString("Your cart is empty.")
	}
	if err != nil {
		applog.Error(c, "order.place.fail", err, map[string]any{"user_id": u.ID})
		return c.Status(fiber.StatusBadRequest).SendString("Could not place order. Please try again.")
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "user_id": u.ID})
	return c.Redirect("/order/" + orderID)
}

// GET /order/:id
func (h *OrderHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	o, items, err := h.Order.Get(u, oid)
	if errors.Is(err, domain.ErrForbidden) {
		// Render as not-found so order ids cannot be probed.
		applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o, "Items": items})
}

// GET /profile: account page with order history, newest first.
func (h *OrderHandler) Profile(c *fiber.Ctx) error {
	u := currentUser(c)
	orders, err := h.Order.ListByUser(u.ID)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return err
	}
	return render(c, "profile", fiber.Map{"Orders": orders})
}
