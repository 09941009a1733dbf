package handlers

import (
	"errors"

	"gadgetbay/internal/domain"
	applog "gadgetbay/internal/log"
	"gadgetbay/internal/repos"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users     *repos.UserRepo
	Prods     *repos.ProductRepo
	OrderRepo *repos.OrderRepo
	Catalog   *services.CatalogService
	Orders    *services.OrderService
}

// GET /admin
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return err
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	orders, err := h.OrderRepo.ListLatest(100)
	if err != nil {
		return err
	}
	products, err := h.Prods.List()
	if err != nil {
		return err
	}
	return render(c, "admin", fiber.Map{
		"Users": users, "Categories": cats, "Orders": orders, "Products": products,
	})
}

// POST /admin/categories
func (h *AdminHandler) AddCategory(c *fiber.Ctx) error {
	name, okN := validate.Name(c.FormValue("name"))
	desc, okD := validate.Text(c.FormValue("description"), 200)
	if !okN || !okD {
		return c.Status(400).SendString("invalid category details")
	}
	cat, err := h.Catalog.AddCategory(name, desc)
	if err != nil {
		applog.Error(c, "admin.category.add.fail", err, nil)
		return c.Status(400).SendString("could not add category")
	}
	applog.Audit(c, "admin.category.add", map[string]any{"category_id": cat.ID})
	return c.Redirect("/admin")
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return c.Status(400).SendString("unknown status")
		}
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin")
}

// POST /admin/users/:id/delete
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin")
}
