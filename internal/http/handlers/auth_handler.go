package handlers

import (
	"errors"
	"time"

	"gadgetbay/internal/domain"
	"gadgetbay/internal/log"
	"gadgetbay/internal/services"
	"gadgetbay/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username, okU := validate.Username(c.FormValue("username"))
	email, okE := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	pass2 := c.FormValue("password2")
	isSeller := c.FormValue("is_seller") == "on"

	switch {
	case !okU:
		return c.Status(400).Render("register", fiber.Map{"Err": "Username must be 3-20 letters, digits or underscores"})
	case !okE:
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid email"})
	case !validate.Password(pass):
		return c.Status(400).Render("register", fiber.Map{"Err": "Password must be 8-64 chars with upper, lower, digit and symbol"})
	case pass != pass2:
		return c.Status(400).Render("register", fiber.Map{"Err": "Passwords do not match"})
	}

	_, err := h.Auth.Register(username, email, pass, isSeller)
	if errors.Is(err, domain.ErrConflict) {
		log.Security(c, "auth.register.conflict", map[string]any{"username": username})
		return c.Status(fiber.StatusConflict).Render("register", fiber.Map{"Err": "Username or email already exists"})
	}
	if err != nil {
		log.Error(c, "auth.register.fail", err, nil)
		return c.Status(500).Render("register", fiber.Map{"Err": "Could not register. Please try again."})
	}

	log.Audit(c, "auth.register.success", map[string]any{"username": username, "seller": isSeller})
	return c.Redirect("/login")
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username, ok := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	if !ok || !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid username or password"})
	}

	_, err := h.Auth.Login(sid, username, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid username or password"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
