package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"gadgetbay/internal/http/handlers"
	"gadgetbay/internal/repos"
	"gadgetbay/internal/services"
)

// Minimal app for role guard testing
func newRolesApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(limiter.New(limiter.Config{Max: 100, Expiration: 0}))
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	seller := app.Group("/seller", handlers.RequireSeller(authSvc))
	seller.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	return app, authSvc
}

func get(t *testing.T, app *fiber.App, path, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// /admin demands the admin flag
func TestAdminGuard(t *testing.T) {
	app, authSvc := newRolesApp(t)

	// Anonymous -> redirect or 403
	resp := get(t, app, "/admin", "")
	if resp.StatusCode != http.StatusFound && resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected redirect/forbidden, got %d", resp.StatusCode)
	}

	// Seller (not admin) -> 403
	_ = authSvc.Users.BindSession("sid-seller", "u-seller")
	if resp := get(t, app, "/admin", "sid-seller"); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.StatusCode)
	}

	// Admin -> 200
	_ = authSvc.Users.BindSession("sid-admin", "u-admin")
	if resp := get(t, app, "/admin", "sid-admin"); resp.StatusCode != http.StatusOK {
		t.Fatalf("admin expected 200, got %d", resp.StatusCode)
	}
}

// /seller demands the seller flag; ordinary buyers are turned away
func TestSellerGuard(t *testing.T) {
	app, authSvc := newRolesApp(t)

	buyer, err := authSvc.Register("buyer", "buyer@example.com", "Passw0rd!", false)
	if err != nil {
		t.Fatal(err)
	}
	_ = authSvc.Users.BindSession("sid-buyer", buyer.ID)

	if resp := get(t, app, "/seller", "sid-buyer"); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for buyer, got %d", resp.StatusCode)
	}

	_ = authSvc.Users.BindSession("sid-seller", "u-seller")
	if resp := get(t, app, "/seller", "sid-seller"); resp.StatusCode != http.StatusOK {
		t.Fatalf("seller expected 200, got %d", resp.StatusCode)
	}
}
