package log

import (
	"bytes"
	"encoding/json"
	stdlog "log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"gadgetbay/internal/domain"
)

func capture(t *testing.T, fn func()) record {
	t.Helper()
	var buf bytes.Buffer
	oldW := stdlog.Writer()
	oldFlags := stdlog.Flags()
	stdlog.SetOutput(&buf)
	stdlog.SetFlags(0)
	defer func() {
		stdlog.SetOutput(oldW)
		stdlog.SetFlags(oldFlags)
	}()

	fn()

	var r record
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &r); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	return r
}

func TestAuditCarriesRequestAndUser(t *testing.T) {
	app := fiber.New()
	var got record
	app.Post("/orders", func(c *fiber.Ctx) error {
		c.Locals("user", &domain.User{ID: "u-carol"})
		got = capture(t, func() {
			Audit(c, "order.place", map[string]any{"order_id": "o-1"})
		})
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("POST", "/orders", nil)); err != nil {
		t.Fatal(err)
	}

	if got.Level != "audit" || got.Action != "order.place" {
		t.Fatalf("wrong level/action: %+v", got)
	}
	if got.UserID != "u-carol" {
		t.Fatalf("acting user not recorded: %+v", got)
	}
	if got.Method != "POST" || got.Path != "/orders" {
		t.Fatalf("request context missing: %+v", got)
	}
	if got.Fields["order_id"] != "o-1" {
		t.Fatalf("fields not carried: %+v", got.Fields)
	}
	if got.TS == "" {
		t.Fatalf("timestamp missing: %+v", got)
	}
}

func TestErrorRecordsMessageWithoutContext(t *testing.T) {
	got := capture(t, func() {
		Error(nil, "server.error", fiber.ErrInternalServerError, nil)
	})
	if got.Level != "error" || got.Err == "" {
		t.Fatalf("error entry malformed: %+v", got)
	}
	if got.UserID != "" || got.Path != "" {
		t.Fatalf("nil ctx must leave request fields empty: %+v", got)
	}
}
