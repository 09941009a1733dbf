// Package log emits one JSON line per event on the standard logger, so the
// optional log-file tee in main picks everything up.
//
// Three levels are enough here: audit for state changes an operator may ask
// about later (order.place, admin.users.delete), warn for security-relevant
// rejects (auth.login.fail, access.denied.*, validation.fail), error for
// failures surfaced to the user.
package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"gadgetbay/internal/domain"
)

type record struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action"`
	UserID string         `json:"user_id,omitempty"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func emit(level, action string, c *fiber.Ctx, err error, fields map[string]any) {
	r := record{
		TS:     time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		Action: action,
		Fields: fields,
	}
	if c != nil {
		r.IP = c.IP()
		r.Method = c.Method()
		r.Path = c.Path()
		if rid, ok := c.Locals("requestid").(string); ok {
			r.ReqID = rid
		}
		// The session middleware attaches the current user before handlers run,
		// so most entries carry the acting user without callers passing it.
		if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
			r.UserID = u.ID
		}
	}
	if err != nil {
		r.Err = err.Error()
	}
	b, _ := json.Marshal(r)
	log.Println(string(b))
}

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	emit("audit", action, c, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	emit("warn", action, c, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	emit("error", action, c, err, fields)
}
