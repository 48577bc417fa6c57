package middleware

import (
	"time"

	"github.com/fadilmartias/careercraft/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "cc_visitor"
	sessionLocal  = "session"
)

// Visitor identifies the browser with a long-lived uuid cookie and attaches
// its session from the registry.
func Visitor(registry *session.Registry, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Cookies(VisitorCookie))
		if err != nil {
			id = uuid.New()
			c.Cookie(&fiber.Cookie{
				Name:     VisitorCookie,
				Value:    id.String(),
				Path:     "/",
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionLocal, registry.Get(id))
		return c.Next()
	}
}

// SessionFrom returns the session attached by Visitor.
func SessionFrom(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionLocal).(*session.Session)
	return s
}
