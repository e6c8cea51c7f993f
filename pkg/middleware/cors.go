package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsMiddleware struct {
	allowOrigins []string
	allowMethods []string
	allowHeaders []string
}

func NewCORSMiddleware(allowOrigins, allowMethods, allowHeaders []string) Middleware {
	return &corsMiddleware{
		allowOrigins: allowOrigins,
		allowMethods: allowMethods,
		allowHeaders: allowHeaders,
	}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}

		allowed := false
		for _, o := range m.allowOrigins {
			if o == "*" || strings.EqualFold(o, origin) {
				allowed = true
				break
			}
		}
		if allowed {
			c.Set("Vary", "Origin")
			if hasStar(m.allowOrigins) {
				c.Set("Access-Control-Allow-Origin", "*")
			} else {
				c.Set("Access-Control-Allow-Origin", origin)
			}
			c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
			c.Set("Access-Control-Allow-Headers", strings.Join(m.allowHeaders, ", "))
		}

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func hasStar(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
