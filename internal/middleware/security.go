package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			// The console page carries its stylesheet inline.
			if c.Path() == "/" {
				h.Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
			} else {
				h.Set("Content-Security-Policy", "default-src 'self'")
			}

			// Board content changes with every action.
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}
