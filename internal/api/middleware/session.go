package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/api/handler"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

// Session reconciles the session with the token store on every request and
// injects the result into the context. It never rejects a request; RequireRoles
// does that for guarded routes.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(handler.SessionKey, sessions.Check(c.Request().Context()))
			return next(c)
		}
	}
}
