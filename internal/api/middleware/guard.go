package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/api/handler"
	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/metrics"
)

// RequireRoles guards a route group. Anonymous sessions are sent to the login
// view and sessions with another role to the home view, both with 303.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, _ := c.Get(handler.SessionKey).(domain.Session)
			d := service.Guard(s, allowed...)
			if !d.Allow {
				metrics.GuardDecisionsTotal.WithLabelValues(guardResult(d)).Inc()
				return c.Redirect(http.StatusSeeOther, d.Redirect)
			}
			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

func guardResult(d service.Decision) string {
	if d.Redirect == service.RouteLogin {
		return "login"
	}
	return "home"
}
