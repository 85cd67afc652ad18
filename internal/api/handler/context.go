package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// SessionKey is where the session middleware stores the reconciled session.
const SessionKey = "session"

// ctxSession returns the session loaded by the middleware, or an anonymous one.
func ctxSession(c echo.Context) domain.Session {
	s, ok := c.Get(SessionKey).(domain.Session)
	if !ok {
		return domain.Session{State: domain.StateAnonymous}
	}
	return s
}

// ctxIdentity fails fast when the route guard did not run or let an anonymous
// session through.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	s := ctxSession(c)
	if !s.IsAuthenticated || s.Identity == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.Identity, nil
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
