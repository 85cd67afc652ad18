package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// serverMessage is implemented by backend errors that carry a readable message.
type serverMessage interface {
	ServerMessage() string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Sends a lost session back to the login view with 303.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrUnauthorized) {
			_ = c.Redirect(http.StatusSeeOther, service.RouteLogin)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, message(err)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, message(err)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, message(err)
	case errors.Is(err, domain.ErrServer):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend error")
		return http.StatusBadGateway, message(err)
	case errors.Is(err, domain.ErrNetwork):
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend unreachable")
		return http.StatusBadGateway, "backend unreachable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// message prefers the backend's own wording over the wrapped chain.
func message(err error) string {
	var sm serverMessage
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	return err.Error()
}
