package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/core/service"
)

type AuthHandler struct {
	session ports.SessionService
}

func NewAuthHandler(session ports.SessionService) *AuthHandler {
	return &AuthHandler{session: session}
}

// Home describes the current session and the views it can reach.
//
// @Summary      Current session and navigation
// @Tags         auth
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *AuthHandler) Home(c echo.Context) error {
	s := ctxSession(c)
	return c.JSON(http.StatusOK, homeResponse{Session: s, Navigation: service.NavigationItems(s)})
}

// Register creates an account and signs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      303
// @Failure      400   {object}  domain.AuthResult
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.AuthResult{Message: "invalid payload"})
	}

	res := h.session.Register(c.Request().Context(), domain.Registration{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		FullName: req.FullName,
	})
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.Redirect(http.StatusSeeOther, res.Redirect)
}

// Login exchanges credentials for a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      303
// @Failure      400   {object}  domain.AuthResult
// @Failure      401   {object}  domain.AuthResult
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.AuthResult{Message: "invalid payload"})
	}

	res := h.session.Login(c.Request().Context(), req.Email, req.Password)
	if !res.Success {
		status := http.StatusUnauthorized
		if len(res.Fields) > 0 {
			status = http.StatusBadRequest
		}
		return c.JSON(status, res)
	}
	return c.Redirect(http.StatusSeeOther, res.Redirect)
}

// Logout ends the session.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.Redirect(http.StatusSeeOther, service.RouteLogin)
}

// Me returns the session's identity.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Success      303
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}
