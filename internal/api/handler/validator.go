package handler

import (
	"github.com/talentbridge/recruitment-client/internal/core/service"
)

// echoValidator lets Echo call c.Validate(req) with the same rules and
// messages the session forms use.
type echoValidator struct{}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. Failures wrap
// domain.ErrValidation.
func (ev *echoValidator) Validate(i any) error {
	return service.FormError(service.ValidateForm(i))
}
