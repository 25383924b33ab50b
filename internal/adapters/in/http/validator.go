package http

import (
	"messdelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestBodyValidator struct {
	validate *validator.Validate
}

func newRequestBodyValidator() *requestBodyValidator {
	return &requestBodyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestBodyValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// bindBody decodes and validates a JSON body.
func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(dst)
}
