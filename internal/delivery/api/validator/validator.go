// Package validator adapts the payload validator to echo.
package validator

import (
	"bazaar/internal/domain/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validation.Validator
}

// New creates an echo.Validator backed by the marketplace validation tags.
func New() (echo.Validator, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}

	return &echoValidator{validate: v}, nil
}

// Validate implements echo.Validator
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
