// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "matrimony/internal/domain/errors"
)

// echoValidator wraps a validator instance for use as echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and reports failures as a validation AppError
// so the error middleware renders a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
