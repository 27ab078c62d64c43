// Package validation checks request structs against their `validate` tags.
package validation

import (
	"fmt"
	"sync"

	"postboard/internal/core/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Struct returns an error wrapping apperr.ErrInvalidInput when v fails its tags.
func Struct(v any) error {
	once.Do(func() { validate = validator.New(validator.WithRequiredStructEnabled()) })

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrInvalidInput, err.Error())
	}
	return nil
}
