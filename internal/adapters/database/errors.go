package database

import (
	"postboard/internal/core/apperr"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translate maps gorm's not-found to apperr.ErrNotFound and attaches a stack
// to everything else.
func translate(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(apperr.ErrNotFound, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
