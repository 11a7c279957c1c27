// Package pgerr maps GORM errors onto the domain error taxonomy. The
// connection must be opened with gorm.Config{TranslateError: true}.
package pgerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate turns a unique constraint violation into ConflictError and a
// missing row into ObjectNotFoundError. Other errors are returned unchanged.
func Translate(err error, param, value string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictError(param, value)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(param, value)
	default:
		return err
	}
}
