package exception

import (
	"errors"
	"fmt"
)

// Expected outcomes. Handlers translate these to 404/400/403, everything
// else is reported as an opaque internal failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StorageError wraps a persistence failure after the enclosing transaction
// has been rolled back.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage failure: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Err: err}
}
