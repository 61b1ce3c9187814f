package service

import (
	"errors"
	"fmt"
)

// Cross-cutting service errors
var (
	// ErrValidation marks client errors caused by missing or malformed input
	ErrValidation = errors.New("invalid input")
	// ErrForbidden marks mutations attempted by a user who does not own the resource
	ErrForbidden = errors.New("not the owner of this resource")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
