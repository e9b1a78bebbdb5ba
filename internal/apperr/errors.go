// Package apperr defines the error taxonomy shared by the gateways,
// services and handlers: AuthError, StoreError, NotFoundError and
// ValidationError. Errors are constructed where the failure happens and
// rendered exactly once, at the handler that triggered the call.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AuthError covers bad credentials, duplicate accounts and rejected tokens.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func Auth(format string, args ...interface{}) *AuthError {
	return &AuthError{Message: fmt.Sprintf(format, args...)}
}

// StoreError covers failed reads and writes against the record store or
// blob store, including network failures.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// NotFoundError reports a missing blob or document.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ValidationError is raised locally, before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	var (
		authErr       *AuthError
		notFoundErr   *NotFoundError
		validationErr *ValidationError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond renders err as the inline {"error": ...} payload every screen
// expects, with the status from StatusFor.
func Respond(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
}
