// Package server provides the HTTP REST API for the talent hub.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUsernameTaken indicates the username is already registered
type ErrUsernameTaken struct {
	Username string
}

func (e *ErrUsernameTaken) Error() string {
	return fmt.Sprintf("username already registered: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrForbidden indicates the caller lacks permission for the operation
type ErrForbidden struct {
	Message string
}

func (e *ErrForbidden) Error() string {
	if e.Message == "" {
		return "operation not permitted"
	}
	return e.Message
}

// ErrConflict indicates the operation conflicts with current resource state,
// for example deleting a job that is not archived.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUsernameTaken, *ErrConflict:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
