package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"username taken", &ErrUsernameTaken{Username: "mariana"}, http.StatusConflict},
		{"conflict", &ErrConflict{Message: "job must be archived"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden},
		{"not found", &ErrNotFound{Resource: "job", ID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "title", Message: "required"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()
	assert.Contains(t, (&ErrNotFound{Resource: "candidate", ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrUsernameTaken{Username: "ana"}).Error(), "ana")
	assert.Equal(t, "invalid username or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "operation not permitted", (&ErrForbidden{}).Error())
	assert.Equal(t, "custom", (&ErrForbidden{Message: "custom"}).Error())
}
