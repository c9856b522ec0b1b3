package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	userID uuid.UUID
	role   string
}

func (s stubIdentity) GetUserID() uuid.UUID { return s.userID }
func (s stubIdentity) GetRole() string      { return s.role }

type stubValidator struct {
	identity Identity
	err      error
}

func (s stubValidator) ValidateToken(string) (Identity, error) {
	return s.identity, s.err
}

func TestAuthRejectsMissingOrMalformedHeader(t *testing.T) {
	middleware := Auth(stubValidator{identity: stubIdentity{userID: uuid.New(), role: "user"}})
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "token-only"},
		{"wrong scheme", "Basic abc123"},
		{"empty token", "Bearer "},
		{"too many parts", "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	middleware := Auth(stubValidator{err: fmt.Errorf("bad token")})
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthStoresIdentityInContext(t *testing.T) {
	userID := uuid.New()
	middleware := Auth(stubValidator{identity: stubIdentity{userID: userID, role: "admin"}})

	var gotID uuid.UUID
	var gotRole string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotID, err = GetUserID(r)
		require.NoError(t, err)
		gotRole, err = GetRole(r)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	// scheme comparison is case-insensitive
	req.Header.Set("Authorization", "bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "admin", gotRole)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/users/abc", nil)
		req = req.WithContext(WithIdentity(req.Context(), uuid.New(), "admin"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/users/abc", nil)
		req = req.WithContext(WithIdentity(req.Context(), uuid.New(), "user"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/users/abc", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetUserIDWithoutIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
	_, err2 := GetRole(req)
	assert.Error(t, err2)
}
