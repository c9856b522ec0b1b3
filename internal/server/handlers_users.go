package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/server/middleware"
)

// handleListUsers lists platform users. Password hashes never serialize.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.db.ListUsers(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, users)
}

// handleUpdateUser edits a user's profile.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	user, ok := s.loadUser(w, r, id)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if req.Username != user.Username {
		taken, err := s.db.CheckUsernameExists(r.Context(), req.Username)
		if err != nil {
			s.handleError(w, err)
			return
		}
		if taken {
			s.handleError(w, &ErrUsernameTaken{Username: req.Username})
			return
		}
	}

	if err := s.db.UpdateUser(r.Context(), id, req.Username, req.Specialty); err != nil {
		s.handleError(w, err)
		return
	}
	user.Username = req.Username
	user.Specialty = req.Specialty

	s.audit(r, db.ActionUpdateUser, "updated user "+user.Username)
	s.jsonResponse(w, http.StatusOK, user)
}

// handleSetUserRole promotes or demotes a user.
func (s *Server) handleSetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req SetRoleRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, err := s.userService.SetRole(r.Context(), id, req.Role)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionToggleAdmin, "set role of "+user.Username+" to "+req.Role)
	s.jsonResponse(w, http.StatusOK, user)
}

// handleDeleteUser removes a user account. Callers cannot delete themselves.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	user, ok := s.loadUser(w, r, id)
	if !ok {
		return
	}

	if callerID, err := middleware.GetUserID(r); err == nil && callerID == id {
		s.handleError(w, &ErrConflict{Message: "cannot delete your own account"})
		return
	}

	if err := s.db.DeleteUser(r.Context(), id); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionDeleteUser, "deleted user "+user.Username)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.User, bool) {
	user, err := s.db.GetUser(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if user == nil {
		s.handleError(w, &ErrNotFound{Resource: "user", ID: id})
		return nil, false
	}
	return user, true
}
