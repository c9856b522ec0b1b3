package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/server/middleware"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps a typed error to its HTTP status and writes it.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes the request body into dst and validates struct tags.
// A false return means the response has already been written.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validator.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// pathID parses the {id} path value as a UUID.
// A false return means the response has already been written.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// audit appends an event to the history log attributed to the authenticated
// caller. Audit failures are logged, never surfaced to the client.
func (s *Server) audit(r *http.Request, action, details string) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		log.Printf("audit: no authenticated user for %s: %v", action, err)
		return
	}

	username := ""
	if user, err := s.db.GetUser(r.Context(), userID); err == nil && user != nil {
		username = user.Username
	}

	if err := s.db.RecordHistory(r.Context(), userID, username, action, details); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}

// loadCandidate fetches a candidate or writes a 404.
func (s *Server) loadCandidate(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Candidate, bool) {
	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if candidate == nil {
		s.handleError(w, &ErrNotFound{Resource: "candidate", ID: id})
		return nil, false
	}
	return candidate, true
}

// loadJob fetches a job or writes a 404.
func (s *Server) loadJob(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Job, bool) {
	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if job == nil {
		s.handleError(w, &ErrNotFound{Resource: "job", ID: id})
		return nil, false
	}
	return job, true
}
