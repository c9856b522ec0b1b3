package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
)

// handleListDynamics lists group-dynamics sessions.
func (s *Server) handleListDynamics(w http.ResponseWriter, r *http.Request) {
	dynamics, err := s.db.ListDynamics(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, dynamics)
}

// handleGetDynamic returns a single session.
func (s *Server) handleGetDynamic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	dynamic, ok := s.loadDynamic(w, r, id)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, dynamic)
}

// handleCreateDynamic creates a group-dynamics session.
func (s *Server) handleCreateDynamic(w http.ResponseWriter, r *http.Request) {
	var req DynamicRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	dynamic, err := dynamicFromRequest(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateDynamic(r.Context(), dynamic)
	if err != nil {
		s.handleError(w, err)
		return
	}
	dynamic.ID = id

	s.audit(r, db.ActionCreateDynamic, "created dynamic "+dynamic.Title)
	s.jsonResponse(w, http.StatusCreated, dynamic)
}

// handleUpdateDynamic replaces a session's fields, including group notes.
func (s *Server) handleUpdateDynamic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.loadDynamic(w, r, id); !ok {
		return
	}

	var req DynamicRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	dynamic, err := dynamicFromRequest(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	dynamic.ID = id
	if err := s.db.UpdateDynamic(r.Context(), dynamic); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateDynamic, "updated dynamic "+dynamic.Title)
	s.jsonResponse(w, http.StatusOK, dynamic)
}

// handleDeleteDynamic removes a session.
func (s *Server) handleDeleteDynamic(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	dynamic, ok := s.loadDynamic(w, r, id)
	if !ok {
		return
	}

	if err := s.db.DeleteDynamic(r.Context(), id); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionDeleteDynamic, "deleted dynamic "+dynamic.Title)
	w.WriteHeader(http.StatusNoContent)
}

// handleDynamicLookup resolves a group by its short self-service code, so
// participants can find their group without an account. Only the group's
// public fields are returned.
func (s *Server) handleDynamicLookup(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing code")
		return
	}

	dynamics, err := s.db.ListDynamics(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	for i := range dynamics {
		if group := dynamics[i].FindGroupBySimpleID(code); group != nil {
			s.jsonResponse(w, http.StatusOK, map[string]any{
				"dynamic_title": dynamics[i].Title,
				"date":          dynamics[i].Date,
				"group_name":    group.Name,
				"members":       group.Members,
			})
			return
		}
	}
	s.errorResponse(w, http.StatusNotFound, "no group with code "+code)
}

func (s *Server) loadDynamic(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Dynamic, bool) {
	dynamic, err := s.db.GetDynamic(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if dynamic == nil {
		s.handleError(w, &ErrNotFound{Resource: "dynamic", ID: id})
		return nil, false
	}
	return dynamic, true
}

func dynamicFromRequest(req *DynamicRequest) (*db.Dynamic, error) {
	date, err := db.NewDate(req.Date)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = db.DynamicStatusScheduled
	}
	return &db.Dynamic{
		Title:        req.Title,
		Script:       req.Script,
		Date:         date,
		Participants: req.Participants,
		Groups:       req.Groups,
		GeneralNotes: req.GeneralNotes,
		Status:       status,
	}, nil
}
