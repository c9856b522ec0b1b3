package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
)

// handleListHistory returns audit events, most recent first. Supports
// action, user_id, and limit query filters.
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	filters := db.HistoryFilters{
		Action: r.URL.Query().Get("action"),
	}

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		filters.UserID = &userID
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 1000 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	events, err := s.db.ListHistory(r.Context(), filters)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, events)
}
