package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/scheduling"
)

// handleSlotSuggestions proposes up to three free interview slots for a
// candidate, plus a suggested interviewer for the job's department.
func (s *Server) handleSlotSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	booked, err := s.db.ListBookedInterviews(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	slots := scheduling.SuggestSlots(time.Now(), scheduling.BuildBookedSet(booked))

	var interviewer *db.User
	if job, err := s.db.GetJob(r.Context(), candidate.JobID); err == nil && job != nil {
		users, err := s.db.ListUsers(r.Context())
		if err == nil {
			interviewer = scheduling.SuggestInterviewer(users, job.Department)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"slots":       slots,
		"interviewer": interviewer,
	})
}

// handleBookedTimes returns the interview times already booked on a date,
// for conflict warnings in scheduling UIs.
func (s *Server) handleBookedTimes(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{})
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"date":  date,
		"times": scheduling.BookedTimes(date, candidates),
	})
}

// handleSetInterview schedules or replaces a candidate's interview.
func (s *Server) handleSetInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	var req InterviewRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	interview := &db.Interview{
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Interviewers: req.Interviewers,
		Notes:        req.Notes,
		NoShow:       req.NoShow,
	}
	if err := s.db.SetCandidateInterview(r.Context(), id, interview); err != nil {
		s.handleError(w, err)
		return
	}
	candidate.Interview = interview

	s.audit(r, db.ActionUpdateCandidate,
		"scheduled interview for "+candidate.Name+" on "+req.Date+" "+req.Time)
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCancelInterview removes a candidate's scheduled interview.
func (s *Server) handleCancelInterview(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	if err := s.db.SetCandidateInterview(r.Context(), id, nil); err != nil {
		s.handleError(w, err)
		return
	}
	candidate.Interview = nil

	s.audit(r, db.ActionUpdateCandidate, "cancelled interview for "+candidate.Name)
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleBulkInterviews schedules or cancels interviews for many candidates
// at once. Bulk scheduling carries no per-candidate notes.
func (s *Server) handleBulkInterviews(w http.ResponseWriter, r *http.Request) {
	var req BulkInterviewsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	var interview *db.Interview
	if !req.Cancel {
		interview = &db.Interview{
			Date:         req.Date,
			Time:         req.Time,
			Location:     req.Location,
			Interviewers: req.Interviewers,
		}
	}

	updated := 0
	for _, candidateID := range req.CandidateIDs {
		candidate, err := s.db.GetCandidate(r.Context(), candidateID)
		if err != nil {
			s.handleError(w, err)
			return
		}
		if candidate == nil {
			continue
		}
		if err := s.db.SetCandidateInterview(r.Context(), candidateID, interview); err != nil {
			s.handleError(w, err)
			return
		}
		updated++
	}

	action := "scheduled"
	if req.Cancel {
		action = "cancelled"
	}
	s.audit(r, db.ActionUpdateCandidate,
		action+" interviews for "+pluralCandidates(updated))
	s.jsonResponse(w, http.StatusOK, map[string]int{"updated": updated})
}

func pluralCandidates(n int) string {
	if n == 1 {
		return "1 candidate"
	}
	return fmt.Sprintf("%d candidates", n)
}
