package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/notify"
	"github.com/mariana/talent-hub/internal/screening"
)

// handleListCandidates lists candidates with optional job, status, and
// archived filters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filters := db.CandidateFilters{
		Status:          r.URL.Query().Get("status"),
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}
	if jobParam := r.URL.Query().Get("job_id"); jobParam != "" {
		jobID, err := uuid.Parse(jobParam)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid job_id")
			return
		}
		filters.JobID = &jobID
	}

	candidates, err := s.db.ListCandidates(r.Context(), filters)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// handleGetCandidate returns a single candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCreateCandidate adds a candidate to a job pipeline.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if _, ok := s.loadJob(w, r, req.JobID); !ok {
		return
	}

	candidate, err := candidateFromRequest(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateCandidate(r.Context(), candidate)
	if err != nil {
		s.handleError(w, err)
		return
	}
	candidate.ID = id

	s.audit(r, db.ActionCreateCandidate, "created candidate "+candidate.Name)
	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleUpdateCandidate replaces a candidate's editable fields. Status,
// interview, and analysis go through their dedicated endpoints.
func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	existing, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	var req CandidateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	candidate, err := candidateFromRequest(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	candidate.ID = id
	candidate.Status = existing.Status
	candidate.Interview = existing.Interview
	candidate.HireDate = existing.HireDate
	candidate.AIAnalysis = existing.AIAnalysis

	if err := s.db.UpdateCandidate(r.Context(), candidate); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateCandidate, "updated candidate "+candidate.Name)
	s.bus.Publish(notify.EventCandidateUpdated, map[string]string{"id": id.String()})
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCandidateStatus transitions a candidate to a new status. Hire date
// is set when entering hired and cleared when leaving it.
func (s *Server) handleCandidateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	var req StatusRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if !db.IsValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "invalid status: "+req.Status)
		return
	}

	priorStatus := candidate.Status
	candidate.ApplyStatus(req.Status, time.Now())
	if err := s.db.UpdateCandidateStatus(r.Context(), id, candidate.Status, candidate.HireDate); err != nil {
		s.handleError(w, err)
		return
	}

	// rejected candidates flow into the talent pool for future openings
	if candidate.Status == db.StatusRejected && priorStatus != db.StatusRejected {
		s.moveRejectedToTalentPool(r, candidate, priorStatus)
	}

	s.audit(r, db.ActionUpdateCandidate,
		fmt.Sprintf("candidate %s status -> %s", candidate.Name, req.Status))
	s.bus.Publish(notify.EventCandidateUpdated, map[string]string{
		"id":     id.String(),
		"status": candidate.Status,
	})
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleArchiveCandidate soft-deletes a candidate.
func (s *Server) handleArchiveCandidate(w http.ResponseWriter, r *http.Request) {
	s.setCandidateArchived(w, r, true, db.ActionArchiveCandidate)
}

// handleRestoreCandidate brings an archived candidate back.
func (s *Server) handleRestoreCandidate(w http.ResponseWriter, r *http.Request) {
	s.setCandidateArchived(w, r, false, db.ActionRestoreCandidate)
}

func (s *Server) setCandidateArchived(w http.ResponseWriter, r *http.Request, archived bool, action string) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}

	if err := s.db.SetCandidateArchived(r.Context(), id, archived); err != nil {
		s.handleError(w, err)
		return
	}
	candidate.IsArchived = archived

	s.audit(r, action, "candidate "+candidate.Name)
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleDeleteCandidate permanently removes an archived candidate.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}
	if !candidate.IsArchived {
		s.handleError(w, &ErrConflict{Message: "candidate must be archived before permanent deletion"})
		return
	}

	if err := s.db.DeleteCandidate(r.Context(), id); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionDeleteCandidate, "deleted candidate "+candidate.Name)
	w.WriteHeader(http.StatusNoContent)
}

// handleListScoredCandidates returns a job's candidates with screening
// scores computed against the supplied required keywords.
func (s *Server) handleListScoredCandidates(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.loadJob(w, r, jobID); !ok {
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{JobID: &jobID})
	if err != nil {
		s.handleError(w, err)
		return
	}

	keywords := screening.ParseKeywords(r.URL.Query().Get("required_keywords"))
	s.jsonResponse(w, http.StatusOK, screening.ScoreAll(candidates, keywords))
}

// moveRejectedToTalentPool adds a freshly rejected candidate to the talent
// pool, once per candidate. Pool insertion is a side effect of the status
// transition; failures are logged, never surfaced.
func (s *Server) moveRejectedToTalentPool(r *http.Request, candidate *db.Candidate, priorStatus string) {
	exists, err := s.db.TalentExistsForCandidate(r.Context(), candidate.ID)
	if err != nil {
		log.Printf("talent pool: existence check for candidate %s failed: %v", candidate.ID, err)
		return
	}
	if exists {
		return
	}

	jobTitle := "Cargo Anterior"
	if job, err := s.db.GetJob(r.Context(), candidate.JobID); err == nil && job != nil {
		jobTitle = job.Title
	}

	talent := db.TalentFromRejection(candidate, jobTitle, priorStatus)
	if _, err := s.db.CreateTalent(r.Context(), talent); err != nil {
		log.Printf("talent pool: failed to add rejected candidate %s: %v", candidate.ID, err)
		return
	}
	s.audit(r, db.ActionCreateTalent, "added rejected candidate "+candidate.Name+" to talent pool")
}

// candidateFromRequest builds a candidate record from a request payload.
func candidateFromRequest(req *CandidateRequest) (*db.Candidate, error) {
	applicationDate := db.Date{Time: time.Now()}
	if req.ApplicationDate != "" {
		parsed, err := db.NewDate(req.ApplicationDate)
		if err != nil {
			return nil, fmt.Errorf("invalid application_date: %w", err)
		}
		applicationDate = parsed
	}

	return &db.Candidate{
		Name:            req.Name,
		Age:             req.Age,
		MaritalStatus:   req.MaritalStatus,
		Location:        req.Location,
		Experience:      req.Experience,
		Education:       req.Education,
		Skills:          req.Skills,
		Summary:         req.Summary,
		JobID:           req.JobID,
		FitScore:        req.FitScore,
		Status:          db.StatusApplied,
		ApplicationDate: applicationDate,
		Source:          req.Source,
		Resume:          req.Resume,
	}, nil
}
