package server

import (
	"net/http"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/notify"
)

// handleAnalyzeCandidate runs an AI analysis of a candidate against their
// job and caches the result on the candidate row. Provider failures return
// 502; the retry decision is left to the caller.
func (s *Server) handleAnalyzeCandidate(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI analysis is not configured")
		return
	}

	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, candidate.JobID)
	if !ok {
		return
	}

	// cached result unless the caller forces a refresh
	if candidate.AIAnalysis != nil && r.URL.Query().Get("refresh") != "true" {
		s.jsonResponse(w, http.StatusOK, candidate.AIAnalysis)
		return
	}

	analysis, err := s.analyzer.AnalyzeCandidate(r.Context(), candidate, job)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "analysis failed: "+err.Error())
		return
	}

	if err := s.db.SetCandidateAnalysis(r.Context(), id, analysis); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateCandidate, "analyzed candidate "+candidate.Name)
	s.bus.Publish(notify.EventCandidateUpdated, map[string]string{"id": id.String()})
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleAnalyzeJobCandidates analyzes every unanalyzed candidate in a job's
// pipeline in one pass. Cached analyses are kept; a provider failure aborts
// the whole batch with 502.
func (s *Server) handleAnalyzeJobCandidates(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI analysis is not configured")
		return
	}

	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, jobID)
	if !ok {
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{JobID: &jobID})
	if err != nil {
		s.handleError(w, err)
		return
	}

	var pending []*db.Candidate
	for i := range candidates {
		if candidates[i].AIAnalysis == nil {
			pending = append(pending, &candidates[i])
		}
	}
	if len(pending) == 0 {
		s.jsonResponse(w, http.StatusOK, map[string]int{"analyzed": 0})
		return
	}

	analyses, err := s.analyzer.AnalyzeMany(r.Context(), pending, job)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "analysis failed: "+err.Error())
		return
	}
	for i, analysis := range analyses {
		if err := s.db.SetCandidateAnalysis(r.Context(), pending[i].ID, analysis); err != nil {
			s.handleError(w, err)
			return
		}
	}

	s.audit(r, db.ActionUpdateCandidate,
		"analyzed "+pluralCandidates(len(pending))+" for job "+job.Title)
	s.bus.Publish(notify.EventCandidateUpdated, map[string]string{"job_id": jobID.String()})
	s.jsonResponse(w, http.StatusOK, map[string]int{"analyzed": len(pending)})
}

// handleDecisionSummary generates a free-text comparison of a job's
// current finalists for the decision support panel. Nothing is persisted.
func (s *Server) handleDecisionSummary(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI analysis is not configured")
		return
	}

	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, jobID)
	if !ok {
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{JobID: &jobID})
	if err != nil {
		s.handleError(w, err)
		return
	}

	var finalists []*db.Candidate
	for i := range candidates {
		switch candidates[i].Status {
		case db.StatusApproved, db.StatusOffer, db.StatusWaitlist:
			finalists = append(finalists, &candidates[i])
		}
	}
	if len(finalists) == 0 {
		s.errorResponse(w, http.StatusConflict, "no finalists to compare")
		return
	}

	summary, err := s.analyzer.DecisionSummary(r.Context(), finalists, job)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "summary failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleInterviewInvitation drafts an invitation message for a candidate,
// including schedule details when an interview is already set.
func (s *Server) handleInterviewInvitation(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI analysis is not configured")
		return
	}

	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	candidate, ok := s.loadCandidate(w, r, id)
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, candidate.JobID)
	if !ok {
		return
	}

	invitation, err := s.analyzer.InterviewInvitation(r.Context(), candidate, job)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "invitation failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"invitation": invitation})
}
