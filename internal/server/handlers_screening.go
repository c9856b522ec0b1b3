package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/notify"
	"github.com/mariana/talent-hub/internal/screening"
)

// handleScreeningPreview classifies a job's candidates against a screening
// configuration without changing anything.
func (s *Server) handleScreeningPreview(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.loadJob(w, r, jobID); !ok {
		return
	}

	cfg, err := screeningConfigFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{JobID: &jobID})
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, screening.PreviewPass(candidates, cfg))
}

// handleScreeningApply commits a screening pass: approved and rejected
// statuses are written in one batch and the prior statuses are snapshotted
// so the pass can be undone exactly.
func (s *Server) handleScreeningApply(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.loadJob(w, r, jobID); !ok {
		return
	}

	var req ScreeningRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	cfg := screening.Config{
		RequiredKeywords: screening.ParseKeywords(req.RequiredKeywords),
		ExcludeKeywords:  screening.ParseKeywords(req.ExcludeKeywords),
		MinScore:         req.MinScore,
		AutoReject:       req.AutoReject,
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilters{JobID: &jobID})
	if err != nil {
		s.handleError(w, err)
		return
	}

	plan := screening.BuildPlan(candidates, cfg)
	if len(plan.Changes) > 0 {
		if err := s.db.BulkUpdateCandidateStatuses(r.Context(), plan.Changes); err != nil {
			s.handleError(w, err)
			return
		}
	}

	run := &db.ScreeningRun{
		JobID: jobID,
		Config: db.ScreeningRunConfig{
			RequiredKeywords: cfg.RequiredKeywords,
			ExcludeKeywords:  cfg.ExcludeKeywords,
			MinScore:         cfg.MinScore,
			AutoReject:       cfg.AutoReject,
		},
		Snapshot:      plan.Snapshot,
		ApprovedCount: plan.Preview.Approved,
		RejectedCount: plan.Preview.Rejected,
	}
	runID, err := s.db.CreateScreeningRun(r.Context(), run)
	if err != nil {
		s.handleError(w, err)
		return
	}
	run.ID = runID

	s.audit(r, db.ActionApplyScreening,
		fmt.Sprintf("screening on job %s: %d approved, %d rejected",
			jobID, plan.Preview.Approved, plan.Preview.Rejected))
	s.bus.Publish(notify.EventScreeningApplied, map[string]string{"job_id": jobID.String()})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":  runID,
		"preview": plan.Preview,
	})
}

// handleScreeningUndo reverts the latest screening run on a job, restoring
// every affected candidate to the exact status held before the pass.
func (s *Server) handleScreeningUndo(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if _, ok := s.loadJob(w, r, jobID); !ok {
		return
	}

	run, err := s.db.GetLatestScreeningRun(r.Context(), jobID)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if run == nil {
		s.handleError(w, &ErrConflict{Message: "no screening run to undo"})
		return
	}

	if len(run.Snapshot) > 0 {
		if err := s.db.BulkUpdateCandidateStatuses(r.Context(), run.Snapshot); err != nil {
			s.handleError(w, err)
			return
		}
	}
	if err := s.db.MarkScreeningRunUndone(r.Context(), run.ID); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUndoScreening,
		fmt.Sprintf("undid screening run %s on job %s (%d candidates restored)",
			run.ID, jobID, len(run.Snapshot)))
	s.bus.Publish(notify.EventScreeningApplied, map[string]string{"job_id": jobID.String()})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":   run.ID,
		"restored": len(run.Snapshot),
	})
}

// screeningConfigFromQuery reads a screening configuration from query
// parameters, for the read-only preview endpoint.
func screeningConfigFromQuery(r *http.Request) (screening.Config, error) {
	cfg := screening.Config{
		RequiredKeywords: screening.ParseKeywords(r.URL.Query().Get("required_keywords")),
		ExcludeKeywords:  screening.ParseKeywords(r.URL.Query().Get("exclude_keywords")),
		AutoReject:       r.URL.Query().Get("auto_reject") == "true",
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil || minScore < 0 || minScore > 10 {
			return cfg, fmt.Errorf("invalid min_score: %q", raw)
		}
		cfg.MinScore = minScore
	}
	return cfg, nil
}
