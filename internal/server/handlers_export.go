package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/export"
)

// exportCandidates resolves the candidate set for an export request.
// A job_id query parameter narrows the export to one pipeline.
func (s *Server) exportCandidates(w http.ResponseWriter, r *http.Request) ([]*db.Candidate, *db.Job, bool) {
	filters := db.CandidateFilters{
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
	}

	var job *db.Job
	if raw := r.URL.Query().Get("job_id"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid job_id")
			return nil, nil, false
		}
		var ok bool
		if job, ok = s.loadJob(w, r, jobID); !ok {
			return nil, nil, false
		}
		filters.JobID = &jobID
	}

	candidates, err := s.db.ListCandidates(r.Context(), filters)
	if err != nil {
		s.handleError(w, err)
		return nil, nil, false
	}

	refs := make([]*db.Candidate, len(candidates))
	for i := range candidates {
		refs[i] = &candidates[i]
	}
	return refs, job, true
}

// handleExportCSV streams the candidate export as CSV.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	candidates, _, ok := s.exportCandidates(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="candidates.csv"`)
	if err := export.WriteCSV(w, candidates); err != nil {
		s.handleError(w, err)
	}
}

// handleExportJSON streams the candidate export as JSON.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	candidates, _, ok := s.exportCandidates(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="candidates.json"`)
	if err := export.WriteJSON(w, candidates); err != nil {
		s.handleError(w, err)
	}
}

// handleExportXLSX streams an Excel report of a job's pipeline. The job_id
// query parameter is required because the summary sheet is per job.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	candidates, job, ok := s.exportCandidates(w, r)
	if !ok {
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusBadRequest, "job_id is required for the Excel report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="candidates.xlsx"`)
	if err := export.WriteExcel(w, job, candidates); err != nil {
		s.handleError(w, err)
	}
}
