package server

import (
	"net/http"

	"github.com/mariana/talent-hub/internal/db"
)

// handleListJobs lists jobs, optionally filtered by status.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob returns a single job.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, id)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob creates a job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	job := jobFromRequest(&req)
	id, err := s.db.CreateJob(r.Context(), job)
	if err != nil {
		s.handleError(w, err)
		return
	}
	job.ID = id

	s.audit(r, db.ActionCreateJob, "created job "+job.Title)
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob replaces a job's editable fields.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	existing, ok := s.loadJob(w, r, id)
	if !ok {
		return
	}

	var req JobRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	job := jobFromRequest(&req)
	job.ID = id
	job.Status = existing.Status
	if err := s.db.UpdateJob(r.Context(), job); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateJob, "updated job "+job.Title)
	s.jsonResponse(w, http.StatusOK, job)
}

// handleArchiveJob soft-deletes a job.
func (s *Server) handleArchiveJob(w http.ResponseWriter, r *http.Request) {
	s.setJobStatus(w, r, db.JobStatusArchived, db.ActionArchiveJob)
}

// handleRestoreJob brings an archived job back.
func (s *Server) handleRestoreJob(w http.ResponseWriter, r *http.Request) {
	s.setJobStatus(w, r, db.JobStatusActive, db.ActionRestoreJob)
}

func (s *Server) setJobStatus(w http.ResponseWriter, r *http.Request, status, action string) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, id)
	if !ok {
		return
	}

	if err := s.db.SetJobStatus(r.Context(), id, status); err != nil {
		s.handleError(w, err)
		return
	}
	job.Status = status

	s.audit(r, action, "job "+job.Title)
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob permanently removes an archived job.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	job, ok := s.loadJob(w, r, id)
	if !ok {
		return
	}
	if !job.IsArchived() {
		s.handleError(w, &ErrConflict{Message: "job must be archived before permanent deletion"})
		return
	}

	if err := s.db.DeleteJob(r.Context(), id); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionDeleteJob, "deleted job "+job.Title)
	w.WriteHeader(http.StatusNoContent)
}

// handleImportJob fetches an external posting URL and returns a draft job.
func (s *Server) handleImportJob(w http.ResponseWriter, r *http.Request) {
	var req ImportJobRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	draft, err := s.importer.Import(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

func jobFromRequest(req *JobRequest) *db.Job {
	return &db.Job{
		Title:            req.Title,
		Department:       req.Department,
		Location:         req.Location,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Requirements:     req.Requirements,
		Sources:          req.Sources,
		Status:           db.JobStatusActive,
	}
}
