package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
)

// handleListTalents lists the talent pool.
func (s *Server) handleListTalents(w http.ResponseWriter, r *http.Request) {
	talents, err := s.db.ListTalents(r.Context(), r.URL.Query().Get("include_archived") == "true")
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, talents)
}

// handleGetTalent returns a single talent pool entry.
func (s *Server) handleGetTalent(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	talent, ok := s.loadTalent(w, r, id)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, talent)
}

// handleCreateTalent adds a talent pool entry.
func (s *Server) handleCreateTalent(w http.ResponseWriter, r *http.Request) {
	var req TalentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	talent := talentFromRequest(&req)
	id, err := s.db.CreateTalent(r.Context(), talent)
	if err != nil {
		s.handleError(w, err)
		return
	}
	talent.ID = id

	s.audit(r, db.ActionCreateTalent, "created talent "+talent.Name)
	s.jsonResponse(w, http.StatusCreated, talent)
}

// handleUpdateTalent replaces a talent's editable fields.
func (s *Server) handleUpdateTalent(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	existing, ok := s.loadTalent(w, r, id)
	if !ok {
		return
	}

	var req TalentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	talent := talentFromRequest(&req)
	talent.ID = id
	talent.OriginalCandidateID = existing.OriginalCandidateID
	talent.RejectionReason = existing.RejectionReason
	if err := s.db.UpdateTalent(r.Context(), talent); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateTalent, "updated talent "+talent.Name)
	s.jsonResponse(w, http.StatusOK, talent)
}

// handleSendTalentToJob promotes a talent into a job pipeline as a fresh
// applied candidate. The pool entry is archived, not removed.
func (s *Server) handleSendTalentToJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	talent, ok := s.loadTalent(w, r, id)
	if !ok {
		return
	}

	var req SendToJobRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	job, ok := s.loadJob(w, r, req.JobID)
	if !ok {
		return
	}
	if job.IsArchived() {
		s.handleError(w, &ErrConflict{Message: "cannot send talent to an archived job"})
		return
	}

	candidate := &db.Candidate{
		Name:            talent.Name,
		Age:             talent.Age,
		Location:        talent.City,
		Experience:      talent.Experience,
		Education:       talent.Education,
		Skills:          talent.Skills,
		Summary:         talent.DesiredPosition,
		JobID:           req.JobID,
		FitScore:        talent.Potential,
		Status:          db.StatusApplied,
		ApplicationDate: db.Date{Time: time.Now()},
		Source:          "talent-pool",
	}
	candidateID, err := s.db.CreateCandidate(r.Context(), candidate)
	if err != nil {
		s.handleError(w, err)
		return
	}
	candidate.ID = candidateID

	if err := s.db.SetTalentArchived(r.Context(), id, true); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionSendTalentToJob,
		"sent talent "+talent.Name+" to job "+job.Title)
	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleArchiveTalent soft-deletes a talent pool entry.
func (s *Server) handleArchiveTalent(w http.ResponseWriter, r *http.Request) {
	s.setTalentArchived(w, r, true, db.ActionArchiveTalent)
}

// handleRestoreTalent brings an archived talent back.
func (s *Server) handleRestoreTalent(w http.ResponseWriter, r *http.Request) {
	s.setTalentArchived(w, r, false, db.ActionRestoreTalent)
}

func (s *Server) setTalentArchived(w http.ResponseWriter, r *http.Request, archived bool, action string) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	talent, ok := s.loadTalent(w, r, id)
	if !ok {
		return
	}

	if err := s.db.SetTalentArchived(r.Context(), id, archived); err != nil {
		s.handleError(w, err)
		return
	}
	talent.IsArchived = archived

	s.audit(r, action, "talent "+talent.Name)
	s.jsonResponse(w, http.StatusOK, talent)
}

// handleDeleteTalent permanently removes an archived talent.
func (s *Server) handleDeleteTalent(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	talent, ok := s.loadTalent(w, r, id)
	if !ok {
		return
	}
	if !talent.IsArchived {
		s.handleError(w, &ErrConflict{Message: "talent must be archived before permanent deletion"})
		return
	}

	if err := s.db.DeleteTalent(r.Context(), id); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionDeleteTalent, "deleted talent "+talent.Name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadTalent(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*db.Talent, bool) {
	talent, err := s.db.GetTalent(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	if talent == nil {
		s.handleError(w, &ErrNotFound{Resource: "talent", ID: id})
		return nil, false
	}
	return talent, true
}

func talentFromRequest(req *TalentRequest) *db.Talent {
	status := req.Status
	if status == "" {
		status = db.TalentStatusAvailable
	}
	return &db.Talent{
		Name:            req.Name,
		Age:             req.Age,
		City:            req.City,
		Education:       req.Education,
		Experience:      req.Experience,
		Skills:          req.Skills,
		Potential:       req.Potential,
		Status:          status,
		DesiredPosition: req.DesiredPosition,
	}
}
