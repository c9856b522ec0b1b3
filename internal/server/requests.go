package server

import (
	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Specialty string `json:"specialty" validate:"max=128"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user and a bearer token.
type LoginResponse struct {
	User  *db.User `json:"user"`
	Token string   `json:"token"`
}

// UpdatePasswordRequest is the payload for a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// UpdateUserRequest is the payload for editing a user profile.
type UpdateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Specialty string `json:"specialty" validate:"max=128"`
}

// SetRoleRequest toggles a user's role.
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// JobRequest is the payload for creating or updating a job.
type JobRequest struct {
	Title            string         `json:"title" validate:"required,max=200"`
	Department       string         `json:"department" validate:"max=100"`
	Location         string         `json:"location" validate:"max=200"`
	Description      string         `json:"description"`
	Responsibilities []string       `json:"responsibilities"`
	Benefits         []string       `json:"benefits"`
	Requirements     []string       `json:"requirements"`
	Sources          []db.JobSource `json:"sources"`
}

// CandidateRequest is the payload for creating or updating a candidate.
type CandidateRequest struct {
	Name            string    `json:"name" validate:"required,max=200"`
	Age             int       `json:"age" validate:"gte=0,lte=120"`
	MaritalStatus   string    `json:"marital_status"`
	Location        string    `json:"location"`
	Experience      string    `json:"experience"`
	Education       string    `json:"education"`
	Skills          []string  `json:"skills"`
	Summary         string    `json:"summary"`
	JobID           uuid.UUID `json:"job_id" validate:"required"`
	FitScore        float64   `json:"fit_score" validate:"gte=0,lte=10"`
	ApplicationDate string    `json:"application_date" validate:"omitempty,datetime=2006-01-02"`
	Source          string    `json:"source"`
	Resume          db.Resume `json:"resume"`
}

// StatusRequest transitions a candidate to a new pipeline status.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// InterviewRequest schedules or replaces a candidate's interview.
type InterviewRequest struct {
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string   `json:"time" validate:"required,datetime=15:04"`
	Location     string   `json:"location" validate:"max=300"`
	Interviewers []string `json:"interviewers"`
	Notes        string   `json:"notes"`
	NoShow       bool     `json:"no_show"`
}

// BulkInterviewsRequest schedules or cancels interviews for many candidates.
// Notes are intentionally absent: bulk scheduling carries no per-candidate
// notes. Cancel set to true removes the interviews instead.
type BulkInterviewsRequest struct {
	CandidateIDs []uuid.UUID `json:"candidate_ids" validate:"required,min=1"`
	Date         string      `json:"date" validate:"required_unless=Cancel true,omitempty,datetime=2006-01-02"`
	Time         string      `json:"time" validate:"required_unless=Cancel true,omitempty,datetime=15:04"`
	Location     string      `json:"location"`
	Interviewers []string    `json:"interviewers"`
	Cancel       bool        `json:"cancel"`
}

// ScreeningRequest is the configuration for a screening preview or apply.
type ScreeningRequest struct {
	RequiredKeywords string  `json:"required_keywords"`
	ExcludeKeywords  string  `json:"exclude_keywords"`
	MinScore         float64 `json:"min_score" validate:"gte=0,lte=10"`
	AutoReject       bool    `json:"auto_reject"`
}

// TalentRequest is the payload for creating or updating a talent pool entry.
type TalentRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Age             int      `json:"age" validate:"gte=0,lte=120"`
	City            string   `json:"city"`
	Education       string   `json:"education"`
	Experience      string   `json:"experience"`
	Skills          []string `json:"skills"`
	Potential       float64  `json:"potential" validate:"gte=0,lte=10"`
	Status          string   `json:"status"`
	DesiredPosition string   `json:"desired_position"`
}

// SendToJobRequest promotes a talent into a job pipeline.
type SendToJobRequest struct {
	JobID uuid.UUID `json:"job_id" validate:"required"`
}

// DynamicRequest is the payload for creating or updating a dynamics session.
type DynamicRequest struct {
	Title        string            `json:"title" validate:"required,max=200"`
	Script       string            `json:"script"`
	Date         string            `json:"date" validate:"required,datetime=2006-01-02"`
	Participants []uuid.UUID       `json:"participants"`
	Groups       []db.DynamicGroup `json:"groups"`
	GeneralNotes string            `json:"general_notes"`
	Status       string            `json:"status" validate:"omitempty,oneof=scheduled completed"`
}

// MessageRequest sends a chat message between two participants.
type MessageRequest struct {
	SenderID   string `json:"sender_id" validate:"required"`
	ReceiverID string `json:"receiver_id" validate:"required"`
	Text       string `json:"text" validate:"required,max=4000"`
}

// MessagePatchRequest edits or soft-deletes a message.
type MessagePatchRequest struct {
	Text      *string `json:"text" validate:"omitempty,max=4000"`
	IsDeleted *bool   `json:"is_deleted"`
}

// ImportJobRequest fetches a job posting from an external URL.
type ImportJobRequest struct {
	URL string `json:"url" validate:"required,url"`
}
