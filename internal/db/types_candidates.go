package db

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume is the structured resume document embedded in a candidate record.
type Resume struct {
	ProfessionalExperience []ResumeExperience `json:"professional_experience"`
	Courses                []ResumeCourse     `json:"courses"`
	Availability           string             `json:"availability"`
	Contact                ResumeContact      `json:"contact"`
	PersonalSummary        string             `json:"personal_summary"`
	OwnTransport           string             `json:"own_transport,omitempty"`
	Motivation             string             `json:"motivation,omitempty"`
	FiveYearPlan           string             `json:"five_year_plan,omitempty"`
}

// ResumeExperience is a single professional experience entry
type ResumeExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// ResumeCourse is a course or certification entry
type ResumeCourse struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

// ResumeContact holds the candidate's contact details
type ResumeContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Scan implements the Scanner interface for Resume (JSONB column)
func (r *Resume) Scan(src interface{}) error { return scanJSONB(src, r) }

// Value implements the Valuer interface for Resume
func (r Resume) Value() (driver.Value, error) { return json.Marshal(r) }

// Interview is the single active interview embedded in a candidate record.
// Scheduling a new interview replaces any prior one.
type Interview struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	Time         string   `json:"time"` // HH:MM
	Location     string   `json:"location"`
	Interviewers []string `json:"interviewers"`
	Notes        string   `json:"notes"`
	NoShow       bool     `json:"no_show,omitempty"`
}

// Scan implements the Scanner interface for Interview
func (i *Interview) Scan(src interface{}) error { return scanJSONB(src, i) }

// Value implements the Valuer interface for Interview
func (i Interview) Value() (driver.Value, error) { return json.Marshal(i) }

// AIAnalysis is the cached result of an AI candidate analysis.
type AIAnalysis struct {
	Summary            string   `json:"summary"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	FitScore           float64  `json:"fit_score"`
	InterviewQuestions []string `json:"interview_questions"`
	ResumeAnalysis     string   `json:"resume_analysis,omitempty"`
}

// Scan implements the Scanner interface for AIAnalysis
func (a *AIAnalysis) Scan(src interface{}) error { return scanJSONB(src, a) }

// Value implements the Valuer interface for AIAnalysis
func (a AIAnalysis) Value() (driver.Value, error) { return json.Marshal(a) }

// Candidate represents an applicant in a job pipeline
type Candidate struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Age             int         `json:"age"`
	MaritalStatus   string      `json:"marital_status,omitempty"`
	Location        string      `json:"location,omitempty"`
	Experience      string      `json:"experience,omitempty"`
	Education       string      `json:"education,omitempty"`
	Skills          StringArray `json:"skills"`
	Summary         string      `json:"summary"`
	JobID           uuid.UUID   `json:"job_id"`
	FitScore        float64     `json:"fit_score"`
	Status          string      `json:"status"`
	ApplicationDate Date        `json:"application_date"`
	Source          string      `json:"source,omitempty"`
	IsArchived      bool        `json:"is_archived"`
	Resume          Resume      `json:"resume"`
	Interview       *Interview  `json:"interview,omitempty"`
	HireDate        *Date       `json:"hire_date,omitempty"`
	AIAnalysis      *AIAnalysis `json:"ai_analysis,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// IsScreenable reports whether the candidate is in a state the screening
// filter may act on.
func (c *Candidate) IsScreenable() bool {
	return c.Status == StatusApplied || c.Status == StatusScreening
}

// ApplyStatus sets the candidate status and maintains the hire-date
// invariant: hire_date is set only while status is hired.
func (c *Candidate) ApplyStatus(status string, now time.Time) {
	prior := c.Status
	c.Status = status
	if status == StatusHired && prior != StatusHired {
		c.HireDate = &Date{Time: now}
	}
	if status != StatusHired {
		c.HireDate = nil
	}
}
