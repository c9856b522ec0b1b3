package db

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobSource is an external posting link attached to a job
type JobSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// JobSources handles the JSONB sources column
type JobSources []JobSource

// Scan implements the Scanner interface for JobSources
func (s *JobSources) Scan(src interface{}) error {
	if src == nil {
		*s = JobSources{}
		return nil
	}
	return scanJSONB(src, s)
}

// Value implements the Valuer interface for JobSources
func (s JobSources) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Job represents a job posting
type Job struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Department       string      `json:"department"`
	Location         string      `json:"location"`
	Description      string      `json:"description"`
	Responsibilities StringArray `json:"responsibilities"`
	Benefits         StringArray `json:"benefits"`
	Requirements     StringArray `json:"requirements"`
	Sources          JobSources  `json:"sources"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// IsArchived reports whether the job has been soft-deleted.
func (j *Job) IsArchived() bool {
	return j.Status == JobStatusArchived
}
