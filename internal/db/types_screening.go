package db

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StatusSnapshot maps candidate ids to the status they held before a
// screening pass was applied. Undo restores exactly these values.
type StatusSnapshot map[uuid.UUID]string

// Scan implements the Scanner interface for StatusSnapshot
func (s *StatusSnapshot) Scan(src interface{}) error {
	if src == nil {
		*s = StatusSnapshot{}
		return nil
	}
	return scanJSONB(src, s)
}

// Value implements the Valuer interface for StatusSnapshot
func (s StatusSnapshot) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// ScreeningRunConfig holds the screening configuration a run was applied with
type ScreeningRunConfig struct {
	RequiredKeywords []string `json:"required_keywords"`
	ExcludeKeywords  []string `json:"exclude_keywords"`
	MinScore         float64  `json:"min_score"`
	AutoReject       bool     `json:"auto_reject"`
}

// Scan implements the Scanner interface for ScreeningRunConfig
func (c *ScreeningRunConfig) Scan(src interface{}) error { return scanJSONB(src, c) }

// Value implements the Valuer interface for ScreeningRunConfig
func (c ScreeningRunConfig) Value() (driver.Value, error) { return json.Marshal(c) }

// ScreeningRun records an applied screening pass on a job pipeline,
// including the prior statuses of every affected candidate
type ScreeningRun struct {
	ID            uuid.UUID          `json:"id"`
	JobID         uuid.UUID          `json:"job_id"`
	Config        ScreeningRunConfig `json:"config"`
	Snapshot      StatusSnapshot     `json:"snapshot"`
	ApprovedCount int                `json:"approved_count"`
	RejectedCount int                `json:"rejected_count"`
	CreatedAt     time.Time          `json:"created_at"`
	UndoneAt      *time.Time         `json:"undone_at,omitempty"`
}

// IsUndone reports whether the run has already been reverted.
func (r *ScreeningRun) IsUndone() bool {
	return r.UndoneAt != nil
}
