package db

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Dynamic status constants
const (
	DynamicStatusScheduled = "scheduled"
	DynamicStatusCompleted = "completed"
)

// DynamicGroup is a breakout group inside a group-dynamics session
type DynamicGroup struct {
	Name            string            `json:"name"`
	Members         []uuid.UUID       `json:"members"`
	GroupNotes      string            `json:"group_notes,omitempty"`
	IndividualNotes map[string]string `json:"individual_notes,omitempty"` // candidate id -> note
	SimpleID        string            `json:"simple_id,omitempty"`        // short code for self-service lookup
}

// DynamicGroups handles the JSONB groups column
type DynamicGroups []DynamicGroup

// Scan implements the Scanner interface for DynamicGroups
func (g *DynamicGroups) Scan(src interface{}) error {
	if src == nil {
		*g = DynamicGroups{}
		return nil
	}
	return scanJSONB(src, g)
}

// Value implements the Valuer interface for DynamicGroups
func (g DynamicGroups) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g)
}

// UUIDArray handles JSONB arrays of UUIDs
type UUIDArray []uuid.UUID

// Scan implements the Scanner interface for UUIDArray
func (a *UUIDArray) Scan(src interface{}) error {
	if src == nil {
		*a = UUIDArray{}
		return nil
	}
	return scanJSONB(src, a)
}

// Value implements the Valuer interface for UUIDArray
func (a UUIDArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Dynamic is a group-exercise session
type Dynamic struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Script       string        `json:"script"`
	Date         Date          `json:"date"`
	Participants UUIDArray     `json:"participants"`
	Groups       DynamicGroups `json:"groups"`
	GeneralNotes string        `json:"general_notes,omitempty"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// FindGroupBySimpleID returns the group carrying the given self-service
// lookup code, or nil.
func (d *Dynamic) FindGroupBySimpleID(simpleID string) *DynamicGroup {
	for i := range d.Groups {
		if d.Groups[i].SimpleID == simpleID {
			return &d.Groups[i]
		}
	}
	return nil
}
