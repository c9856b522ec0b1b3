package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// CandidateStatus constants. The data layer permits any direct assignment;
// the happy path is applied -> screening -> approved -> offer -> hired.
const (
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusHired     = "hired"
	StatusPending   = "pending"
	StatusWaitlist  = "waitlist"
	StatusOffer     = "offer"
)

// Job status constants
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// User role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Talent pool status labels. Rejected candidates moved to the pool carry a
// label naming the stage they were rejected at.
const (
	TalentStatusAvailable         = "Disponível"
	TalentStatusRejectedScreening = "Rejeitado (Triagem)"
	TalentStatusRejectedInterview = "Rejeitado (Entrevista)"
)

// ValidStatuses lists every candidate status the API accepts.
var ValidStatuses = []string{
	StatusApplied, StatusScreening, StatusApproved, StatusRejected,
	StatusHired, StatusPending, StatusWaitlist, StatusOffer,
}

// IsValidStatus reports whether s is a known candidate status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Date is a custom type for handling SQL DATE (YYYY-MM-DD)
type Date struct {
	time.Time
}

// NewDate builds a Date from a YYYY-MM-DD string.
func NewDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Scan implements the Scanner interface
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	var err error
	d.Time, err = time.Parse("2006-01-02", str)
	return err
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// scanJSONB unmarshals a JSONB column into dest, tolerating NULL.
func scanJSONB(src interface{}, dest any) error {
	if src == nil {
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, dest)
}
