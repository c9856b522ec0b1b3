package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Participant reference prefixes. Messages address users and candidates
// through synthetic prefixed ids so a conversation can span both kinds.
const (
	refPrefixUser      = "user:"
	refPrefixCandidate = "cand:"
)

// UserRef builds the synthetic participant id for a user.
func UserRef(id uuid.UUID) string {
	return refPrefixUser + id.String()
}

// CandidateRef builds the synthetic participant id for a candidate.
func CandidateRef(id uuid.UUID) string {
	return refPrefixCandidate + id.String()
}

// ParseRef splits a synthetic participant id into kind ("user" or "cand")
// and UUID.
func ParseRef(ref string) (kind string, id uuid.UUID, err error) {
	switch {
	case strings.HasPrefix(ref, refPrefixUser):
		kind = "user"
		id, err = uuid.Parse(strings.TrimPrefix(ref, refPrefixUser))
	case strings.HasPrefix(ref, refPrefixCandidate):
		kind = "cand"
		id, err = uuid.Parse(strings.TrimPrefix(ref, refPrefixCandidate))
	default:
		err = fmt.Errorf("invalid participant ref: %q", ref)
	}
	return kind, id, err
}

// Message is a single chat message between two participants
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
	IsDeleted  bool      `json:"is_deleted,omitempty"`
}

// InvolvesParticipant reports whether ref is the sender or receiver.
func (m *Message) InvolvesParticipant(ref string) bool {
	return m.SenderID == ref || m.ReceiverID == ref
}
