package db

import (
	"testing"

	"github.com/google/uuid"
)

func TestParticipantRefs_RoundTrip(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		ref  string
		kind string
	}{
		{"user ref", UserRef(id), "user"},
		{"candidate ref", CandidateRef(id), "cand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, parsed, err := ParseRef(tt.ref)
			if err != nil {
				t.Fatalf("ParseRef(%q) error: %v", tt.ref, err)
			}
			if kind != tt.kind {
				t.Errorf("kind = %q, want %q", kind, tt.kind)
			}
			if parsed != id {
				t.Errorf("id = %s, want %s", parsed, id)
			}
		})
	}
}

func TestParseRef_Invalid(t *testing.T) {
	tests := []string{"", "bogus", "user:", "user:not-a-uuid", "job:" + uuid.New().String()}

	for _, ref := range tests {
		if _, _, err := ParseRef(ref); err == nil {
			t.Errorf("ParseRef(%q) expected error, got nil", ref)
		}
	}
}

func TestMessage_InvolvesParticipant(t *testing.T) {
	sender := UserRef(uuid.New())
	receiver := CandidateRef(uuid.New())
	m := &Message{SenderID: sender, ReceiverID: receiver}

	if !m.InvolvesParticipant(sender) {
		t.Error("expected message to involve sender")
	}
	if !m.InvolvesParticipant(receiver) {
		t.Error("expected message to involve receiver")
	}
	if m.InvolvesParticipant(UserRef(uuid.New())) {
		t.Error("expected message not to involve a third party")
	}
}
