package db

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTalent_IsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		talent   Talent
		expected bool
	}{
		{"available", Talent{Status: TalentStatusAvailable}, true},
		{"available but archived", Talent{Status: TalentStatusAvailable, IsArchived: true}, false},
		{"rejected screening", Talent{Status: TalentStatusRejectedScreening}, false},
		{"rejected interview", Talent{Status: TalentStatusRejectedInterview}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.talent.IsAvailable(); got != tt.expected {
				t.Errorf("IsAvailable() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTalentFromRejection_ScreeningStage(t *testing.T) {
	c := &Candidate{
		ID:        uuid.New(),
		Name:      "Ana Souza",
		Age:       24,
		Location:  "Centro - Campinas, SP (2.3 km)",
		Education: "Ensino Médio completo",
		Skills:    StringArray{"Comunicação"},
		FitScore:  3.4,
	}

	talent := TalentFromRejection(c, "Chapeiro", StatusScreening)

	if talent.Status != TalentStatusRejectedScreening {
		t.Errorf("Status = %q, want %q", talent.Status, TalentStatusRejectedScreening)
	}
	if talent.OriginalCandidateID == nil || *talent.OriginalCandidateID != c.ID {
		t.Errorf("OriginalCandidateID = %v, want %v", talent.OriginalCandidateID, c.ID)
	}
	if talent.City != "Centro - Campinas, SP" {
		t.Errorf("City = %q, want distance suffix stripped", talent.City)
	}
	if talent.DesiredPosition != "Chapeiro" {
		t.Errorf("DesiredPosition = %q, want %q", talent.DesiredPosition, "Chapeiro")
	}
	if talent.Potential != 3.4 {
		t.Errorf("Potential = %v, want fit score carried over", talent.Potential)
	}
	if talent.RejectionReason == nil || !strings.Contains(*talent.RejectionReason, "3.4") {
		t.Errorf("RejectionReason = %v, want screening reason with score", talent.RejectionReason)
	}
}

func TestTalentFromRejection_InterviewStage(t *testing.T) {
	c := &Candidate{ID: uuid.New(), Name: "Bruno Lima", FitScore: 8.1}

	for _, prior := range []string{StatusApproved, StatusOffer, StatusWaitlist} {
		talent := TalentFromRejection(c, "Analista de Marketing", prior)
		if talent.Status != TalentStatusRejectedInterview {
			t.Errorf("prior %q: Status = %q, want %q", prior, talent.Status, TalentStatusRejectedInterview)
		}
		if talent.RejectionReason == nil || !strings.Contains(*talent.RejectionReason, "entrevista") {
			t.Errorf("prior %q: RejectionReason = %v, want interview reason", prior, talent.RejectionReason)
		}
	}
}

func TestTalentFromRejection_ZeroFitScoreDefaultsPotential(t *testing.T) {
	c := &Candidate{ID: uuid.New(), Name: "Carla Mendes"}

	talent := TalentFromRejection(c, "Cargo Anterior", StatusApplied)

	if talent.Potential != 5.0 {
		t.Errorf("Potential = %v, want default 5.0", talent.Potential)
	}
}
