package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Talent is a pool entry for a candidate not tied to an active job pipeline
type Talent struct {
	ID                  uuid.UUID   `json:"id"`
	OriginalCandidateID *uuid.UUID  `json:"original_candidate_id,omitempty"`
	Name                string      `json:"name"`
	Age                 int         `json:"age"`
	City                string      `json:"city,omitempty"`
	Education           string      `json:"education,omitempty"`
	Experience          string      `json:"experience,omitempty"`
	Skills              StringArray `json:"skills"`
	Potential           float64     `json:"potential"`
	Status              string      `json:"status"`
	DesiredPosition     string      `json:"desired_position,omitempty"`
	RejectionReason     *string     `json:"rejection_reason,omitempty"`
	IsArchived          bool        `json:"is_archived"`
	CreatedAt           time.Time   `json:"created_at"`
}

// IsAvailable reports whether the talent is open for new pipelines.
func (t *Talent) IsAvailable() bool {
	return t.Status == TalentStatusAvailable && !t.IsArchived
}

// TalentFromRejection builds the pool entry for a candidate leaving a
// pipeline as rejected. priorStatus is the status held before the
// transition: rejections out of applied/screening are labeled as screening
// rejections, anything later as interview rejections.
func TalentFromRejection(c *Candidate, jobTitle, priorStatus string) *Talent {
	screeningStage := priorStatus == StatusApplied || priorStatus == StatusScreening

	status := TalentStatusRejectedInterview
	reason := "Candidato não aprovado na fase de entrevista por critérios comportamentais ou técnicos."
	if screeningStage {
		status = TalentStatusRejectedScreening
		reason = fmt.Sprintf("Rejeitado na triagem inicial por baixa compatibilidade (Score: %.1f).", c.FitScore)
	}

	potential := c.FitScore
	if potential == 0 {
		potential = 5.0
	}

	// location strings may carry a distance suffix, e.g. "Centro - Campinas, SP (2.3 km)"
	city, _, _ := strings.Cut(c.Location, "(")

	id := c.ID
	return &Talent{
		OriginalCandidateID: &id,
		Name:                c.Name,
		Age:                 c.Age,
		City:                strings.TrimSpace(city),
		Education:           c.Education,
		Experience:          c.Experience,
		Skills:              c.Skills,
		Potential:           potential,
		Status:              status,
		DesiredPosition:     jobTitle,
		RejectionReason:     &reason,
	}
}
