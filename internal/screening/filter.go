package screening

import (
	"github.com/google/uuid"

	"github.com/mariana/talent-hub/internal/db"
)

// Config is the screening configuration for one filter pass.
// Keywords must be lowercase; use ParseKeywords to build them from user input.
type Config struct {
	RequiredKeywords []string `json:"required_keywords"`
	ExcludeKeywords  []string `json:"exclude_keywords"`
	MinScore         float64  `json:"min_score"`
	AutoReject       bool     `json:"auto_reject"`
}

// Outcome is the classification of a single screenable candidate.
type Outcome string

// Possible outcomes of a screening pass.
const (
	OutcomeApproved  Outcome = "approved"
	OutcomeRejected  Outcome = "rejected"
	OutcomeUnchanged Outcome = "unchanged"
)

// Classify decides the outcome for one candidate. The exclusion check runs
// first; rejection in any branch requires AutoReject.
func Classify(c *db.Candidate, cfg Config) Outcome {
	text := combinedText(c)

	if len(cfg.ExcludeKeywords) > 0 && countMatches(text, cfg.ExcludeKeywords) > 0 && cfg.AutoReject {
		return OutcomeRejected
	}

	if ComputeScore(c, cfg.RequiredKeywords).FinalScore >= cfg.MinScore {
		return OutcomeApproved
	}
	if cfg.AutoReject {
		return OutcomeRejected
	}
	return OutcomeUnchanged
}

// Preview holds the would-be results of a screening pass without mutating
// anything. Approved+Rejected+Unchanged always equals Total, the number of
// screenable candidates in the input.
type Preview struct {
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"`
}

// PreviewPass classifies every screenable candidate and tallies outcomes.
func PreviewPass(candidates []db.Candidate, cfg Config) Preview {
	var p Preview
	for i := range candidates {
		c := &candidates[i]
		if !c.IsScreenable() {
			continue
		}
		p.Total++
		switch Classify(c, cfg) {
		case OutcomeApproved:
			p.Approved++
		case OutcomeRejected:
			p.Rejected++
		default:
			p.Unchanged++
		}
	}
	return p
}

// Plan is a committable screening pass: the status changes to apply in one
// batch, plus a snapshot of prior statuses so the pass can be undone exactly.
type Plan struct {
	Changes  map[uuid.UUID]string
	Snapshot db.StatusSnapshot
	Preview  Preview
}

// BuildPlan produces the batch of status changes for a screening pass.
// Candidates outside the screenable statuses are never touched.
func BuildPlan(candidates []db.Candidate, cfg Config) Plan {
	plan := Plan{
		Changes:  make(map[uuid.UUID]string),
		Snapshot: db.StatusSnapshot{},
	}

	for i := range candidates {
		c := &candidates[i]
		if !c.IsScreenable() {
			continue
		}
		plan.Preview.Total++

		switch Classify(c, cfg) {
		case OutcomeApproved:
			plan.Preview.Approved++
			plan.Changes[c.ID] = db.StatusApproved
			plan.Snapshot[c.ID] = c.Status
		case OutcomeRejected:
			plan.Preview.Rejected++
			plan.Changes[c.ID] = db.StatusRejected
			plan.Snapshot[c.ID] = c.Status
		default:
			plan.Preview.Unchanged++
		}
	}
	return plan
}
