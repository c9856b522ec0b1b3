package screening

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/db"
)

func newScreenable(status string, fitScore float64, skills []string, summary string) db.Candidate {
	return db.Candidate{
		ID:       uuid.New(),
		Status:   status,
		FitScore: fitScore,
		Skills:   db.StringArray(skills),
		Summary:  summary,
	}
}

func TestClassify_ExcludedKeywordRejectsRegardlessOfScore(t *testing.T) {
	// high score, but summary mentions an excluded keyword
	c := newScreenable(db.StatusApplied, 10, []string{"vendas"}, "formado em contabilidade")
	cfg := Config{
		ExcludeKeywords: []string{"contabilidade"},
		MinScore:        7,
		AutoReject:      true,
	}

	assert.Equal(t, OutcomeRejected, Classify(&c, cfg))
}

func TestClassify_ExcludedKeywordWithoutAutoRejectFallsThrough(t *testing.T) {
	c := newScreenable(db.StatusApplied, 10, []string{"vendas"}, "contabilidade")
	cfg := Config{
		ExcludeKeywords: []string{"contabilidade"},
		MinScore:        7,
		AutoReject:      false,
	}

	// exclusion only rejects when autoReject is on; score still approves
	assert.Equal(t, OutcomeApproved, Classify(&c, cfg))
}

func TestClassify_BelowThreshold(t *testing.T) {
	c := newScreenable(db.StatusApplied, 2, nil, "")

	assert.Equal(t, OutcomeUnchanged, Classify(&c, Config{MinScore: 7}))
	assert.Equal(t, OutcomeRejected, Classify(&c, Config{MinScore: 7, AutoReject: true}))
}

func TestPreviewPass_PartitionInvariant(t *testing.T) {
	candidates := []db.Candidate{
		newScreenable(db.StatusApplied, 9, []string{"caixa"}, ""),
		newScreenable(db.StatusScreening, 2, nil, ""),
		newScreenable(db.StatusApplied, 5, nil, "contabilidade"),
		newScreenable(db.StatusApproved, 9, nil, ""), // not screenable
		newScreenable(db.StatusHired, 9, nil, ""),    // not screenable
	}
	cfg := Config{
		ExcludeKeywords: []string{"contabilidade"},
		MinScore:        7,
		AutoReject:      true,
	}

	p := PreviewPass(candidates, cfg)

	assert.Equal(t, 3, p.Total)
	assert.Equal(t, p.Total, p.Approved+p.Rejected+p.Unchanged)
	assert.Equal(t, 1, p.Approved)
	assert.Equal(t, 2, p.Rejected)
}

func TestPreviewPass_NoAutoRejectNeverRejects(t *testing.T) {
	candidates := []db.Candidate{
		newScreenable(db.StatusApplied, 1, nil, "contabilidade"),
		newScreenable(db.StatusScreening, 0, nil, ""),
		newScreenable(db.StatusApplied, 9, nil, ""),
	}
	cfg := Config{
		ExcludeKeywords: []string{"contabilidade"},
		MinScore:        7,
		AutoReject:      false,
	}

	p := PreviewPass(candidates, cfg)

	assert.Zero(t, p.Rejected)
	assert.Equal(t, p.Total, p.Approved+p.Unchanged)
}

func TestBuildPlan_SnapshotsPriorStatuses(t *testing.T) {
	applied := newScreenable(db.StatusApplied, 9, nil, "")
	inScreening := newScreenable(db.StatusScreening, 1, nil, "")
	cfg := Config{MinScore: 7, AutoReject: true}

	plan := BuildPlan([]db.Candidate{applied, inScreening}, cfg)

	require.Len(t, plan.Changes, 2)
	assert.Equal(t, db.StatusApproved, plan.Changes[applied.ID])
	assert.Equal(t, db.StatusRejected, plan.Changes[inScreening.ID])

	// snapshot carries exactly the statuses held before the pass
	assert.Equal(t, db.StatusApplied, plan.Snapshot[applied.ID])
	assert.Equal(t, db.StatusScreening, plan.Snapshot[inScreening.ID])
}

func TestBuildPlan_UnchangedCandidatesNotSnapshotted(t *testing.T) {
	unchanged := newScreenable(db.StatusApplied, 1, nil, "")
	skipped := newScreenable(db.StatusOffer, 1, nil, "")

	plan := BuildPlan([]db.Candidate{unchanged, skipped}, Config{MinScore: 7})

	assert.Empty(t, plan.Changes)
	assert.Empty(t, plan.Snapshot)
	assert.Equal(t, 1, plan.Preview.Total)
	assert.Equal(t, 1, plan.Preview.Unchanged)
}

func TestBuildPlan_PreviewMatchesPreviewPass(t *testing.T) {
	candidates := []db.Candidate{
		newScreenable(db.StatusApplied, 9, []string{"caixa"}, ""),
		newScreenable(db.StatusScreening, 4, nil, ""),
		newScreenable(db.StatusApplied, 6, nil, "contabilidade"),
	}
	cfg := Config{
		RequiredKeywords: []string{"caixa"},
		ExcludeKeywords:  []string{"contabilidade"},
		MinScore:         7,
		AutoReject:       true,
	}

	assert.Equal(t, PreviewPass(candidates, cfg), BuildPlan(candidates, cfg).Preview)
}
