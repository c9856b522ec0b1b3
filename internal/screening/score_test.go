package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mariana/talent-hub/internal/db"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "caixa", []string{"caixa"}},
		{"trims and lowercases", " Caixa , Atendimento ", []string{"caixa", "atendimento"}},
		{"drops empty segments", "caixa,,  ,vendas", []string{"caixa", "vendas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywords(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeScore_NoKeywordsDefaultBaseline(t *testing.T) {
	// no required keywords: full keyword component, 0.8*5 + 0.2*10 = 6.0
	c := &db.Candidate{FitScore: 5, Skills: db.StringArray{"vendas"}, Summary: "experiente"}

	score := ComputeScore(c, nil)

	assert.Equal(t, 10.0, score.RequiredMatchScore)
	assert.InDelta(t, 6.0, score.FinalScore, 1e-9)
}

func TestComputeScore_ZeroFitScoreUsesDefault(t *testing.T) {
	c := &db.Candidate{FitScore: 0}

	score := ComputeScore(c, nil)

	// default baseline 5: 0.8*5 + 0.2*10 = 6.0
	assert.InDelta(t, 6.0, score.FinalScore, 1e-9)
}

func TestComputeScore_WorkedScenario(t *testing.T) {
	c := &db.Candidate{
		Skills:   db.StringArray{"atendimento", "caixa"},
		Summary:  "rápido e organizado",
		FitScore: 6,
	}

	score := ComputeScore(c, []string{"caixa"})

	assert.Equal(t, 10.0, score.RequiredMatchScore)
	assert.InDelta(t, 6.8, score.FinalScore, 1e-9)
}

func TestComputeScore_PartialKeywordMatch(t *testing.T) {
	c := &db.Candidate{
		Skills:   db.StringArray{"caixa"},
		Summary:  "",
		FitScore: 8,
	}

	score := ComputeScore(c, []string{"caixa", "estoque"})

	// 1 of 2 keywords: requiredMatchScore 5; final = 0.8*8 + 0.2*5 = 7.4
	assert.InDelta(t, 5.0, score.RequiredMatchScore, 1e-9)
	assert.InDelta(t, 7.4, score.FinalScore, 1e-9)
}

func TestComputeScore_CaseInsensitiveSubstring(t *testing.T) {
	c := &db.Candidate{
		Skills:   db.StringArray{"Operador de Caixa"},
		FitScore: 5,
	}

	score := ComputeScore(c, []string{"caixa"})

	assert.Equal(t, 10.0, score.RequiredMatchScore)
}

func TestComputeScore_Bounds(t *testing.T) {
	// score stays within [0,10] for any baseline in [0,10]
	keywordSets := [][]string{nil, {"caixa"}, {"caixa", "vendas", "estoque"}}
	for fit := 0.0; fit <= 10.0; fit += 2.5 {
		for _, keywords := range keywordSets {
			c := &db.Candidate{FitScore: fit, Skills: db.StringArray{"caixa"}, Summary: "vendas"}
			score := ComputeScore(c, keywords)
			assert.GreaterOrEqual(t, score.FinalScore, 0.0)
			assert.LessOrEqual(t, score.FinalScore, 10.0)
		}
	}
}

func TestScoreAll_PreservesOrder(t *testing.T) {
	candidates := []db.Candidate{
		{Name: "Ana", FitScore: 7},
		{Name: "Bruno", FitScore: 3},
	}

	scored := ScoreAll(candidates, nil)

	assert.Len(t, scored, 2)
	assert.Equal(t, "Ana", scored[0].Name)
	assert.Equal(t, "Bruno", scored[1].Name)
	assert.InDelta(t, 7.6, scored[0].FinalScore, 1e-9)
	assert.InDelta(t, 4.4, scored[1].FinalScore, 1e-9)
}
