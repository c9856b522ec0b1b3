package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/db"
)

// stubClient returns canned responses without touching the network.
type stubClient struct {
	jsonResponse string
	textResponse string
	err          error
	prompts      []string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.textResponse, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.jsonResponse, s.err
}

func (s *stubClient) Close() error { return nil }

const validAnalysisJSON = `{
	"summary": "Perfil sólido para atendimento.",
	"strengths": ["comunicação", "experiência com caixa"],
	"weaknesses": ["pouca experiência de liderança"],
	"fitScore": 7.5,
	"interviewQuestions": ["Conte sobre um atendimento difícil."],
	"resumeAnalysis": "Currículo consistente."
}`

func testCandidate() *db.Candidate {
	return &db.Candidate{
		Name:    "Ana Souza",
		Summary: "Atendente com 3 anos de experiência",
		Skills:  db.StringArray{"atendimento", "caixa"},
		Status:  db.StatusApplied,
	}
}

func testJob() *db.Job {
	return &db.Job{
		Title:        "Atendente de Loja",
		Description:  "Atendimento ao cliente no balcão",
		Requirements: db.StringArray{"experiência com caixa"},
	}
}

func TestAnalyzeCandidate(t *testing.T) {
	client := &stubClient{jsonResponse: validAnalysisJSON}
	analyzer := NewAnalyzer(client)

	analysis, err := analyzer.AnalyzeCandidate(context.Background(), testCandidate(), testJob())
	require.NoError(t, err)

	assert.Equal(t, "Perfil sólido para atendimento.", analysis.Summary)
	assert.Equal(t, 7.5, analysis.FitScore)
	assert.Len(t, analysis.Strengths, 2)
	assert.Len(t, analysis.InterviewQuestions, 1)
}

func TestAnalyzeCandidateWithMarkdownFence(t *testing.T) {
	client := &stubClient{jsonResponse: "```json\n" + validAnalysisJSON + "\n```"}
	analyzer := NewAnalyzer(client)

	analysis, err := analyzer.AnalyzeCandidate(context.Background(), testCandidate(), testJob())
	require.NoError(t, err)
	assert.Equal(t, 7.5, analysis.FitScore)
}

func TestAnalyzeCandidateRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing summary", `{"strengths": [], "weaknesses": [], "fitScore": 5, "interviewQuestions": []}`},
		{"fit score out of range", `{"summary": "ok", "strengths": [], "weaknesses": [], "fitScore": 15, "interviewQuestions": []}`},
		{"wrong type", `{"summary": "ok", "strengths": "not an array", "weaknesses": [], "fitScore": 5, "interviewQuestions": []}`},
		{"not json", `the model rambled instead`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(&stubClient{jsonResponse: tt.response})
			_, err := analyzer.AnalyzeCandidate(context.Background(), testCandidate(), testJob())
			assert.Error(t, err)
		})
	}
}

func TestBuildAnalysisPromptIncludesCandidateAndJob(t *testing.T) {
	prompt := buildAnalysisPrompt(testCandidate(), testJob())

	assert.Contains(t, prompt, "Ana Souza")
	assert.Contains(t, prompt, "Atendente de Loja")
	assert.Contains(t, prompt, "atendimento, caixa")
	assert.Contains(t, prompt, "experiência com caixa")
	assert.Contains(t, prompt, "fitScore")
}

func TestAnalyzeMany(t *testing.T) {
	client := &stubClient{jsonResponse: validAnalysisJSON}
	analyzer := NewAnalyzer(client)

	candidates := []*db.Candidate{testCandidate(), testCandidate(), testCandidate()}
	results, err := analyzer.AnalyzeMany(context.Background(), candidates, testJob())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, 7.5, r.FitScore)
	}
}

func TestDecisionSummaryListsCandidates(t *testing.T) {
	client := &stubClient{textResponse: "Recomendo avançar com Ana."}
	analyzer := NewAnalyzer(client)

	c := testCandidate()
	c.FitScore = 8.2
	summary, err := analyzer.DecisionSummary(context.Background(), []*db.Candidate{c}, testJob())
	require.NoError(t, err)

	assert.Equal(t, "Recomendo avançar com Ana.", summary)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Ana Souza")
	assert.Contains(t, client.prompts[0], "Atendente de Loja")
}

func TestDecisionSummaryRequiresCandidates(t *testing.T) {
	analyzer := NewAnalyzer(&stubClient{})
	_, err := analyzer.DecisionSummary(context.Background(), nil, testJob())
	assert.Error(t, err)
}

func TestInterviewInvitationIncludesSchedule(t *testing.T) {
	client := &stubClient{textResponse: "Olá Ana, ..."}
	analyzer := NewAnalyzer(client)

	c := testCandidate()
	c.Interview = &db.Interview{Date: "2026-09-10", Time: "09:00", Location: "Loja Centro"}
	_, err := analyzer.InterviewInvitation(context.Background(), c, testJob())
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "2026-09-10")
	assert.Contains(t, client.prompts[0], "09:00")
	assert.Contains(t, client.prompts[0], "Loja Centro")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONBlock(tt.input))
		})
	}
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", DefaultModel)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "API key"))
}
