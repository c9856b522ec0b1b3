package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mariana/talent-hub/internal/db"
)

// bulkConcurrency bounds parallel provider calls during a bulk analysis.
const bulkConcurrency = 3

// Analyzer produces structured candidate analyses from a generative model.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates an Analyzer on top of a model client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeCandidate asks the model for a structured assessment of a candidate
// against a job. The response is schema-validated before being returned.
func (a *Analyzer) AnalyzeCandidate(ctx context.Context, candidate *db.Candidate, job *db.Job) (*db.AIAnalysis, error) {
	prompt := buildAnalysisPrompt(candidate, job)

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze candidate: %w", err)
	}

	return parseAnalysis(raw)
}

// AnalyzeMany runs AnalyzeCandidate for a batch of candidates with bounded
// concurrency. Results are keyed by candidate position; a single failure
// aborts the batch.
func (a *Analyzer) AnalyzeMany(ctx context.Context, candidates []*db.Candidate, job *db.Job) ([]*db.AIAnalysis, error) {
	results := make([]*db.AIAnalysis, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for i, c := range candidates {
		g.Go(func() error {
			analysis, err := a.AnalyzeCandidate(ctx, c, job)
			if err != nil {
				return fmt.Errorf("candidate %s: %w", c.ID, err)
			}
			results[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DecisionSummary asks the model for a short free-text comparison of the
// finalists for a job, for use on the decision support panel.
func (a *Analyzer) DecisionSummary(ctx context.Context, candidates []*db.Candidate, job *db.Job) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("no candidates to summarize")
	}

	var sb strings.Builder
	sb.WriteString("Você é um assistente de recrutamento. Compare os candidatos finalistas abaixo para a vaga \"")
	sb.WriteString(job.Title)
	sb.WriteString("\" e recomende, em no máximo três parágrafos, quem avança e por quê.\n\n")
	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("- %s (status: %s, fit: %.1f)", c.Name, c.Status, c.FitScore))
		if c.AIAnalysis != nil && c.AIAnalysis.Summary != "" {
			sb.WriteString(": " + c.AIAnalysis.Summary)
		}
		sb.WriteString("\n")
	}

	text, err := a.client.GenerateContent(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate decision summary: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// InterviewInvitation drafts an interview invitation message for a candidate.
func (a *Analyzer) InterviewInvitation(ctx context.Context, candidate *db.Candidate, job *db.Job) (string, error) {
	prompt := fmt.Sprintf(
		"Escreva uma mensagem curta e cordial, em português, convidando o candidato %s para uma entrevista da vaga \"%s\"",
		candidate.Name, job.Title)
	if candidate.Interview != nil {
		prompt += fmt.Sprintf(" no dia %s às %s, local: %s",
			candidate.Interview.Date, candidate.Interview.Time, candidate.Interview.Location)
	}
	prompt += ". Não invente detalhes que não foram informados."

	text, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate invitation: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// buildAnalysisPrompt renders the structured analysis prompt for one candidate.
func buildAnalysisPrompt(candidate *db.Candidate, job *db.Job) string {
	var sb strings.Builder
	sb.WriteString("Você é um analista de recrutamento. Avalie o candidato abaixo para a vaga e responda APENAS com JSON no formato: ")
	sb.WriteString(`{"summary": string, "strengths": string[], "weaknesses": string[], "fitScore": number (0-10), "interviewQuestions": string[], "resumeAnalysis": string}.`)
	sb.WriteString("\n\nVaga: " + job.Title + "\n")
	if job.Description != "" {
		sb.WriteString("Descrição: " + job.Description + "\n")
	}
	if len(job.Requirements) > 0 {
		sb.WriteString("Requisitos: " + strings.Join(job.Requirements, ", ") + "\n")
	}
	sb.WriteString("\nCandidato: " + candidate.Name + "\n")
	if candidate.Summary != "" {
		sb.WriteString("Resumo: " + candidate.Summary + "\n")
	}
	if len(candidate.Skills) > 0 {
		sb.WriteString("Habilidades: " + strings.Join(candidate.Skills, ", ") + "\n")
	}
	if data, err := json.Marshal(candidate.Resume); err == nil && string(data) != "{}" {
		sb.WriteString("Currículo: " + string(data) + "\n")
	}
	return sb.String()
}

// analysisPayload is the wire shape the model is asked to produce.
type analysisPayload struct {
	Summary            string   `json:"summary"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	FitScore           float64  `json:"fitScore"`
	InterviewQuestions []string `json:"interviewQuestions"`
	ResumeAnalysis     string   `json:"resumeAnalysis"`
}

// parseAnalysis validates and decodes a raw model response.
func parseAnalysis(raw string) (*db.AIAnalysis, error) {
	raw = cleanJSONBlock(raw)
	if err := validateAnalysisJSON(raw); err != nil {
		return nil, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return &db.AIAnalysis{
		Summary:            payload.Summary,
		Strengths:          payload.Strengths,
		Weaknesses:         payload.Weaknesses,
		FitScore:           payload.FitScore,
		InterviewQuestions: payload.InterviewQuestions,
		ResumeAnalysis:     payload.ResumeAnalysis,
	}, nil
}
