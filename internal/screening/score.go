// Package screening implements the candidate scoring and bulk screening
// heuristics used on a job pipeline.
package screening

import (
	"strings"

	"github.com/mariana/talent-hub/internal/db"
)

// Weights for the composite score: the AI baseline dominates, required
// keyword coverage adjusts it.
const (
	baselineWeight = 0.8
	requiredWeight = 0.2
)

// defaultBaseScore is used when a candidate has no baseline fit score yet.
const defaultBaseScore = 5.0

// Score holds the computed scores for one candidate.
type Score struct {
	RequiredMatchScore float64 `json:"required_match_score"`
	FinalScore         float64 `json:"final_score"`
}

// ParseKeywords splits a comma-separated keyword string into lowercase,
// trimmed, non-empty keywords.
func ParseKeywords(s string) []string {
	parts := strings.Split(strings.ToLower(s), ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// combinedText concatenates a candidate's skills and summary into the
// lowercase haystack keyword matching runs against.
func combinedText(c *db.Candidate) string {
	return strings.ToLower(strings.Join(c.Skills, ", ") + " " + c.Summary)
}

// countMatches returns how many keywords occur as substrings of text.
// Keywords are expected to be lowercase already.
func countMatches(text string, keywords []string) int {
	matches := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			matches++
		}
	}
	return matches
}

// ComputeScore computes the composite score for a candidate against the
// required-keyword configuration. With no required keywords configured the
// keyword component is a full 10, so the score reduces to the weighted
// baseline.
func ComputeScore(c *db.Candidate, requiredKeywords []string) Score {
	requiredMatchScore := 10.0
	if len(requiredKeywords) > 0 {
		matched := countMatches(combinedText(c), requiredKeywords)
		requiredMatchScore = float64(matched) / float64(len(requiredKeywords)) * 10
	}

	baseScore := c.FitScore
	if baseScore == 0 {
		baseScore = defaultBaseScore
	}

	return Score{
		RequiredMatchScore: requiredMatchScore,
		FinalScore:         baseScore*baselineWeight + requiredMatchScore*requiredWeight,
	}
}

// ScoredCandidate pairs a candidate with its computed scores for listing.
type ScoredCandidate struct {
	db.Candidate
	Score
}

// ScoreAll computes scores for every candidate in the list.
func ScoreAll(candidates []db.Candidate, requiredKeywords []string) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, ScoredCandidate{
			Candidate: candidates[i],
			Score:     ComputeScore(&candidates[i], requiredKeywords),
		})
	}
	return scored
}
