package server

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		payload any
		wantErr bool
	}{
		{
			"valid register",
			RegisterRequest{Username: "mariana", Password: "s3cret-pass"},
			false,
		},
		{
			"register short password",
			RegisterRequest{Username: "mariana", Password: "short"},
			true,
		},
		{
			"register missing username",
			RegisterRequest{Password: "s3cret-pass"},
			true,
		},
		{
			"valid job",
			JobRequest{Title: "Backend Engineer"},
			false,
		},
		{
			"job missing title",
			JobRequest{Department: "Engineering"},
			true,
		},
		{
			"valid candidate",
			CandidateRequest{Name: "Ana Souza", JobID: uuid.New(), FitScore: 7.5},
			false,
		},
		{
			"candidate fit score out of range",
			CandidateRequest{Name: "Ana Souza", JobID: uuid.New(), FitScore: 11},
			true,
		},
		{
			"candidate bad application date",
			CandidateRequest{Name: "Ana Souza", JobID: uuid.New(), ApplicationDate: "01/02/2026"},
			true,
		},
		{
			"candidate missing job",
			CandidateRequest{Name: "Ana Souza"},
			true,
		},
		{
			"valid interview",
			InterviewRequest{Date: "2026-09-10", Time: "14:30"},
			false,
		},
		{
			"interview bad time",
			InterviewRequest{Date: "2026-09-10", Time: "2pm"},
			true,
		},
		{
			"bulk schedule needs date",
			BulkInterviewsRequest{CandidateIDs: []uuid.UUID{uuid.New()}},
			true,
		},
		{
			"bulk cancel needs no date",
			BulkInterviewsRequest{CandidateIDs: []uuid.UUID{uuid.New()}, Cancel: true},
			false,
		},
		{
			"bulk needs at least one candidate",
			BulkInterviewsRequest{CandidateIDs: []uuid.UUID{}, Cancel: true},
			true,
		},
		{
			"valid screening",
			ScreeningRequest{RequiredKeywords: "go, sql", MinScore: 6},
			false,
		},
		{
			"screening score out of range",
			ScreeningRequest{MinScore: 12},
			true,
		},
		{
			"role must be known",
			SetRoleRequest{Role: "superuser"},
			true,
		},
		{
			"valid role",
			SetRoleRequest{Role: "admin"},
			false,
		},
		{
			"dynamic bad status",
			DynamicRequest{Title: "Painel", Date: "2026-09-10", Status: "draft"},
			true,
		},
		{
			"import requires url",
			ImportJobRequest{URL: "not-a-url"},
			true,
		},
		{
			"valid import",
			ImportJobRequest{URL: "https://example.com/vagas/dev"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
