package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mariana/talent-hub/internal/db"
)

func sampleCandidates() []*db.Candidate {
	appDate, _ := db.NewDate("2026-08-15")
	return []*db.Candidate{
		{
			ID:              uuid.New(),
			Name:            "Ana Souza",
			Status:          db.StatusApproved,
			FitScore:        8.5,
			ApplicationDate: appDate,
			Skills:          db.StringArray{"atendimento", "caixa"},
			Summary:         "Atendente experiente",
			Resume: db.Resume{
				Contact: db.ResumeContact{Email: "ana@example.com", Phone: "11 99999-0001"},
			},
		},
		{
			ID:              uuid.New(),
			Name:            `Bruno "Bru" Lima, Jr.`,
			Status:          db.StatusApplied,
			FitScore:        6,
			ApplicationDate: appDate,
			Summary:         "Linha 1\nLinha 2",
		},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	candidates := sampleCandidates()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, candidates))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, candidates[0].ID.String(), records[1][0])
	assert.Equal(t, "Ana Souza", records[1][1])
	assert.Equal(t, "ana@example.com", records[1][2])
	assert.Equal(t, "8.5", records[1][5])
	assert.Equal(t, "2026-08-15", records[1][6])
	assert.Equal(t, "atendimento; caixa", records[1][7])

	// quoting survives commas, quotes, and newlines
	assert.Equal(t, `Bruno "Bru" Lima, Jr.`, records[2][1])
	assert.Equal(t, "Linha 1\nLinha 2", records[2][8])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, csvHeader, records[0])
}

func TestWriteJSON(t *testing.T) {
	candidates := sampleCandidates()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, candidates))

	var decoded []db.Candidate
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, candidates[0].Name, decoded[0].Name)
	assert.Equal(t, candidates[0].FitScore, decoded[0].FitScore)
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", string(bytes.TrimSpace(buf.Bytes())))
}

func TestWriteExcel(t *testing.T) {
	job := &db.Job{Title: "Atendente de Loja", Department: "Vendas"}
	candidates := sampleCandidates()

	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, job, candidates))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Candidatos")
	assert.Contains(t, f.GetSheetList(), "Resumo")

	name, err := f.GetCellValue("Candidatos", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", name)

	title, err := f.GetCellValue("Resumo", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Atendente de Loja", title)

	total, err := f.GetCellValue("Resumo", "B4")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestCountByStatus(t *testing.T) {
	candidates := sampleCandidates()
	counts := CountByStatus(candidates)

	assert.Equal(t, 1, counts[db.StatusApproved])
	assert.Equal(t, 1, counts[db.StatusApplied])
	assert.Equal(t, 0, counts[db.StatusHired])
}
