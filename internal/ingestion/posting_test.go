package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/db"
)

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Vagas | Loja Central</title></head>
<body>
<nav>Home | Vagas</nav>
<main class="job-description">
  <h1 class="job-title">Atendente de Loja</h1>
  <p>Buscamos uma pessoa comunicativa para atendimento ao cliente.</p>
  <p>Trabalho presencial em horário comercial.</p>
  <h3>Responsabilidades:</h3>
  <ul>
    <li>Atender clientes no balcão</li>
    <li>Operar o caixa</li>
  </ul>
  <h3>Requisitos</h3>
  <ul>
    <li>Ensino médio completo</li>
    <li>Experiência com atendimento</li>
  </ul>
  <h3>Benefícios</h3>
  <ul>
    <li>Vale transporte</li>
  </ul>
</main>
<footer>© Loja Central</footer>
</body>
</html>`

func TestParsePosting(t *testing.T) {
	draft, err := ParsePosting(postingHTML)
	require.NoError(t, err)

	assert.Equal(t, "Atendente de Loja", draft.Title)
	assert.Equal(t,
		[]string{"Atender clientes no balcão", "Operar o caixa"},
		draft.Responsibilities)
	assert.Equal(t,
		[]string{"Ensino médio completo", "Experiência com atendimento"},
		draft.Requirements)
	assert.Equal(t, []string{"Vale transporte"}, draft.Benefits)

	assert.Contains(t, draft.Description, "pessoa comunicativa")
	assert.Contains(t, draft.Description, "horário comercial")
	assert.NotContains(t, draft.Description, "Loja Central")
}

func TestParsePostingFallsBackToBody(t *testing.T) {
	html := `<html><body><h1>Repositor</h1><p>Vaga para reposição de estoque.</p></body></html>`

	draft, err := ParsePosting(html)
	require.NoError(t, err)
	assert.Equal(t, "Repositor", draft.Title)
	assert.Contains(t, draft.Description, "reposição de estoque")
	assert.Empty(t, draft.Requirements)
}

func TestParsePostingEmptyPage(t *testing.T) {
	_, err := ParsePosting(`<html><body><script>app()</script></body></html>`)
	assert.Error(t, err)
}

func TestImportFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	importer := NewImporter()
	draft, err := importer.Import(context.Background(), server.URL+"/vagas/atendente")
	require.NoError(t, err)

	assert.Equal(t, "Atendente de Loja", draft.Title)
	assert.Equal(t, server.URL+"/vagas/atendente", draft.SourceURL)
	assert.Equal(t, "127.0.0.1", draft.SourceName[:9])
}

func TestImportRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewImporter().Import(context.Background(), server.URL)
	require.Error(t, err)
	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchHTMLRejectsInvalidURL(t *testing.T) {
	f := NewFetcher()
	_, err := f.FetchHTML(context.Background(), "not a url")
	assert.Error(t, err)

	_, err = f.FetchHTML(context.Background(), "ftp://example.com/job")
	assert.Error(t, err)
}

func TestToJob(t *testing.T) {
	draft := &JobDraft{
		Title:        "Atendente",
		Description:  "desc",
		Requirements: []string{"ensino médio"},
		SourceURL:    "https://www.example.com/vagas/1",
		SourceName:   "example.com",
	}

	job := draft.ToJob()
	assert.Equal(t, "Atendente", job.Title)
	assert.Equal(t, db.JobStatusActive, job.Status)
	require.Len(t, job.Sources, 1)
	assert.Equal(t, "example.com", job.Sources[0].Name)
}

func TestSourceName(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.gupy.io/vagas/123", "gupy.io"},
		{"http://vagas.com.br/abc?x=1", "vagas.com.br"},
		{"https://example.com", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sourceName(tt.url))
	}
}
