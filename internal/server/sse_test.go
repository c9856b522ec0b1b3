package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/notify"
)

func TestNewSSEWriterSetsStreamingHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)
	require.NotNil(t, sse)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))
}

type noFlushWriter struct {
	http.ResponseWriter
}

func TestNewSSEWriterRequiresFlusher(t *testing.T) {
	_, err := NewSSEWriter(noFlushWriter{httptest.NewRecorder()})
	assert.Error(t, err)
}

func TestSSEWriteEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	err = sse.WriteEvent("message.created", map[string]string{"id": "m1"})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "event: message.created\n")
	assert.Contains(t, body, `data: {"id":"m1"}`)
	assert.True(t, rec.Flushed)
}

func TestSSEWriteBusEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	err = sse.WriteBusEvent(notify.Event{
		Kind: notify.EventCandidateUpdated,
		At:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Data: map[string]string{"id": "c1"},
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "event: candidate.updated\n")
	assert.Contains(t, body, `"id":"c1"`)
}

func TestSSEWriteConnected(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	require.NoError(t, sse.WriteConnected())
	assert.Contains(t, rec.Body.String(), "event: connected\n")
}

func TestSSEWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	sse.WriteError("stream closed")

	body := rec.Body.String()
	assert.Contains(t, body, "event: error\n")
	assert.Contains(t, body, `"error":"stream closed"`)
}
