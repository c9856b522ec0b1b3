package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mariana/talent-hub/internal/notify"
)

// SSEWriter streams notify bus events to one client as Server-Sent Events.
// The event name on the wire is the bus event kind (message.created,
// candidate.updated, ...), so clients can listen per kind.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter prepares the response for event streaming. The underlying
// ResponseWriter must support flushing.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends one named event with a JSON payload and flushes it.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteBusEvent forwards a bus event under its kind.
func (s *SSEWriter) WriteBusEvent(event notify.Event) error {
	return s.WriteEvent(event.Kind, event)
}

// WriteConnected acknowledges the subscription so clients can tell a live
// stream from a stalled connect.
func (s *SSEWriter) WriteConnected() error {
	return s.WriteEvent("connected", map[string]string{"status": "ok"})
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent("error", map[string]string{"error": message}) //nolint:errcheck
}
