package server

import (
	"net/http"

	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/notify"
)

// handleListMessages lists messages. With both participant and with query
// parameters it returns one conversation; with only participant it returns
// everything that participant is involved in.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	participant := r.URL.Query().Get("participant")
	if participant == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing participant")
		return
	}
	if _, _, err := db.ParseRef(participant); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if with := r.URL.Query().Get("with"); with != "" {
		if _, _, err := db.ParseRef(with); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		messages, err := s.db.ListConversation(r.Context(), participant, with)
		if err != nil {
			s.handleError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, messages)
		return
	}

	messages, err := s.db.ListMessagesByParticipant(r.Context(), participant)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, messages)
}

// handleSendMessage appends a message to a conversation and pushes it to
// connected event-stream subscribers.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	for _, ref := range []string{req.SenderID, req.ReceiverID} {
		if _, _, err := db.ParseRef(ref); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	message, err := s.db.CreateMessage(r.Context(), req.SenderID, req.ReceiverID, req.Text)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionSendMessage, "message to "+req.ReceiverID)
	s.bus.Publish(notify.EventMessageCreated, message)
	s.jsonResponse(w, http.StatusCreated, message)
}

// handlePatchMessage edits a message's text or soft-deletes it.
func (s *Server) handlePatchMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	message, err := s.db.GetMessage(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if message == nil {
		s.handleError(w, &ErrNotFound{Resource: "message", ID: id})
		return
	}

	var req MessagePatchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Text == nil && req.IsDeleted == nil {
		s.errorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if req.Text != nil {
		message.Text = *req.Text
	}
	if req.IsDeleted != nil {
		message.IsDeleted = *req.IsDeleted
	}
	if err := s.db.UpdateMessage(r.Context(), id, message.Text, message.IsDeleted); err != nil {
		s.handleError(w, err)
		return
	}

	s.audit(r, db.ActionUpdateMessage, "edited message "+id.String())
	s.bus.Publish(notify.EventMessageUpdated, message)
	s.jsonResponse(w, http.StatusOK, message)
}

// handleMarkConversationRead marks every message sent to reader by sender
// as read.
func (s *Server) handleMarkConversationRead(w http.ResponseWriter, r *http.Request) {
	reader := r.URL.Query().Get("reader")
	sender := r.URL.Query().Get("sender")
	for _, ref := range []string{reader, sender} {
		if _, _, err := db.ParseRef(ref); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := s.db.MarkConversationRead(r.Context(), reader, sender); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDeleteConversation soft-deletes every message between two
// participants.
func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	refA := r.URL.Query().Get("participant")
	refB := r.URL.Query().Get("with")
	for _, ref := range []string{refA, refB} {
		if _, _, err := db.ParseRef(ref); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := s.db.SoftDeleteConversation(r.Context(), refA, refB); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMessageEvents streams data-change events over SSE. Clients refetch
// on receipt instead of polling.
func (s *Server) handleMessageEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events, cancel := s.bus.Subscribe()
	defer cancel()

	if err := sse.WriteConnected(); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			if err := sse.WriteBusEvent(event); err != nil {
				return
			}
		}
	}
}
