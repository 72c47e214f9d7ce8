package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"contact-scout/internal/auth"
	"contact-scout/internal/storage"
)

// CreateConversationRequest optionally carries the first user message.
type CreateConversationRequest struct {
	Message string `json:"message,omitempty"`
}

// SendMessageRequest is one user turn.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// CreateConversationHandler starts a conversation seeded with a welcome
// message, and runs the pipeline for the first message when one is supplied.
// @Summary Create a conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body CreateConversationRequest false "Optional first message"
// @Success 200 {object} storage.Conversation
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /conversations [post]
func (a *API) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateConversationRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	}

	userID := auth.UserID(r.Context())
	conv, err := a.search.CreateConversation(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if msg := strings.TrimSpace(req.Message); msg != "" {
		conv, err = a.search.SendMessage(r.Context(), userID, conv.ID, msg)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, conv)
}

// ListConversationsHandler returns the user's conversations, newest first.
// @Summary List conversations
// @Tags conversations
// @Produce json
// @Success 200 {array} storage.Conversation
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /conversations [get]
func (a *API) ListConversationsHandler(w http.ResponseWriter, r *http.Request) {
	convs, err := a.db.ListConversations(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if convs == nil {
		convs = []*storage.Conversation{}
	}
	writeJSON(w, http.StatusOK, convs)
}

// GetConversationHandler returns one conversation with its full transcript.
// @Summary Get a conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} storage.Conversation
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /conversations/{id} [get]
func (a *API) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	conv, err := a.db.GetConversation(r.Context(), auth.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// SendMessageHandler appends a user turn, runs the pipeline, and returns the
// updated conversation. Pipeline failures are absorbed into the transcript,
// so a valid conversation comes back either way.
// @Summary Send a message
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation id"
// @Param request body SendMessageRequest true "User message"
// @Success 200 {object} storage.Conversation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /conversations/{id}/messages [post]
func (a *API) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		writeError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}

	conv, err := a.search.SendMessage(r.Context(), auth.UserID(r.Context()), r.PathValue("id"), msg)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// DeleteConversationHandler removes one conversation.
// @Summary Delete a conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /conversations/{id} [delete]
func (a *API) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteConversation(r.Context(), auth.UserID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ArchiveConversationHandler flags a conversation as archived.
// @Summary Archive a conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /conversations/{id}/archive [post]
func (a *API) ArchiveConversationHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.SetConversationArchived(r.Context(), auth.UserID(r.Context()), r.PathValue("id"), true); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}
