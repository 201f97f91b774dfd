package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

type Handler struct {
	chat *ChatService
}

func NewHandler(chat *ChatService) *Handler {
	return &Handler{chat: chat}
}

// HandleChat handles POST /v1/agent/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	resp, err := h.chat.Chat(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			h.sendError(w, http.StatusBadRequest, "empty_message", "Message must not be empty")
		case errors.Is(err, storage.ErrNotFound):
			h.sendError(w, http.StatusNotFound, "conversation_not_found", "Conversation not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to process message")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleConfirmAction handles POST /v1/agent/actions/confirm
func (h *Handler) HandleConfirmAction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req ConfirmActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	result, err := h.chat.ConfirmAction(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownAction):
			h.sendError(w, http.StatusBadRequest, "unknown_action", err.Error())
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to confirm action")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// HandleListConversations handles GET /v1/agent/conversations
func (h *Handler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	conversations, err := h.chat.ListConversations(r.Context(), userID, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list conversations")
		return
	}

	type item struct {
		ID        uuid.UUID `json:"id"`
		Title     string    `json:"title"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	items := make([]item, 0, len(conversations))
	for _, c := range conversations {
		items = append(items, item{ID: c.ID, Title: c.Title, UpdatedAt: c.UpdatedAt})
	}

	h.sendJSON(w, http.StatusOK, map[string]any{"conversations": items})
}

// HandleListMessages handles GET /v1/agent/conversations/{id}/messages
func (h *Handler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	conversationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid conversation ID")
		return
	}

	messages, err := h.chat.ListMessages(r.Context(), userID, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			h.sendError(w, http.StatusNotFound, "conversation_not_found", "Conversation not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list messages")
		}
		return
	}

	type item struct {
		ID           uuid.UUID `json:"id"`
		Role         string    `json:"role"`
		Content      string    `json:"content"`
		ResponseType string    `json:"response_type,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
	items := make([]item, 0, len(messages))
	for _, m := range messages {
		items = append(items, item{
			ID: m.ID, Role: m.Role, Content: m.Content,
			ResponseType: m.ResponseType, CreatedAt: m.CreatedAt,
		})
	}

	h.sendJSON(w, http.StatusOK, map[string]any{"messages": items})
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
