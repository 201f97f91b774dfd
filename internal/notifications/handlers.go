package notifications

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

// Response is one notification in API responses.
type Response struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ListResponse is the GET /v1/notifications body.
type ListResponse struct {
	Notifications []Response `json:"notifications"`
	UnreadCount   int        `json:"unread_count"`
}

// MarkReadRequest is the POST /v1/notifications/read body. Setting All marks
// everything read regardless of IDs.
type MarkReadRequest struct {
	IDs []uuid.UUID `json:"ids"`
	All bool        `json:"all"`
}

// MarkReadResponse reports how many notifications were updated.
type MarkReadResponse struct {
	Updated int `json:"updated"`
}

type Handler struct {
	store storage.Store
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// HandleList handles GET /v1/notifications?unread=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	onlyUnread := q.Get("unread") == "true"
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	notifications, err := h.store.ListNotifications(r.Context(), userID, onlyUnread, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list notifications")
		return
	}
	unread, err := h.store.UnreadCount(r.Context(), userID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to count notifications")
		return
	}

	resp := ListResponse{
		Notifications: make([]Response, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, Response{
			ID: n.ID, Kind: n.Kind, Title: n.Title, Body: n.Body,
			ReadAt: n.ReadAt, CreatedAt: n.CreatedAt,
		})
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleMarkRead handles POST /v1/notifications/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}
	if !req.All && len(req.IDs) == 0 {
		h.sendError(w, http.StatusBadRequest, "empty_request", "Provide ids or set all")
		return
	}

	var (
		updated int
		err     error
	)
	if req.All {
		updated, err = h.store.MarkAllRead(r.Context(), userID)
	} else {
		updated, err = h.store.MarkRead(r.Context(), userID, req.IDs)
	}
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to mark notifications read")
		return
	}

	h.sendJSON(w, http.StatusOK, MarkReadResponse{Updated: updated})
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
