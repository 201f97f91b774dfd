package reminders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /v1/reminders
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	reminder, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, err, "Failed to create reminder")
		return
	}

	h.sendJSON(w, http.StatusCreated, toResponse(reminder))
}

// HandleList handles GET /v1/reminders
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	reminders, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list reminders")
		return
	}

	resp := ListResponse{Reminders: make([]Response, 0, len(reminders))}
	for i := range reminders {
		resp.Reminders = append(resp.Reminders, toResponse(&reminders[i]))
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PATCH /v1/reminders/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid reminder ID")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	reminder, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		h.handleError(w, err, "Failed to update reminder")
		return
	}

	h.sendJSON(w, http.StatusOK, toResponse(reminder))
}

// HandleDelete handles DELETE /v1/reminders/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid reminder ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.handleError(w, err, "Failed to delete reminder")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidFrequency), errors.Is(err, ErrInvalidTime):
		h.sendError(w, http.StatusBadRequest, "invalid_reminder", err.Error())
	case errors.Is(err, storage.ErrNotFound):
		h.sendError(w, http.StatusNotFound, "not_found", "Reminder not found")
	default:
		h.sendError(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}

func toResponse(r *storage.Reminder) Response {
	return Response{
		ID:          r.ID,
		Title:       r.Title,
		Message:     r.Message,
		Frequency:   r.Frequency,
		Times:       r.Times,
		IsActive:    r.IsActive,
		LastFiredAt: r.LastFiredAt,
		CreatedAt:   r.CreatedAt,
	}
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
