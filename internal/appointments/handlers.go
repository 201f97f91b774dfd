package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// HandleCreate handles POST /v1/appointments
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

	appointment, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPastSlot):
			h.sendError(w, http.StatusBadRequest, "past_slot", "Appointment time must be in the future")
		case errors.Is(err, ErrUnknownPractition):
			h.sendError(w, http.StatusNotFound, "practitioner_not_found", "Practitioner not found")
		case errors.Is(err, ErrConflict):
			h.sendError(w, http.StatusConflict, "slot_taken", "The practitioner is already booked for this slot")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to create appointment")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, toResponse(appointment))
}

// HandleList handles GET /v1/appointments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	appointments, err := h.service.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list appointments")
		return
	}

	resp := ListResponse{Appointments: make([]Response, 0, len(appointments))}
	for i := range appointments {
		resp.Appointments = append(resp.Appointments, toResponse(&appointments[i]))
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleUpdateStatus handles PATCH /v1/appointments/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	appointmentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid appointment ID")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), userID, appointmentID, req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Appointment not found")
		case errors.Is(err, ErrForbidden):
			h.sendError(w, http.StatusForbidden, "forbidden", "You are not part of this appointment")
		case errors.Is(err, ErrBadTransition):
			h.sendError(w, http.StatusConflict, "invalid_transition", err.Error())
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to update appointment")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, toResponse(appointment))
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
