package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ayursutra/backend/internal/auth"
)

// Handler contains the HTTP handlers for profiles and practitioners.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGetMe handles GET /v1/patients/me
func (h *Handler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	profile, err := h.service.GetPatientProfile(r.Context(), userID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load profile")
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
}

// HandleUpdateMe handles PUT /v1/patients/me
func (h *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	profile, err := h.service.UpsertPatientProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			h.sendError(w, http.StatusBadRequest, "invalid_profile", err.Error())
			return
		}
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to save profile")
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
}

// HandleListPractitioners handles GET /v1/practitioners
func (h *Handler) HandleListPractitioners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	practitioners, err := h.service.ListPractitioners(r.Context(), q.Get("specialization"), limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list practitioners")
		return
	}

	h.sendJSON(w, http.StatusOK, PractitionersResponse{Practitioners: practitioners})
}

// HandleUpsertPractitioner handles PUT /v1/practitioners/me
func (h *Handler) HandleUpsertPractitioner(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req UpsertPractitionerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	p, err := h.service.UpsertPractitioner(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			h.sendError(w, http.StatusBadRequest, "invalid_profile", err.Error())
			return
		}
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to save practitioner profile")
		return
	}

	h.sendJSON(w, http.StatusOK, PractitionerResponse{
		ID:              p.ID,
		Specialization:  p.Specialization,
		Bio:             p.Bio,
		YearsExperience: p.YearsExperience,
	})
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
