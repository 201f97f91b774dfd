package healthlogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleUpsertLog handles PUT /v1/health-logs
func (h *Handler) HandleUpsertLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req UpsertLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	log, err := h.service.UpsertLog(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidLog):
			h.sendError(w, http.StatusBadRequest, "invalid_log", err.Error())
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to save health log")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, toLogResponse(log))
}

// HandleListLogs handles GET /v1/health-logs?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	logs, err := h.service.ListLogs(r.Context(), userID, q.Get("from"), q.Get("to"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidRange):
			h.sendError(w, http.StatusBadRequest, "invalid_range", err.Error())
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list health logs")
		}
		return
	}

	resp := LogsResponse{Logs: make([]LogResponse, 0, len(logs))}
	for i := range logs {
		resp.Logs = append(resp.Logs, toLogResponse(&logs[i]))
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleCreateSymptom handles POST /v1/symptoms
func (h *Handler) HandleCreateSymptom(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req CreateSymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	symptom, err := h.service.CreateSymptom(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidLog):
			h.sendError(w, http.StatusBadRequest, "invalid_symptom", err.Error())
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to record symptom")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, toSymptomResponse(symptom))
}

// HandleListSymptoms handles GET /v1/symptoms
func (h *Handler) HandleListSymptoms(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	symptoms, err := h.service.ListSymptoms(r.Context(), userID, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list symptoms")
		return
	}

	resp := SymptomsResponse{Symptoms: make([]SymptomResponse, 0, len(symptoms))}
	for i := range symptoms {
		resp.Symptoms = append(resp.Symptoms, toSymptomResponse(&symptoms[i]))
	}

	h.sendJSON(w, http.StatusOK, resp)
}

func toLogResponse(log *storage.HealthLog) LogResponse {
	return LogResponse{
		ID:            log.ID,
		Date:          log.Date,
		DoshaVata:     log.DoshaVata,
		DoshaPitta:    log.DoshaPitta,
		DoshaKapha:    log.DoshaKapha,
		WeightKg:      log.WeightKg,
		SleepHours:    log.SleepHours,
		WaterLitres:   log.WaterLitres,
		EnergyLevel:   log.EnergyLevel,
		StressLevel:   log.StressLevel,
		BloodPressure: log.BloodPressure,
		Mood:          log.Mood,
		Notes:         log.Notes,
		UpdatedAt:     log.UpdatedAt,
	}
}

func toSymptomResponse(s *storage.Symptom) SymptomResponse {
	return SymptomResponse{
		ID:           s.ID,
		Name:         s.Name,
		Severity:     s.Severity,
		DurationDays: s.DurationDays,
		Notes:        s.Notes,
		LoggedAt:     s.LoggedAt,
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
