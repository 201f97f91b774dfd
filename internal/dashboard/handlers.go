package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

// Response is the GET /v1/dashboard body for patients.
type Response struct {
	UpcomingAppointments int `json:"upcoming_appointments"`
	UnreadNotifications  int `json:"unread_notifications"`
	ActiveReminders      int `json:"active_reminders"`
	HealthLogsThisWeek   int `json:"health_logs_this_week"`
}

// PractitionerResponse is the GET /v1/dashboard body for practitioners.
type PractitionerResponse struct {
	UpcomingAppointments int `json:"upcoming_appointments"`
	CompletedSessions    int `json:"completed_sessions"`
	PatientsSeen         int `json:"patients_seen"`
}

// AdminResponse is the GET /v1/dashboard body for admins.
type AdminResponse struct {
	TotalUsers    int `json:"total_users"`
	Patients      int `json:"patients"`
	Practitioners int `json:"practitioners"`
	Admins        int `json:"admins"`
}

type Handler struct {
	store storage.Store
	now   func() time.Time
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// HandleGet handles GET /v1/dashboard
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	switch user.Role {
	case "practitioner":
		h.practitionerDashboard(w, r, userID)
	case "admin":
		h.adminDashboard(w, r)
	default:
		h.patientDashboard(w, r, userID)
	}
}

func (h *Handler) patientDashboard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	counts, err := h.store.DashboardCounts(r.Context(), userID, h.now().UTC())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		UpcomingAppointments: counts.UpcomingAppointments,
		UnreadNotifications:  counts.UnreadNotifications,
		ActiveReminders:      counts.ActiveReminders,
		HealthLogsThisWeek:   counts.HealthLogsThisWeek,
	})
}

func (h *Handler) practitionerDashboard(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	practitioner, err := h.store.GetPractitionerByUser(r.Context(), userID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	counts, err := h.store.PractitionerDashboardCounts(r.Context(), practitioner.ID, h.now().UTC())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	h.sendJSON(w, http.StatusOK, PractitionerResponse{
		UpcomingAppointments: counts.UpcomingAppointments,
		CompletedSessions:    counts.CompletedSessions,
		PatientsSeen:         counts.PatientsSeen,
	})
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.AdminDashboardCounts(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	h.sendJSON(w, http.StatusOK, AdminResponse{
		TotalUsers:    counts.TotalUsers,
		Patients:      counts.Patients,
		Practitioners: counts.Practitioners,
		Admins:        counts.Admins,
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
