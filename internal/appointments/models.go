package appointments

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// validTransitions encodes the allowed status changes. Completed, cancelled
// and no_show are terminal.
var validTransitions = map[string][]string{
	StatusScheduled:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// CreateRequest is the POST /v1/appointments body.
type CreateRequest struct {
	PractitionerID  uuid.UUID `json:"practitioner_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

// StatusRequest is the PATCH /v1/appointments/{id}/status body.
type StatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Response is one appointment in API responses.
type Response struct {
	ID              uuid.UUID `json:"id"`
	PatientUserID   uuid.UUID `json:"patient_user_id"`
	PractitionerID  uuid.UUID `json:"practitioner_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListResponse is the GET /v1/appointments body.
type ListResponse struct {
	Appointments []Response `json:"appointments"`
}
