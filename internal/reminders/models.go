package reminders

import (
	"time"

	"github.com/google/uuid"
)

// Frequencies a reminder can have.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// CreateRequest is the POST /v1/reminders body.
type CreateRequest struct {
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
}

// UpdateRequest is the PATCH /v1/reminders/{id} body. Nil fields are left
// unchanged.
type UpdateRequest struct {
	Title     *string   `json:"title"`
	Message   *string   `json:"message"`
	Frequency *string   `json:"frequency"`
	Times     *[]string `json:"times"`
	IsActive  *bool     `json:"is_active"`
}

// Response is one reminder in API responses.
type Response struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Message     string     `json:"message,omitempty"`
	Frequency   string     `json:"frequency"`
	Times       []string   `json:"times"`
	IsActive    bool       `json:"is_active"`
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListResponse is the GET /v1/reminders body.
type ListResponse struct {
	Reminders []Response `json:"reminders"`
}
