package healthlogs

import (
	"time"

	"github.com/google/uuid"
)

// UpsertLogRequest is the PUT /v1/health-logs body. Date defaults to today.
type UpsertLogRequest struct {
	Date          string   `json:"date"`
	DoshaVata     *int     `json:"dosha_vata"`
	DoshaPitta    *int     `json:"dosha_pitta"`
	DoshaKapha    *int     `json:"dosha_kapha"`
	WeightKg      *float64 `json:"weight_kg"`
	SleepHours    *float64 `json:"sleep_hours"`
	WaterLitres   *float64 `json:"water_litres"`
	EnergyLevel   *int     `json:"energy_level"`
	StressLevel   string   `json:"stress_level"`
	BloodPressure string   `json:"blood_pressure"`
	Mood          string   `json:"mood"`
	Notes         string   `json:"notes"`
}

// LogResponse is one daily log in API responses.
type LogResponse struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	DoshaVata     *int      `json:"dosha_vata,omitempty"`
	DoshaPitta    *int      `json:"dosha_pitta,omitempty"`
	DoshaKapha    *int      `json:"dosha_kapha,omitempty"`
	WeightKg      *float64  `json:"weight_kg,omitempty"`
	SleepHours    *float64  `json:"sleep_hours,omitempty"`
	WaterLitres   *float64  `json:"water_litres,omitempty"`
	EnergyLevel   *int      `json:"energy_level,omitempty"`
	StressLevel   string    `json:"stress_level,omitempty"`
	BloodPressure string    `json:"blood_pressure,omitempty"`
	Mood          string    `json:"mood,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LogsResponse is the GET /v1/health-logs body.
type LogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

// Symptom severity levels.
const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeveritySevere   = "severe"
)

// CreateSymptomRequest is the POST /v1/symptoms body.
type CreateSymptomRequest struct {
	Name         string `json:"name"`
	Severity     string `json:"severity"`
	DurationDays *int   `json:"duration_days"`
	Notes        string `json:"notes"`
}

// SymptomResponse is one symptom record in API responses.
type SymptomResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Severity     string    `json:"severity"`
	DurationDays *int      `json:"duration_days,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	LoggedAt     time.Time `json:"logged_at"`
}

// SymptomsResponse is the GET /v1/symptoms body.
type SymptomsResponse struct {
	Symptoms []SymptomResponse `json:"symptoms"`
}
