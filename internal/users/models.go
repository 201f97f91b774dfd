package users

import (
	"time"

	"github.com/ayursutra/backend/internal/knowledge"
	"github.com/google/uuid"
)

// PatientProfileResponse is the GET/PUT /v1/patients/me body.
type PatientProfileResponse struct {
	UserID        uuid.UUID       `json:"user_id"`
	Gender        string          `json:"gender,omitempty"`
	DateOfBirth   *time.Time      `json:"date_of_birth,omitempty"`
	HeightCm      float64         `json:"height_cm,omitempty"`
	WeightKg      float64         `json:"weight_kg,omitempty"`
	ActivityLevel string          `json:"activity_level,omitempty"`
	DietaryGoal   string          `json:"dietary_goal,omitempty"`
	FitnessGoal   string          `json:"fitness_goal,omitempty"`
	DaysAvailable int             `json:"days_available,omitempty"`
	Equipment     []string        `json:"equipment"`
	Restrictions  []string        `json:"restrictions"`
	Conditions    []string        `json:"conditions"`
	VataScore     int             `json:"vata_score"`
	PittaScore    int             `json:"pitta_score"`
	KaphaScore    int             `json:"kapha_score"`
	DominantDosha knowledge.Dosha `json:"dominant_dosha"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdatePatientProfileRequest is the PUT /v1/patients/me body.
type UpdatePatientProfileRequest struct {
	Gender        string     `json:"gender"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	HeightCm      float64    `json:"height_cm"`
	WeightKg      float64    `json:"weight_kg"`
	ActivityLevel string     `json:"activity_level"`
	DietaryGoal   string     `json:"dietary_goal"`
	FitnessGoal   string     `json:"fitness_goal"`
	DaysAvailable int        `json:"days_available"`
	Equipment     []string   `json:"equipment"`
	Restrictions  []string   `json:"restrictions"`
	Conditions    []string   `json:"conditions"`
	VataScore     int        `json:"vata_score"`
	PittaScore    int        `json:"pitta_score"`
	KaphaScore    int        `json:"kapha_score"`
}

// PractitionerResponse is one element of GET /v1/practitioners.
type PractitionerResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Specialization  string    `json:"specialization"`
	Bio             string    `json:"bio,omitempty"`
	YearsExperience int       `json:"years_experience"`
}

// PractitionersResponse is the GET /v1/practitioners body.
type PractitionersResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
}

// UpsertPractitionerRequest is the PUT /v1/practitioners/me body.
type UpsertPractitionerRequest struct {
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
	YearsExperience int    `json:"years_experience"`
	Available       *bool  `json:"available"`
}
