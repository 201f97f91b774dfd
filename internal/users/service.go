package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayursutra/backend/internal/knowledge"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("profile not found")
	ErrInvalidProfile = errors.New("invalid profile")
)

// Service manages patient and practitioner profiles.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// GetPatientProfile returns the profile for a user, or an empty profile if a
// patient has not filled one in yet.
func (s *Service) GetPatientProfile(ctx context.Context, userID uuid.UUID) (PatientProfileResponse, error) {
	p, err := s.store.GetPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return PatientProfileResponse{
				UserID:        userID,
				Equipment:     []string{},
				Restrictions:  []string{},
				Conditions:    []string{},
				DominantDosha: knowledge.Vata,
			}, nil
		}
		return PatientProfileResponse{}, err
	}

	return toProfileResponse(p), nil
}

// UpsertPatientProfile validates and stores the patient profile.
func (s *Service) UpsertPatientProfile(ctx context.Context, userID uuid.UUID, req UpdatePatientProfileRequest) (PatientProfileResponse, error) {
	if req.HeightCm < 0 || req.WeightKg < 0 {
		return PatientProfileResponse{}, fmt.Errorf("%w: negative measurements", ErrInvalidProfile)
	}
	if req.DaysAvailable < 0 || req.DaysAvailable > 7 {
		return PatientProfileResponse{}, fmt.Errorf("%w: days_available out of range", ErrInvalidProfile)
	}
	if req.VataScore < 0 || req.PittaScore < 0 || req.KaphaScore < 0 {
		return PatientProfileResponse{}, fmt.Errorf("%w: negative dosha score", ErrInvalidProfile)
	}

	profile := &storage.PatientProfile{
		UserID:        userID,
		Gender:        strings.ToLower(strings.TrimSpace(req.Gender)),
		DateOfBirth:   req.DateOfBirth,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		DietaryGoal:   req.DietaryGoal,
		FitnessGoal:   req.FitnessGoal,
		DaysAvailable: req.DaysAvailable,
		Equipment:     emptyIfNil(req.Equipment),
		Restrictions:  emptyIfNil(req.Restrictions),
		Conditions:    emptyIfNil(req.Conditions),
		VataScore:     req.VataScore,
		PittaScore:    req.PittaScore,
		KaphaScore:    req.KaphaScore,
	}

	err := s.store.UpdatePatientProfile(ctx, profile)
	if errors.Is(err, storage.ErrNotFound) {
		err = s.store.CreatePatientProfile(ctx, profile)
	}
	if err != nil {
		return PatientProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

// DoshaScores returns the stored questionnaire scores keyed by dosha.
func DoshaScores(p *storage.PatientProfile) map[knowledge.Dosha]int {
	return map[knowledge.Dosha]int{
		knowledge.Vata:  p.VataScore,
		knowledge.Pitta: p.PittaScore,
		knowledge.Kapha: p.KaphaScore,
	}
}

// ListPractitioners returns available practitioners with display names.
func (s *Service) ListPractitioners(ctx context.Context, specialization string, limit, offset int) ([]PractitionerResponse, error) {
	practitioners, err := s.store.ListPractitioners(ctx, specialization, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]PractitionerResponse, 0, len(practitioners))
	for _, p := range practitioners {
		resp := PractitionerResponse{
			ID:              p.ID,
			Specialization:  p.Specialization,
			Bio:             p.Bio,
			YearsExperience: p.YearsExperience,
		}
		if user, err := s.store.GetUser(ctx, p.UserID); err == nil {
			resp.FullName = user.FullName
		}
		result = append(result, resp)
	}

	return result, nil
}

// UpsertPractitioner creates or updates the caller's practitioner profile.
func (s *Service) UpsertPractitioner(ctx context.Context, userID uuid.UUID, req UpsertPractitionerRequest) (*storage.Practitioner, error) {
	if strings.TrimSpace(req.Specialization) == "" {
		return nil, fmt.Errorf("%w: specialization is required", ErrInvalidProfile)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	existing, err := s.store.GetPractitionerByUser(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Specialization = req.Specialization
		existing.Bio = req.Bio
		existing.YearsExperience = req.YearsExperience
		existing.Available = available
		if err := s.store.UpdatePractitioner(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p := &storage.Practitioner{
		UserID:          userID,
		Specialization:  req.Specialization,
		Bio:             req.Bio,
		YearsExperience: req.YearsExperience,
		Available:       available,
	}
	if err := s.store.CreatePractitioner(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func toProfileResponse(p *storage.PatientProfile) PatientProfileResponse {
	return PatientProfileResponse{
		UserID:        p.UserID,
		Gender:        p.Gender,
		DateOfBirth:   p.DateOfBirth,
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		ActivityLevel: p.ActivityLevel,
		DietaryGoal:   p.DietaryGoal,
		FitnessGoal:   p.FitnessGoal,
		DaysAvailable: p.DaysAvailable,
		Equipment:     emptyIfNil(p.Equipment),
		Restrictions:  emptyIfNil(p.Restrictions),
		Conditions:    emptyIfNil(p.Conditions),
		VataScore:     p.VataScore,
		PittaScore:    p.PittaScore,
		KaphaScore:    p.KaphaScore,
		DominantDosha: knowledge.DominantDosha(DoshaScores(p)),
		UpdatedAt:     p.UpdatedAt,
	}
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
