package healthlogs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidLog   = errors.New("invalid log values")
	ErrInvalidName  = errors.New("symptom name is required")
)

const dateLayout = "2006-01-02"

var bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

type Service struct {
	store storage.Store
	now   func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// UpsertLog creates or replaces the daily log for the given date.
func (s *Service) UpsertLog(ctx context.Context, userID uuid.UUID, req UpsertLogRequest) (*storage.HealthLog, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().UTC().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	for _, dosha := range []*int{req.DoshaVata, req.DoshaPitta, req.DoshaKapha} {
		if dosha != nil && (*dosha < 0 || *dosha > 100) {
			return nil, fmt.Errorf("%w: dosha scores must be 0..100", ErrInvalidLog)
		}
	}
	if req.WeightKg != nil && (*req.WeightKg <= 0 || *req.WeightKg > 500) {
		return nil, fmt.Errorf("%w: weight_kg out of range", ErrInvalidLog)
	}
	if req.SleepHours != nil && (*req.SleepHours < 0 || *req.SleepHours > 24) {
		return nil, fmt.Errorf("%w: sleep_hours out of range", ErrInvalidLog)
	}
	if req.WaterLitres != nil && (*req.WaterLitres < 0 || *req.WaterLitres > 30) {
		return nil, fmt.Errorf("%w: water_litres out of range", ErrInvalidLog)
	}
	if req.EnergyLevel != nil && (*req.EnergyLevel < 1 || *req.EnergyLevel > 10) {
		return nil, fmt.Errorf("%w: energy_level must be 1..10", ErrInvalidLog)
	}

	stress := strings.ToLower(strings.TrimSpace(req.StressLevel))
	switch stress {
	case "", "low", "medium", "high":
	default:
		return nil, fmt.Errorf("%w: stress_level must be low, medium or high", ErrInvalidLog)
	}

	pressure := strings.TrimSpace(req.BloodPressure)
	if pressure != "" && !bloodPressurePattern.MatchString(pressure) {
		return nil, fmt.Errorf("%w: blood_pressure must look like 120/80", ErrInvalidLog)
	}

	log := &storage.HealthLog{
		UserID:        userID,
		Date:          date,
		DoshaVata:     req.DoshaVata,
		DoshaPitta:    req.DoshaPitta,
		DoshaKapha:    req.DoshaKapha,
		WeightKg:      req.WeightKg,
		SleepHours:    req.SleepHours,
		WaterLitres:   req.WaterLitres,
		EnergyLevel:   req.EnergyLevel,
		StressLevel:   stress,
		BloodPressure: pressure,
		Mood:          strings.TrimSpace(req.Mood),
		Notes:         strings.TrimSpace(req.Notes),
	}
	if err := s.store.UpsertHealthLog(ctx, log); err != nil {
		return nil, fmt.Errorf("upsert health log: %w", err)
	}
	return log, nil
}

// ListLogs returns logs in [from, to]. An empty bound leaves that side open.
func (s *Service) ListLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]storage.HealthLog, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
	}
	if from != "" && to != "" && from > to {
		return nil, ErrInvalidRange
	}

	logs, err := s.store.ListHealthLogs(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	return logs, nil
}

// CreateSymptom records a symptom occurrence. Severity defaults to moderate.
func (s *Service) CreateSymptom(ctx context.Context, userID uuid.UUID, req CreateSymptomRequest) (*storage.Symptom, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	severity := strings.ToLower(strings.TrimSpace(req.Severity))
	switch severity {
	case "":
		severity = SeverityModerate
	case SeverityLow, SeverityModerate, SeverityHigh, SeveritySevere:
	default:
		return nil, fmt.Errorf("%w: severity must be low, moderate, high or severe", ErrInvalidLog)
	}

	if req.DurationDays != nil && (*req.DurationDays < 1 || *req.DurationDays > 365) {
		return nil, fmt.Errorf("%w: duration_days must be 1..365", ErrInvalidLog)
	}

	symptom := &storage.Symptom{
		UserID:       userID,
		Name:         strings.ToLower(name),
		Severity:     severity,
		DurationDays: req.DurationDays,
		Notes:        strings.TrimSpace(req.Notes),
		LoggedAt:     s.now().UTC(),
	}
	if err := s.store.CreateSymptom(ctx, symptom); err != nil {
		return nil, fmt.Errorf("create symptom: %w", err)
	}
	return symptom, nil
}

// ListSymptoms returns a user's symptoms, newest first.
func (s *Service) ListSymptoms(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Symptom, error) {
	symptoms, err := s.store.ListSymptoms(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	return symptoms, nil
}
