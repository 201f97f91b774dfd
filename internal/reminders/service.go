package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidFrequency = errors.New("frequency must be daily or weekly")
	ErrInvalidTime      = errors.New("times must be HH:MM entries")
)

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create validates and stores a new reminder. It starts active.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*storage.Reminder, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	frequency, err := normalizeFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}
	times, err := normalizeTimes(req.Times)
	if err != nil {
		return nil, err
	}

	reminder := &storage.Reminder{
		UserID:    userID,
		Title:     title,
		Message:   strings.TrimSpace(req.Message),
		Frequency: frequency,
		Times:     times,
		IsActive:  true,
	}
	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

// List returns the user's reminders, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]storage.Reminder, error) {
	return s.store.ListReminders(ctx, userID)
}

// Update applies the non-nil fields of req. Reminders of other users are
// reported as not found.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (*storage.Reminder, error) {
	reminder, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrInvalidTitle
		}
		reminder.Title = title
	}
	if req.Message != nil {
		reminder.Message = strings.TrimSpace(*req.Message)
	}
	if req.Frequency != nil {
		frequency, err := normalizeFrequency(*req.Frequency)
		if err != nil {
			return nil, err
		}
		reminder.Frequency = frequency
	}
	if req.Times != nil {
		times, err := normalizeTimes(*req.Times)
		if err != nil {
			return nil, err
		}
		reminder.Times = times
	}
	if req.IsActive != nil {
		reminder.IsActive = *req.IsActive
	}

	if err := s.store.UpdateReminder(ctx, reminder); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return reminder, nil
}

// Delete removes the user's reminder.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.store.DeleteReminder(ctx, id)
}

func (s *Service) getOwned(ctx context.Context, userID, id uuid.UUID) (*storage.Reminder, error) {
	reminder, err := s.store.GetReminder(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return reminder, nil
}

func normalizeFrequency(raw string) (string, error) {
	frequency := strings.ToLower(strings.TrimSpace(raw))
	if frequency == "" {
		return FrequencyDaily, nil
	}
	if frequency != FrequencyDaily && frequency != FrequencyWeekly {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, raw)
	}
	return frequency, nil
}

func normalizeTimes(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return []string{"09:00"}, nil
	}
	times := make([]string, 0, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if _, err := time.Parse("15:04", trimmed); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, entry)
		}
		times = append(times, trimmed)
	}
	return times, nil
}
