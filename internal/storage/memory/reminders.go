package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateReminder(ctx context.Context, r *storage.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = s.now()
	r.UpdatedAt = r.CreatedAt
	s.reminders[r.ID] = *r

	return nil
}

func (s *Store) GetReminder(ctx context.Context, id uuid.UUID) (*storage.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reminders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &r, nil
}

func (s *Store) ListReminders(ctx context.Context, userID uuid.UUID) ([]storage.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Reminder, 0)
	for _, r := range s.reminders {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sortReminders(result)

	return result, nil
}

func (s *Store) ListActiveReminders(ctx context.Context) ([]storage.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Reminder, 0)
	for _, r := range s.reminders {
		if r.IsActive {
			result = append(result, r)
		}
	}
	sortReminders(result)

	return result, nil
}

func (s *Store) UpdateReminder(ctx context.Context, r *storage.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reminders[r.ID]
	if !ok {
		return storage.ErrNotFound
	}

	r.UserID = existing.UserID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = s.now()
	s.reminders[r.ID] = *r

	return nil
}

func (s *Store) MarkReminderFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[id]
	if !ok {
		return storage.ErrNotFound
	}

	r.LastFiredAt = &firedAt
	r.UpdatedAt = s.now()
	s.reminders[id] = r

	return nil
}

func (s *Store) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.reminders, id)

	return nil
}

func sortReminders(items []storage.Reminder) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
