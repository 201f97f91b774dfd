package memory

import (
	"context"
	"sort"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) UpsertHealthLog(ctx context.Context, log *storage.HealthLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.healthLogs {
		if existing.UserID == log.UserID && existing.Date == log.Date {
			log.ID = id
			log.CreatedAt = existing.CreatedAt
			log.UpdatedAt = s.now()
			s.healthLogs[id] = *log
			return nil
		}
	}

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = s.now()
	log.UpdatedAt = log.CreatedAt
	s.healthLogs[log.ID] = *log

	return nil
}

func (s *Store) GetHealthLog(ctx context.Context, userID uuid.UUID, date string) (*storage.HealthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.healthLogs {
		if l.UserID == userID && l.Date == date {
			return &l, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *Store) ListHealthLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]storage.HealthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.HealthLog, 0)
	for _, l := range s.healthLogs {
		if l.UserID != userID {
			continue
		}
		if from != "" && l.Date < from {
			continue
		}
		if to != "" && l.Date > to {
			continue
		}
		result = append(result, l)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})

	return result, nil
}

func (s *Store) CreateSymptom(ctx context.Context, sym *storage.Symptom) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sym.ID == uuid.Nil {
		sym.ID = uuid.New()
	}
	if sym.LoggedAt.IsZero() {
		sym.LoggedAt = s.now()
	}
	sym.CreatedAt = s.now()
	s.symptoms[sym.ID] = *sym

	return nil
}

func (s *Store) ListSymptoms(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Symptom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Symptom, 0)
	for _, sym := range s.symptoms {
		if sym.UserID == userID {
			result = append(result, sym)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.After(result[j].LoggedAt)
	})

	return paginate(result, limit, offset), nil
}
