package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreatePractitioner(ctx context.Context, p *storage.Practitioner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	s.practitioners[p.ID] = *p

	return nil
}

func (s *Store) GetPractitioner(ctx context.Context, id uuid.UUID) (*storage.Practitioner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.practitioners[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &p, nil
}

func (s *Store) GetPractitionerByUser(ctx context.Context, userID uuid.UUID) (*storage.Practitioner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.practitioners {
		if p.UserID == userID {
			return &p, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *Store) ListPractitioners(ctx context.Context, specialization string, limit, offset int) ([]storage.Practitioner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(specialization)
	result := make([]storage.Practitioner, 0)
	for _, p := range s.practitioners {
		if !p.Available {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Specialization), needle) {
			continue
		}
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return paginate(result, limit, offset), nil
}

func (s *Store) UpdatePractitioner(ctx context.Context, p *storage.Practitioner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.practitioners[p.ID]
	if !ok {
		return storage.ErrNotFound
	}

	p.UserID = existing.UserID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	s.practitioners[p.ID] = *p

	return nil
}

// paginate slices with bounds checks shared by the list methods.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
