package memory

import (
	"context"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreatePatientProfile(ctx context.Context, profile *storage.PatientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = s.now()
	profile.UpdatedAt = profile.CreatedAt

	s.patients[profile.UserID] = *profile

	return nil
}

func (s *Store) GetPatientProfile(ctx context.Context, userID uuid.UUID) (*storage.PatientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &p, nil
}

func (s *Store) UpdatePatientProfile(ctx context.Context, profile *storage.PatientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.patients[profile.UserID]
	if !ok {
		return storage.ErrNotFound
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = s.now()
	s.patients[profile.UserID] = *profile

	return nil
}
