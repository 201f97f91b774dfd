package memory

import (
	"context"
	"sort"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateUpload(ctx context.Context, upload *storage.Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	upload.CreatedAt = s.now()
	s.uploads[upload.ID] = *upload

	return nil
}

func (s *Store) GetUpload(ctx context.Context, id uuid.UUID) (*storage.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.uploads[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &u, nil
}

func (s *Store) ListUploads(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Upload, 0)
	for _, u := range s.uploads {
		if u.UserID == userID {
			// Listing omits the payload bytes.
			u.Data = nil
			result = append(result, u)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return paginate(result, limit, offset), nil
}

func (s *Store) DeleteUpload(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.uploads[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.uploads, id)

	return nil
}
