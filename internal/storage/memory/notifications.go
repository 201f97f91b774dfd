package memory

import (
	"context"
	"sort"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateNotification(ctx context.Context, n *storage.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	s.notifications[n.ID] = *n

	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if onlyUnread && n.ReadAt != nil {
			continue
		}
		result = append(result, n)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return paginate(result, limit, offset), nil
}

func (s *Store) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && n.ReadAt == nil {
			count++
		}
	}

	return count, nil
}

func (s *Store) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	updated := 0
	for _, id := range ids {
		n, ok := s.notifications[id]
		if !ok || n.UserID != userID || n.ReadAt != nil {
			continue
		}
		n.ReadAt = &now
		s.notifications[id] = n
		updated++
	}

	return updated, nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	updated := 0
	for id, n := range s.notifications {
		if n.UserID != userID || n.ReadAt != nil {
			continue
		}
		n.ReadAt = &now
		s.notifications[id] = n
		updated++
	}

	return updated, nil
}
