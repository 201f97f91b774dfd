package memory

import (
	"context"
	"sort"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateConversation(ctx context.Context, c *storage.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	s.conversations[c.ID] = *c

	return nil
}

func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*storage.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &c, nil
}

func (s *Store) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Conversation, 0)
	for _, c := range s.conversations {
		if c.UserID == userID {
			result = append(result, c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return paginate(result, limit, offset), nil
}

func (s *Store) AppendMessage(ctx context.Context, msg *storage.ConversationMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[msg.ConversationID]
	if !ok {
		return storage.ErrNotFound
	}

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = s.now()
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], *msg)

	c.UpdatedAt = msg.CreatedAt
	s.conversations[c.ID] = c

	return nil
}

func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]storage.ConversationMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.messages[conversationID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	result := make([]storage.ConversationMessage, len(msgs))
	copy(result, msgs)

	return result, nil
}
