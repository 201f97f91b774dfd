package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateConversation(ctx context.Context, c *storage.Conversation) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	query := `
		INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query, c.ID, c.UserID, c.Title, c.CreatedAt, c.UpdatedAt)

	return err
}

func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*storage.Conversation, error) {
	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE id = $1
	`

	var c storage.Conversation
	err := s.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &c, nil
}

func (s *Store) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Conversation, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.Conversation, error) {
		var c storage.Conversation
		err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// AppendMessage writes the message and bumps the conversation in one tx.
func (s *Store) AppendMessage(ctx context.Context, msg *storage.ConversationMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE conversations SET updated_at = $2 WHERE id = $1`,
		msg.ConversationID, msg.CreatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO conversation_messages (id, conversation_id, role, content, response_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, msg.ID, msg.ConversationID, msg.Role, msg.Content, msg.ResponseType, msg.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]storage.ConversationMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	// Last N messages, returned oldest first.
	query := `
		SELECT id, conversation_id, role, content, response_type, created_at
		FROM (
			SELECT id, conversation_id, role, content, response_type, created_at
			FROM conversation_messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at
	`

	rows, err := s.pool.Query(ctx, query, conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.ConversationMessage, error) {
		var m storage.ConversationMessage
		err := row.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.ResponseType, &m.CreatedAt)
		return m, err
	})
}
