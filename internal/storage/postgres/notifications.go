package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateNotification(ctx context.Context, n *storage.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, user_id, kind, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query, n.ID, n.UserID, n.Kind, n.Title, n.Body, n.CreatedAt)

	return err
}

func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, kind, title, body, created_at, read_at
		FROM notifications
		WHERE user_id = $1
			AND ($2 = false OR read_at IS NULL)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := s.pool.Query(ctx, query, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.Notification, error) {
		var n storage.Notification
		err := row.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.CreatedAt, &n.ReadAt)
		return n, err
	})
}

func (s *Store) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`,
		userID,
	).Scan(&count)

	return count, err
}

func (s *Store) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	query := `
		UPDATE notifications
		SET read_at = $3
		WHERE user_id = $1 AND id = ANY($2) AND read_at IS NULL
	`

	tag, err := s.pool.Exec(ctx, query, userID, ids, time.Now())
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		UPDATE notifications
		SET read_at = $2
		WHERE user_id = $1 AND read_at IS NULL
	`

	tag, err := s.pool.Exec(ctx, query, userID, time.Now())
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}
