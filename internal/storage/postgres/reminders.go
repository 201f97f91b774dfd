package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Times are stored comma-joined in a text column.

func joinTimes(times []string) string {
	return strings.Join(times, ",")
}

func splitTimes(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func scanReminder(row pgx.CollectableRow) (storage.Reminder, error) {
	var r storage.Reminder
	var times string
	err := row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Message, &r.Frequency, &times,
		&r.IsActive, &r.LastFiredAt, &r.CreatedAt, &r.UpdatedAt,
	)
	r.Times = splitTimes(times)
	return r, err
}

const reminderColumns = `id, user_id, title, message, frequency, times, is_active, last_fired_at, created_at, updated_at`

func (s *Store) CreateReminder(ctx context.Context, r *storage.Reminder) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt

	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		r.ID, r.UserID, r.Title, r.Message, r.Frequency, joinTimes(r.Times),
		r.IsActive, r.LastFiredAt, r.CreatedAt, r.UpdatedAt,
	)

	return err
}

func (s *Store) GetReminder(ctx context.Context, id uuid.UUID) (*storage.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	r, err := pgx.CollectOneRow(rows, scanReminder)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &r, nil
}

func (s *Store) ListReminders(ctx context.Context, userID uuid.UUID) ([]storage.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanReminder)
}

func (s *Store) ListActiveReminders(ctx context.Context) ([]storage.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE is_active
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanReminder)
}

func (s *Store) UpdateReminder(ctx context.Context, r *storage.Reminder) error {
	r.UpdatedAt = time.Now()

	query := `
		UPDATE reminders
		SET title = $2, message = $3, frequency = $4, times = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		r.ID, r.Title, r.Message, r.Frequency, joinTimes(r.Times), r.IsActive, r.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *Store) MarkReminderFired(ctx context.Context, id uuid.UUID, firedAt time.Time) error {
	query := `
		UPDATE reminders
		SET last_fired_at = $2, updated_at = $3
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query, id, firedAt, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
