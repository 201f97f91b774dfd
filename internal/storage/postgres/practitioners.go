package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreatePractitioner(ctx context.Context, p *storage.Practitioner) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	query := `
		INSERT INTO practitioners (id, user_id, specialization, bio, years_experience, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Specialization, p.Bio, p.YearsExperience, p.Available, p.CreatedAt, p.UpdatedAt,
	)

	return err
}

func (s *Store) GetPractitioner(ctx context.Context, id uuid.UUID) (*storage.Practitioner, error) {
	return s.getPractitioner(ctx, "id = $1", id)
}

func (s *Store) GetPractitionerByUser(ctx context.Context, userID uuid.UUID) (*storage.Practitioner, error) {
	return s.getPractitioner(ctx, "user_id = $1", userID)
}

func (s *Store) getPractitioner(ctx context.Context, where string, arg any) (*storage.Practitioner, error) {
	query := `
		SELECT id, user_id, specialization, bio, years_experience, available, created_at, updated_at
		FROM practitioners
		WHERE ` + where

	var p storage.Practitioner
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.Specialization, &p.Bio, &p.YearsExperience, &p.Available, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &p, nil
}

func (s *Store) ListPractitioners(ctx context.Context, specialization string, limit, offset int) ([]storage.Practitioner, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, specialization, bio, years_experience, available, created_at, updated_at
		FROM practitioners
		WHERE available
	`
	args := []any{}
	if specialization != "" {
		query += ` AND specialization ILIKE '%' || $1 || '%'`
		args = append(args, specialization)
	}
	query += ` ORDER BY created_at`
	if specialization != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.Practitioner, error) {
		var p storage.Practitioner
		err := row.Scan(&p.ID, &p.UserID, &p.Specialization, &p.Bio, &p.YearsExperience, &p.Available, &p.CreatedAt, &p.UpdatedAt)
		return p, err
	})
}

func (s *Store) UpdatePractitioner(ctx context.Context, p *storage.Practitioner) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE practitioners
		SET specialization = $2, bio = $3, years_experience = $4, available = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query, p.ID, p.Specialization, p.Bio, p.YearsExperience, p.Available, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
