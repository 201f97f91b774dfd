package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt

	query := `
		INSERT INTO reports (id, user_id, format, from_date, to_date, object_key, size_bytes, status, error, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.pool.Exec(ctx, query,
		report.ID, report.UserID, report.Format, report.FromDate, report.ToDate,
		report.ObjectKey, report.SizeBytes, report.Status, report.Error, report.Data,
		report.CreatedAt, report.UpdatedAt,
	)

	return err
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*storage.ReportMeta, error) {
	query := `
		SELECT id, user_id, format, from_date, to_date, object_key, size_bytes, status, error, data, created_at, updated_at
		FROM reports
		WHERE id = $1
	`

	var r storage.ReportMeta
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.UserID, &r.Format, &r.FromDate, &r.ToDate,
		&r.ObjectKey, &r.SizeBytes, &r.Status, &r.Error, &r.Data,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &r, nil
}

func (s *Store) ListReports(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.ReportMeta, error) {
	if limit <= 0 {
		limit = 50
	}

	// Listing omits the payload bytes.
	query := `
		SELECT id, user_id, format, from_date, to_date, object_key, size_bytes, status, error, created_at, updated_at
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.ReportMeta, error) {
		var r storage.ReportMeta
		err := row.Scan(
			&r.ID, &r.UserID, &r.Format, &r.FromDate, &r.ToDate,
			&r.ObjectKey, &r.SizeBytes, &r.Status, &r.Error,
			&r.CreatedAt, &r.UpdatedAt,
		)
		return r, err
	})
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
