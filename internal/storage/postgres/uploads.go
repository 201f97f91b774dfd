package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateUpload(ctx context.Context, upload *storage.Upload) error {
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	upload.CreatedAt = time.Now()

	query := `
		INSERT INTO uploads (id, user_id, file_name, content_type, size_bytes, object_key, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		upload.ID, upload.UserID, upload.FileName, upload.ContentType,
		upload.SizeBytes, upload.ObjectKey, upload.Data, upload.CreatedAt,
	)

	return err
}

func (s *Store) GetUpload(ctx context.Context, id uuid.UUID) (*storage.Upload, error) {
	query := `
		SELECT id, user_id, file_name, content_type, size_bytes, object_key, data, created_at
		FROM uploads
		WHERE id = $1
	`

	var u storage.Upload
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.UserID, &u.FileName, &u.ContentType,
		&u.SizeBytes, &u.ObjectKey, &u.Data, &u.CreatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &u, nil
}

func (s *Store) ListUploads(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Upload, error) {
	if limit <= 0 {
		limit = 50
	}

	// Listing omits the payload bytes.
	query := `
		SELECT id, user_id, file_name, content_type, size_bytes, object_key, created_at
		FROM uploads
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.Upload, error) {
		var u storage.Upload
		err := row.Scan(
			&u.ID, &u.UserID, &u.FileName, &u.ContentType,
			&u.SizeBytes, &u.ObjectKey, &u.CreatedAt,
		)
		return u, err
	})
}

func (s *Store) DeleteUpload(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM uploads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
