package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres implementation of storage.Store.
type Store struct {
	pool *pgxpool.Pool
}

// New opens a pgx pool and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// mapRowError translates pgx sentinel errors into storage sentinels.
func mapRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// DashboardCounts runs the four headline aggregates in one round trip.
func (s *Store) DashboardCounts(ctx context.Context, userID uuid.UUID, now time.Time) (storage.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM appointments
				WHERE patient_user_id = $1 AND scheduled_at > $2
				AND status IN ('scheduled', 'confirmed')),
			(SELECT COUNT(*) FROM notifications
				WHERE user_id = $1 AND read_at IS NULL),
			(SELECT COUNT(*) FROM reminders
				WHERE user_id = $1 AND is_active),
			(SELECT COUNT(*) FROM health_logs
				WHERE user_id = $1 AND date >= $3)
	`

	weekAgo := now.AddDate(0, 0, -7).Format("2006-01-02")

	var counts storage.DashboardCounts
	err := s.pool.QueryRow(ctx, query, userID, now, weekAgo).Scan(
		&counts.UpcomingAppointments,
		&counts.UnreadNotifications,
		&counts.ActiveReminders,
		&counts.HealthLogsThisWeek,
	)
	if err != nil {
		return storage.DashboardCounts{}, err
	}

	return counts, nil
}

// PractitionerDashboardCounts runs the practitioner aggregates in one round trip.
func (s *Store) PractitionerDashboardCounts(ctx context.Context, practitionerID uuid.UUID, now time.Time) (storage.PractitionerDashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM appointments
				WHERE practitioner_id = $1 AND scheduled_at > $2
				AND status IN ('scheduled', 'confirmed')),
			(SELECT COUNT(*) FROM appointments
				WHERE practitioner_id = $1 AND status = 'completed'),
			(SELECT COUNT(DISTINCT patient_user_id) FROM appointments
				WHERE practitioner_id = $1 AND status = 'completed')
	`

	var counts storage.PractitionerDashboardCounts
	err := s.pool.QueryRow(ctx, query, practitionerID, now).Scan(
		&counts.UpcomingAppointments,
		&counts.CompletedSessions,
		&counts.PatientsSeen,
	)
	if err != nil {
		return storage.PractitionerDashboardCounts{}, err
	}

	return counts, nil
}

// AdminDashboardCounts tallies users by role in one query.
func (s *Store) AdminDashboardCounts(ctx context.Context) (storage.AdminDashboardCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE role = 'patient'),
			COUNT(*) FILTER (WHERE role = 'practitioner'),
			COUNT(*) FILTER (WHERE role = 'admin')
		FROM users
	`

	var counts storage.AdminDashboardCounts
	err := s.pool.QueryRow(ctx, query).Scan(
		&counts.TotalUsers,
		&counts.Patients,
		&counts.Practitioners,
		&counts.Admins,
	)
	if err != nil {
		return storage.AdminDashboardCounts{}, err
	}

	return counts, nil
}
