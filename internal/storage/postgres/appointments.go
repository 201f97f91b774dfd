package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const appointmentColumns = `id, patient_user_id, practitioner_id, scheduled_at, duration_minutes, status, notes, created_at, updated_at`

func scanAppointment(row pgx.CollectableRow) (storage.Appointment, error) {
	var a storage.Appointment
	err := row.Scan(
		&a.ID, &a.PatientUserID, &a.PractitionerID, &a.ScheduledAt,
		&a.DurationMinutes, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (s *Store) CreateAppointment(ctx context.Context, a *storage.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt

	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.pool.Exec(ctx, query,
		a.ID, a.PatientUserID, a.PractitionerID, a.ScheduledAt,
		a.DurationMinutes, a.Status, a.Notes, a.CreatedAt, a.UpdatedAt,
	)

	return err
}

func (s *Store) GetAppointment(ctx context.Context, id uuid.UUID) (*storage.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var a storage.Appointment
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PatientUserID, &a.PractitionerID, &a.ScheduledAt,
		&a.DurationMinutes, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &a, nil
}

func (s *Store) ListAppointmentsByPatient(ctx context.Context, patientUserID uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	return s.listAppointments(ctx, "patient_user_id = $1", patientUserID, limit, offset)
}

func (s *Store) ListAppointmentsByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	return s.listAppointments(ctx, "practitioner_id = $1", practitionerID, limit, offset)
}

func (s *Store) listAppointments(ctx context.Context, where string, id uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE ` + where + `
		ORDER BY scheduled_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, id, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanAppointment)
}

func (s *Store) ListAppointmentsInWindow(ctx context.Context, practitionerID uuid.UUID, from, to time.Time) ([]storage.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE practitioner_id = $1
			AND status <> 'cancelled'
			AND scheduled_at < $3
			AND scheduled_at + make_interval(mins => duration_minutes) > $2
		ORDER BY scheduled_at
	`

	rows, err := s.pool.Query(ctx, query, practitionerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, scanAppointment)
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status, notes string) error {
	query := `
		UPDATE appointments
		SET status = $2,
			notes = CASE WHEN $3 <> '' THEN $3 ELSE notes END,
			updated_at = $4
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query, id, status, notes, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
