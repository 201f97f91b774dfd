package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) UpsertHealthLog(ctx context.Context, log *storage.HealthLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	now := time.Now()

	query := `
		INSERT INTO health_logs (id, user_id, date, dosha_vata, dosha_pitta, dosha_kapha, weight_kg, sleep_hours, water_litres, energy_level, stress_level, blood_pressure, mood, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		ON CONFLICT (user_id, date) DO UPDATE SET
			dosha_vata = EXCLUDED.dosha_vata,
			dosha_pitta = EXCLUDED.dosha_pitta,
			dosha_kapha = EXCLUDED.dosha_kapha,
			weight_kg = EXCLUDED.weight_kg,
			sleep_hours = EXCLUDED.sleep_hours,
			water_litres = EXCLUDED.water_litres,
			energy_level = EXCLUDED.energy_level,
			stress_level = EXCLUDED.stress_level,
			blood_pressure = EXCLUDED.blood_pressure,
			mood = EXCLUDED.mood,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`

	return s.pool.QueryRow(ctx, query,
		log.ID, log.UserID, log.Date, log.DoshaVata, log.DoshaPitta, log.DoshaKapha,
		log.WeightKg, log.SleepHours, log.WaterLitres, log.EnergyLevel,
		log.StressLevel, log.BloodPressure, log.Mood, log.Notes, now,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
}

func (s *Store) GetHealthLog(ctx context.Context, userID uuid.UUID, date string) (*storage.HealthLog, error) {
	query := `
		SELECT id, user_id, date, dosha_vata, dosha_pitta, dosha_kapha, weight_kg, sleep_hours, water_litres, energy_level, stress_level, blood_pressure, mood, notes, created_at, updated_at
		FROM health_logs
		WHERE user_id = $1 AND date = $2
	`

	var l storage.HealthLog
	err := s.pool.QueryRow(ctx, query, userID, date).Scan(
		&l.ID, &l.UserID, &l.Date, &l.DoshaVata, &l.DoshaPitta, &l.DoshaKapha,
		&l.WeightKg, &l.SleepHours, &l.WaterLitres, &l.EnergyLevel,
		&l.StressLevel, &l.BloodPressure, &l.Mood, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &l, nil
}

func (s *Store) ListHealthLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]storage.HealthLog, error) {
	query := `
		SELECT id, user_id, date, dosha_vata, dosha_pitta, dosha_kapha, weight_kg, sleep_hours, water_litres, energy_level, stress_level, blood_pressure, mood, notes, created_at, updated_at
		FROM health_logs
		WHERE user_id = $1
			AND ($2 = '' OR date >= $2)
			AND ($3 = '' OR date <= $3)
		ORDER BY date DESC
	`

	rows, err := s.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.HealthLog, error) {
		var l storage.HealthLog
		err := row.Scan(
			&l.ID, &l.UserID, &l.Date, &l.DoshaVata, &l.DoshaPitta, &l.DoshaKapha,
			&l.WeightKg, &l.SleepHours, &l.WaterLitres, &l.EnergyLevel,
			&l.StressLevel, &l.BloodPressure, &l.Mood, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
		)
		return l, err
	})
}

func (s *Store) CreateSymptom(ctx context.Context, sym *storage.Symptom) error {
	if sym.ID == uuid.Nil {
		sym.ID = uuid.New()
	}
	if sym.LoggedAt.IsZero() {
		sym.LoggedAt = time.Now()
	}
	sym.CreatedAt = time.Now()

	query := `
		INSERT INTO symptoms (id, user_id, name, severity, duration_days, notes, logged_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		sym.ID, sym.UserID, sym.Name, sym.Severity, sym.DurationDays, sym.Notes, sym.LoggedAt, sym.CreatedAt,
	)

	return err
}

func (s *Store) ListSymptoms(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Symptom, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, name, severity, duration_days, notes, logged_at, created_at
		FROM symptoms
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.Symptom, error) {
		var sym storage.Symptom
		err := row.Scan(&sym.ID, &sym.UserID, &sym.Name, &sym.Severity, &sym.DurationDays, &sym.Notes, &sym.LoggedAt, &sym.CreatedAt)
		return sym, err
	})
}
