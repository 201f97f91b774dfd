package postgres

import (
	"context"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreatePatientProfile(ctx context.Context, p *storage.PatientProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	query := `
		INSERT INTO patient_profiles (
			id, user_id, gender, date_of_birth, height_cm, weight_kg,
			activity_level, dietary_goal, fitness_goal, days_available,
			equipment, restrictions, conditions,
			vata_score, pitta_score, kapha_score,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id) DO UPDATE SET
			gender = EXCLUDED.gender,
			date_of_birth = EXCLUDED.date_of_birth,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			activity_level = EXCLUDED.activity_level,
			dietary_goal = EXCLUDED.dietary_goal,
			fitness_goal = EXCLUDED.fitness_goal,
			days_available = EXCLUDED.days_available,
			equipment = EXCLUDED.equipment,
			restrictions = EXCLUDED.restrictions,
			conditions = EXCLUDED.conditions,
			vata_score = EXCLUDED.vata_score,
			pitta_score = EXCLUDED.pitta_score,
			kapha_score = EXCLUDED.kapha_score,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query,
		p.ID, p.UserID, p.Gender, p.DateOfBirth, p.HeightCm, p.WeightKg,
		p.ActivityLevel, p.DietaryGoal, p.FitnessGoal, p.DaysAvailable,
		p.Equipment, p.Restrictions, p.Conditions,
		p.VataScore, p.PittaScore, p.KaphaScore,
		p.CreatedAt, p.UpdatedAt,
	)

	return err
}

func (s *Store) GetPatientProfile(ctx context.Context, userID uuid.UUID) (*storage.PatientProfile, error) {
	query := `
		SELECT id, user_id, gender, date_of_birth, height_cm, weight_kg,
			activity_level, dietary_goal, fitness_goal, days_available,
			equipment, restrictions, conditions,
			vata_score, pitta_score, kapha_score,
			created_at, updated_at
		FROM patient_profiles
		WHERE user_id = $1
	`

	var p storage.PatientProfile
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Gender, &p.DateOfBirth, &p.HeightCm, &p.WeightKg,
		&p.ActivityLevel, &p.DietaryGoal, &p.FitnessGoal, &p.DaysAvailable,
		&p.Equipment, &p.Restrictions, &p.Conditions,
		&p.VataScore, &p.PittaScore, &p.KaphaScore,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapRowError(err)
	}

	return &p, nil
}

func (s *Store) UpdatePatientProfile(ctx context.Context, p *storage.PatientProfile) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE patient_profiles
		SET gender = $2, date_of_birth = $3, height_cm = $4, weight_kg = $5,
			activity_level = $6, dietary_goal = $7, fitness_goal = $8,
			days_available = $9, equipment = $10, restrictions = $11,
			conditions = $12, vata_score = $13, pitta_score = $14,
			kapha_score = $15, updated_at = $16
		WHERE user_id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		p.UserID, p.Gender, p.DateOfBirth, p.HeightCm, p.WeightKg,
		p.ActivityLevel, p.DietaryGoal, p.FitnessGoal,
		p.DaysAvailable, p.Equipment, p.Restrictions,
		p.Conditions, p.VataScore, p.PittaScore,
		p.KaphaScore, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
