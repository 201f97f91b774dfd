package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) CreateAppointment(ctx context.Context, a *storage.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt

	s.appointments[a.ID] = *a

	return nil
}

func (s *Store) GetAppointment(ctx context.Context, id uuid.UUID) (*storage.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &a, nil
}

func (s *Store) ListAppointmentsByPatient(ctx context.Context, patientUserID uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Appointment, 0)
	for _, a := range s.appointments {
		if a.PatientUserID == patientUserID {
			result = append(result, a)
		}
	}
	sortAppointments(result)

	return paginate(result, limit, offset), nil
}

func (s *Store) ListAppointmentsByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Appointment, 0)
	for _, a := range s.appointments {
		if a.PractitionerID == practitionerID {
			result = append(result, a)
		}
	}
	sortAppointments(result)

	return paginate(result, limit, offset), nil
}

func (s *Store) ListAppointmentsInWindow(ctx context.Context, practitionerID uuid.UUID, from, to time.Time) ([]storage.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]storage.Appointment, 0)
	for _, a := range s.appointments {
		if a.PractitionerID != practitionerID || a.Status == "cancelled" {
			continue
		}
		end := a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
		if a.ScheduledAt.Before(to) && end.After(from) {
			result = append(result, a)
		}
	}
	sortAppointments(result)

	return result, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return storage.ErrNotFound
	}

	a.Status = status
	if notes != "" {
		a.Notes = notes
	}
	a.UpdatedAt = s.now()
	s.appointments[id] = a

	return nil
}

func sortAppointments(items []storage.Appointment) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].ScheduledAt.After(items[j].ScheduledAt)
	})
}
