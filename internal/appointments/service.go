package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayursutra/backend/internal/config"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrPastSlot          = errors.New("appointment is in the past")
	ErrConflict          = errors.New("practitioner already booked for this slot")
	ErrUnknownPractition = errors.New("practitioner not found")
	ErrBadTransition     = errors.New("invalid status transition")
	ErrForbidden         = errors.New("not a participant of this appointment")
)

// Service books consultations and enforces the status lifecycle.
type Service struct {
	config *config.Config
	store  storage.Store
	now    func() time.Time
}

func NewService(cfg *config.Config, store storage.Store) *Service {
	return &Service{
		config: cfg,
		store:  store,
		now:    time.Now,
	}
}

// Create books a slot after checking the practitioner exists, the slot is in
// the future, and the practitioner has no overlapping booking.
func (s *Service) Create(ctx context.Context, patientUserID uuid.UUID, req CreateRequest) (*storage.Appointment, error) {
	if !req.ScheduledAt.After(s.now()) {
		return nil, ErrPastSlot
	}

	if _, err := s.store.GetPractitioner(ctx, req.PractitionerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownPractition
		}
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = s.config.AppointmentDefaultMinutes
	}

	end := req.ScheduledAt.Add(time.Duration(duration) * time.Minute)
	overlapping, err := s.store.ListAppointmentsInWindow(ctx, req.PractitionerID, req.ScheduledAt, end)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrConflict
	}

	appointment := &storage.Appointment{
		PatientUserID:   patientUserID,
		PractitionerID:  req.PractitionerID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: duration,
		Status:          StatusScheduled,
		Notes:           req.Notes,
	}
	if err := s.store.CreateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// ListForUser returns the caller's appointments, from either side of the
// booking.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Appointment, error) {
	if practitioner, err := s.store.GetPractitionerByUser(ctx, userID); err == nil {
		return s.store.ListAppointmentsByPractitioner(ctx, practitioner.ID, limit, offset)
	}

	return s.store.ListAppointmentsByPatient(ctx, userID, limit, offset)
}

// UpdateStatus applies a lifecycle transition. Only the patient or the booked
// practitioner may change an appointment; completed, cancelled and no_show
// are final.
func (s *Service) UpdateStatus(ctx context.Context, userID, appointmentID uuid.UUID, req StatusRequest) (*storage.Appointment, error) {
	appointment, err := s.store.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !s.isParticipant(ctx, userID, appointment) {
		return nil, ErrForbidden
	}

	if !transitionAllowed(appointment.Status, req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, appointment.Status, req.Status)
	}

	if err := s.store.UpdateAppointmentStatus(ctx, appointmentID, req.Status, req.Notes); err != nil {
		return nil, err
	}

	// Tell the other party.
	s.notifyStatusChange(ctx, userID, appointment, req.Status)

	appointment.Status = req.Status
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	return appointment, nil
}

func (s *Service) isParticipant(ctx context.Context, userID uuid.UUID, a *storage.Appointment) bool {
	if a.PatientUserID == userID {
		return true
	}
	practitioner, err := s.store.GetPractitionerByUser(ctx, userID)
	return err == nil && practitioner.ID == a.PractitionerID
}

func (s *Service) notifyStatusChange(ctx context.Context, actor uuid.UUID, a *storage.Appointment, status string) {
	recipient := a.PatientUserID
	if actor == a.PatientUserID {
		practitioner, err := s.store.GetPractitioner(ctx, a.PractitionerID)
		if err != nil {
			return
		}
		recipient = practitioner.UserID
	}

	_ = s.store.CreateNotification(ctx, &storage.Notification{
		UserID: recipient,
		Kind:   "appointment",
		Title:  "Appointment " + status,
		Body: fmt.Sprintf("Your appointment on %s is now %s.",
			a.ScheduledAt.Format("Jan 2, 2006 at 15:04"), status),
	})
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func toResponse(a *storage.Appointment) Response {
	return Response{
		ID:              a.ID,
		PatientUserID:   a.PatientUserID,
		PractitionerID:  a.PractitionerID,
		ScheduledAt:     a.ScheduledAt,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}
