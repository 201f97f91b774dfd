package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

// Store is the in-memory implementation of storage.Store. Every table is a
// map guarded by one RWMutex; good enough for tests and single-node dev runs.
type Store struct {
	mu sync.RWMutex

	users         map[uuid.UUID]storage.User
	usersByEmail  map[string]uuid.UUID
	patients      map[uuid.UUID]storage.PatientProfile // keyed by UserID
	practitioners map[uuid.UUID]storage.Practitioner
	appointments  map[uuid.UUID]storage.Appointment
	healthLogs    map[uuid.UUID]storage.HealthLog
	symptoms      map[uuid.UUID]storage.Symptom
	conversations map[uuid.UUID]storage.Conversation
	messages      map[uuid.UUID][]storage.ConversationMessage // keyed by ConversationID
	reminders     map[uuid.UUID]storage.Reminder
	notifications map[uuid.UUID]storage.Notification
	reports       map[uuid.UUID]storage.ReportMeta
	uploads       map[uuid.UUID]storage.Upload

	now func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:         make(map[uuid.UUID]storage.User),
		usersByEmail:  make(map[string]uuid.UUID),
		patients:      make(map[uuid.UUID]storage.PatientProfile),
		practitioners: make(map[uuid.UUID]storage.Practitioner),
		appointments:  make(map[uuid.UUID]storage.Appointment),
		healthLogs:    make(map[uuid.UUID]storage.HealthLog),
		symptoms:      make(map[uuid.UUID]storage.Symptom),
		conversations: make(map[uuid.UUID]storage.Conversation),
		messages:      make(map[uuid.UUID][]storage.ConversationMessage),
		reminders:     make(map[uuid.UUID]storage.Reminder),
		notifications: make(map[uuid.UUID]storage.Notification),
		reports:       make(map[uuid.UUID]storage.ReportMeta),
		uploads:       make(map[uuid.UUID]storage.Upload),
		now:           time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *Store) SetNow(now func() time.Time) {
	s.now = now
}

func (s *Store) Close() error {
	return nil
}

// DashboardCounts walks the relevant tables under one read lock.
func (s *Store) DashboardCounts(ctx context.Context, userID uuid.UUID, now time.Time) (storage.DashboardCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts storage.DashboardCounts

	for _, a := range s.appointments {
		if a.PatientUserID == userID && a.ScheduledAt.After(now) &&
			(a.Status == "scheduled" || a.Status == "confirmed") {
			counts.UpcomingAppointments++
		}
	}
	for _, n := range s.notifications {
		if n.UserID == userID && n.ReadAt == nil {
			counts.UnreadNotifications++
		}
	}
	for _, r := range s.reminders {
		if r.UserID == userID && r.IsActive {
			counts.ActiveReminders++
		}
	}
	weekAgo := now.AddDate(0, 0, -7).Format("2006-01-02")
	for _, l := range s.healthLogs {
		if l.UserID == userID && l.Date >= weekAgo {
			counts.HealthLogsThisWeek++
		}
	}

	return counts, nil
}

// PractitionerDashboardCounts walks the appointments table under one read lock.
func (s *Store) PractitionerDashboardCounts(ctx context.Context, practitionerID uuid.UUID, now time.Time) (storage.PractitionerDashboardCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts storage.PractitionerDashboardCounts
	seen := make(map[uuid.UUID]struct{})

	for _, a := range s.appointments {
		if a.PractitionerID != practitionerID {
			continue
		}
		if a.ScheduledAt.After(now) && (a.Status == "scheduled" || a.Status == "confirmed") {
			counts.UpcomingAppointments++
		}
		if a.Status == "completed" {
			counts.CompletedSessions++
			seen[a.PatientUserID] = struct{}{}
		}
	}
	counts.PatientsSeen = len(seen)

	return counts, nil
}

// AdminDashboardCounts tallies users by role under one read lock.
func (s *Store) AdminDashboardCounts(ctx context.Context) (storage.AdminDashboardCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var counts storage.AdminDashboardCounts
	for _, u := range s.users {
		counts.TotalUsers++
		switch u.Role {
		case "patient":
			counts.Patients++
		case "practitioner":
			counts.Practitioners++
		case "admin":
			counts.Admins++
		}
	}

	return counts, nil
}
