package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/google/uuid"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &storage.User{Email: "Asha@Example.com", PasswordHash: "x", Role: "patient"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Email != "asha@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}

	dup := &storage.User{Email: "asha@example.com", PasswordHash: "y", Role: "patient"}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, storage.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}

	got, err := s.GetUserByEmail(ctx, "ASHA@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("lookup returned wrong user")
	}
}

func TestAppointmentWindowOverlap(t *testing.T) {
	s := New()
	ctx := context.Background()
	practitionerID := uuid.New()

	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	booked := &storage.Appointment{
		PatientUserID:   uuid.New(),
		PractitionerID:  practitionerID,
		ScheduledAt:     base,
		DurationMinutes: 30,
		Status:          "confirmed",
	}
	if err := s.CreateAppointment(ctx, booked); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	cancelled := &storage.Appointment{
		PatientUserID:   uuid.New(),
		PractitionerID:  practitionerID,
		ScheduledAt:     base,
		DurationMinutes: 30,
		Status:          "cancelled",
	}
	if err := s.CreateAppointment(ctx, cancelled); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"exact overlap", base, base.Add(30 * time.Minute), 1},
		{"partial overlap", base.Add(15 * time.Minute), base.Add(45 * time.Minute), 1},
		{"adjacent after", base.Add(30 * time.Minute), base.Add(60 * time.Minute), 0},
		{"adjacent before", base.Add(-30 * time.Minute), base, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListAppointmentsInWindow(ctx, practitionerID, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ListAppointmentsInWindow: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d appointments, want %d", len(got), tt.want)
			}
		})
	}
}

func TestUpsertHealthLogReplacesSameDate(t *testing.T) {
	s := New()
	ctx := context.Background()
	userID := uuid.New()

	weight := 71.5
	first := &storage.HealthLog{UserID: userID, Date: "2026-03-01", WeightKg: &weight}
	if err := s.UpsertHealthLog(ctx, first); err != nil {
		t.Fatalf("UpsertHealthLog: %v", err)
	}

	updated := 70.9
	second := &storage.HealthLog{UserID: userID, Date: "2026-03-01", WeightKg: &updated}
	if err := s.UpsertHealthLog(ctx, second); err != nil {
		t.Fatalf("UpsertHealthLog: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a second row")
	}

	logs, err := s.ListHealthLogs(ctx, userID, "", "")
	if err != nil {
		t.Fatalf("ListHealthLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if *logs[0].WeightKg != 70.9 {
		t.Errorf("weight = %v, want 70.9", *logs[0].WeightKg)
	}
}

func TestMarkReadChecksOwnership(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	n := &storage.Notification{UserID: owner, Kind: "reminder", Title: "Drink Water"}
	if err := s.CreateNotification(ctx, n); err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}

	updated, err := s.MarkRead(ctx, other, []uuid.UUID{n.ID})
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if updated != 0 {
		t.Errorf("foreign user marked %d notifications read", updated)
	}

	updated, err = s.MarkRead(ctx, owner, []uuid.UUID{n.ID})
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if updated != 1 {
		t.Errorf("owner marked %d notifications read, want 1", updated)
	}

	count, err := s.UnreadCount(ctx, owner)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 0 {
		t.Errorf("unread count = %d, want 0", count)
	}
}

func TestDashboardCounts(t *testing.T) {
	s := New()
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s.CreateAppointment(ctx, &storage.Appointment{
		PatientUserID: userID, PractitionerID: uuid.New(),
		ScheduledAt: now.Add(24 * time.Hour), DurationMinutes: 30, Status: "confirmed",
	})
	s.CreateAppointment(ctx, &storage.Appointment{
		PatientUserID: userID, PractitionerID: uuid.New(),
		ScheduledAt: now.Add(-24 * time.Hour), DurationMinutes: 30, Status: "completed",
	})
	s.CreateReminder(ctx, &storage.Reminder{UserID: userID, Title: "Drink Water", IsActive: true})
	s.CreateNotification(ctx, &storage.Notification{UserID: userID, Kind: "system", Title: "Welcome"})
	s.UpsertHealthLog(ctx, &storage.HealthLog{UserID: userID, Date: "2026-03-09"})
	s.UpsertHealthLog(ctx, &storage.HealthLog{UserID: userID, Date: "2026-01-01"})

	counts, err := s.DashboardCounts(ctx, userID, now)
	if err != nil {
		t.Fatalf("DashboardCounts: %v", err)
	}
	if counts.UpcomingAppointments != 1 {
		t.Errorf("upcoming = %d, want 1", counts.UpcomingAppointments)
	}
	if counts.ActiveReminders != 1 {
		t.Errorf("reminders = %d, want 1", counts.ActiveReminders)
	}
	if counts.UnreadNotifications != 1 {
		t.Errorf("unread = %d, want 1", counts.UnreadNotifications)
	}
	if counts.HealthLogsThisWeek != 1 {
		t.Errorf("logs this week = %d, want 1", counts.HealthLogsThisWeek)
	}
}
