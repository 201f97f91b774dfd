package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func TestDashboardCounts(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	ctx := context.Background()
	patient := &storage.User{Email: "asha@example.com", Role: "patient", FullName: "Asha"}
	if err := store.CreateUser(ctx, patient); err != nil {
		t.Fatal(err)
	}
	userID := patient.ID

	practitioner := &storage.Practitioner{UserID: uuid.New(), Specialization: "General", Available: true}
	if err := store.CreatePractitioner(ctx, practitioner); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateAppointment(ctx, &storage.Appointment{
		PatientUserID: userID, PractitionerID: practitioner.ID,
		ScheduledAt: fixed.Add(24 * time.Hour), DurationMinutes: 30, Status: "confirmed",
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateNotification(ctx, &storage.Notification{
		UserID: userID, Kind: "system", Title: "Welcome",
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateReminder(ctx, &storage.Reminder{
		UserID: userID, Title: "Drink Water", Frequency: "daily",
		Times: []string{"09:00"}, IsActive: true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertHealthLog(ctx, &storage.HealthLog{
		UserID: userID, Date: fixed.AddDate(0, 0, -2).Format("2006-01-02"),
	}); err != nil {
		t.Fatal(err)
	}
	// Old log outside the week window.
	if err := store.UpsertHealthLog(ctx, &storage.HealthLog{
		UserID: userID, Date: fixed.AddDate(0, 0, -30).Format("2006-01-02"),
	}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Response{
		UpcomingAppointments: 1,
		UnreadNotifications:  1,
		ActiveReminders:      1,
		HealthLogsThisWeek:   1,
	}
	if resp != want {
		t.Errorf("counts = %+v, want %+v", resp, want)
	}
}

func TestDashboardPractitioner(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	ctx := context.Background()
	user := &storage.User{Email: "vaidya@example.com", Role: "practitioner", FullName: "Dr. Rao"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}
	practitioner := &storage.Practitioner{UserID: user.ID, Specialization: "Panchakarma", Available: true}
	if err := store.CreatePractitioner(ctx, practitioner); err != nil {
		t.Fatal(err)
	}

	patientA := uuid.New()
	patientB := uuid.New()
	appointments := []*storage.Appointment{
		{PatientUserID: patientA, PractitionerID: practitioner.ID,
			ScheduledAt: fixed.Add(48 * time.Hour), DurationMinutes: 30, Status: "confirmed"},
		{PatientUserID: patientA, PractitionerID: practitioner.ID,
			ScheduledAt: fixed.Add(-48 * time.Hour), DurationMinutes: 30, Status: "completed"},
		{PatientUserID: patientA, PractitionerID: practitioner.ID,
			ScheduledAt: fixed.Add(-96 * time.Hour), DurationMinutes: 30, Status: "completed"},
		{PatientUserID: patientB, PractitionerID: practitioner.ID,
			ScheduledAt: fixed.Add(-24 * time.Hour), DurationMinutes: 30, Status: "completed"},
		{PatientUserID: patientB, PractitionerID: practitioner.ID,
			ScheduledAt: fixed.Add(-12 * time.Hour), DurationMinutes: 30, Status: "cancelled"},
	}
	for _, a := range appointments {
		if err := store.CreateAppointment(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), user.ID))
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp PractitionerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := PractitionerResponse{
		UpcomingAppointments: 1,
		CompletedSessions:    3,
		PatientsSeen:         2,
	}
	if resp != want {
		t.Errorf("counts = %+v, want %+v", resp, want)
	}
}

func TestDashboardAdmin(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)

	ctx := context.Background()
	users := []*storage.User{
		{Email: "admin@example.com", Role: "admin", FullName: "Admin"},
		{Email: "p1@example.com", Role: "patient", FullName: "Patient One"},
		{Email: "p2@example.com", Role: "patient", FullName: "Patient Two"},
		{Email: "dr@example.com", Role: "practitioner", FullName: "Dr. Iyer"},
	}
	for _, u := range users {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), users[0].ID))
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp AdminResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := AdminResponse{
		TotalUsers:    4,
		Patients:      2,
		Practitioners: 1,
		Admins:        1,
	}
	if resp != want {
		t.Errorf("counts = %+v, want %+v", resp, want)
	}
}
