package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/config"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

type fixture struct {
	handler          *Handler
	store            *memory.Store
	practitionerID   uuid.UUID
	practitionerUser uuid.UUID
	patientUser      uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	practitionerUser := uuid.New()
	practitioner := &storage.Practitioner{
		UserID: practitionerUser, Specialization: "General", Available: true,
	}
	if err := store.CreatePractitioner(ctx, practitioner); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{AppointmentDefaultMinutes: 30}
	return &fixture{
		handler:          NewHandler(NewService(cfg, store)),
		store:            store,
		practitionerID:   practitioner.ID,
		practitionerUser: practitionerUser,
		patientUser:      uuid.New(),
	}
}

func (f *fixture) create(t *testing.T, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	f.handler.HandleCreate(rec, req)
	return rec
}

func futureSlot() string {
	return time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	rec := f.create(t, f.patientUser, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != StatusScheduled {
		t.Errorf("status = %q, want scheduled", resp.Status)
	}
	if resp.DurationMinutes != 30 {
		t.Errorf("duration = %d, want default 30", resp.DurationMinutes)
	}
}

func TestCreateAppointmentConflict(t *testing.T) {
	f := newFixture(t)
	slot := futureSlot()

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, slot)
	if rec := f.create(t, f.patientUser, body); rec.Code != http.StatusCreated {
		t.Fatalf("first booking failed: %d", rec.Code)
	}
	rec := f.create(t, uuid.New(), body)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCreateAppointmentPastSlot(t *testing.T) {
	f := newFixture(t)

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, past)
	rec := f.create(t, f.patientUser, body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateAppointmentUnknownPractitioner(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, uuid.New(), futureSlot())
	rec := f.create(t, f.patientUser, body)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func (f *fixture) updateStatus(t *testing.T, userID, appointmentID uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/"+appointmentID.String()+"/status",
		bytes.NewBufferString(body))
	req.SetPathValue("id", appointmentID.String())
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	f.handler.HandleUpdateStatus(rec, req)
	return rec
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	rec := f.create(t, f.patientUser, body)
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// scheduled -> completed is not allowed.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"completed"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("scheduled->completed status = %d, want 409", rec.Code)
	}

	// scheduled -> in_progress skips confirmation.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"in_progress"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("scheduled->in_progress status = %d, want 409", rec.Code)
	}

	// scheduled -> confirmed by the practitioner.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// confirmed -> in_progress once the session starts.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"in_progress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("in_progress status = %d", rec.Code)
	}

	// in_progress -> completed.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d", rec.Code)
	}

	// completed is final.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"cancelled"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("completed->cancelled status = %d, want 409", rec.Code)
	}
}

func TestStatusNoShow(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	rec := f.create(t, f.patientUser, body)
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// no_show requires a confirmed appointment.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"no_show"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("scheduled->no_show status = %d, want 409", rec.Code)
	}

	f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"confirmed"}`)
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"no_show"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirmed->no_show status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// no_show is final.
	rec = f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"confirmed"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("no_show->confirmed status = %d, want 409", rec.Code)
	}
}

func TestStatusUpdateForbiddenForStranger(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	rec := f.create(t, f.patientUser, body)
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = f.updateStatus(t, uuid.New(), created.ID, `{"status":"cancelled"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestStatusChangeNotifiesOtherParty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	rec := f.create(t, f.patientUser, body)
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Practitioner confirms: patient gets notified.
	f.updateStatus(t, f.practitionerUser, created.ID, `{"status":"confirmed"}`)
	count, err := f.store.UnreadCount(ctx, f.patientUser)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("patient unread = %d, want 1", count)
	}

	// Patient cancels: practitioner gets notified.
	f.updateStatus(t, f.patientUser, created.ID, `{"status":"cancelled"}`)
	count, err = f.store.UnreadCount(ctx, f.practitionerUser)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("practitioner unread = %d, want 1", count)
	}
}

func TestListSeparatesRoles(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"practitioner_id":"%s","scheduled_at":"%s"}`, f.practitionerID, futureSlot())
	f.create(t, f.patientUser, body)

	list := func(userID uuid.UUID) ListResponse {
		req := httptest.NewRequest(http.MethodGet, "/v1/appointments", nil)
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()
		f.handler.HandleList(rec, req)
		var resp ListResponse
		json.Unmarshal(rec.Body.Bytes(), &resp)
		return resp
	}

	if got := list(f.patientUser); len(got.Appointments) != 1 {
		t.Errorf("patient sees %d appointments, want 1", len(got.Appointments))
	}
	if got := list(f.practitionerUser); len(got.Appointments) != 1 {
		t.Errorf("practitioner sees %d appointments, want 1", len(got.Appointments))
	}
	if got := list(uuid.New()); len(got.Appointments) != 0 {
		t.Errorf("stranger sees %d appointments, want 0", len(got.Appointments))
	}
}
