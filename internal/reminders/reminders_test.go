package reminders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func doJSON(h http.HandlerFunc, method, target string, userID uuid.UUID, pathID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if pathID != "" {
		req.SetPathValue("id", pathID)
	}
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestReminderCRUD(t *testing.T) {
	h := NewHandler(NewService(memory.New()))
	userID := uuid.New()

	rec := doJSON(h.HandleCreate, http.MethodPost, "/v1/reminders", userID, "",
		`{"title":"Evening walk","message":"Time for a walk","times":["18:30"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Frequency != FrequencyDaily {
		t.Errorf("frequency = %q, want default daily", created.Frequency)
	}
	if !created.IsActive {
		t.Error("new reminder should be active")
	}

	// Deactivate.
	rec = doJSON(h.HandleUpdate, http.MethodPatch, "/v1/reminders/"+created.ID.String(),
		userID, created.ID.String(), `{"is_active":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}
	var updated Response
	json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.IsActive {
		t.Error("reminder still active after update")
	}
	if updated.Title != "Evening walk" {
		t.Errorf("title = %q, unchanged fields must survive", updated.Title)
	}

	// Another user cannot touch it.
	rec = doJSON(h.HandleDelete, http.MethodDelete, "/v1/reminders/"+created.ID.String(),
		uuid.New(), created.ID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete status = %d, want 404", rec.Code)
	}

	rec = doJSON(h.HandleDelete, http.MethodDelete, "/v1/reminders/"+created.ID.String(),
		userID, created.ID.String(), "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}

	rec = doJSON(h.HandleList, http.MethodGet, "/v1/reminders", userID, "", "")
	var list ListResponse
	json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list.Reminders) != 0 {
		t.Errorf("reminders = %d after delete, want 0", len(list.Reminders))
	}
}

func TestReminderValidation(t *testing.T) {
	h := NewHandler(NewService(memory.New()))
	userID := uuid.New()

	cases := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"  "}`},
		{"bad frequency", `{"title":"x","frequency":"hourly"}`},
		{"bad time", `{"title":"x","times":["25:99"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(h.HandleCreate, http.MethodPost, "/v1/reminders", userID, "", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestDispatchDue(t *testing.T) {
	store := memory.New()
	svc := NewService(store)
	d := NewDispatcher(store, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Create(ctx, userID, CreateRequest{
		Title: "Drink Water", Message: "Time to hydrate!", Times: []string{"09:00", "13:00"},
	}); err != nil {
		t.Fatal(err)
	}

	at := func(hhmm string) time.Time {
		ts, err := time.Parse("2006-01-02 15:04", "2026-08-28 "+hhmm)
		if err != nil {
			t.Fatal(err)
		}
		return ts.UTC()
	}

	// Off-schedule minute fires nothing.
	if err := d.DispatchDue(ctx, at("08:59")); err != nil {
		t.Fatal(err)
	}
	count, _ := store.UnreadCount(ctx, userID)
	if count != 0 {
		t.Fatalf("unread = %d before due time, want 0", count)
	}

	// Due minute fires once.
	if err := d.DispatchDue(ctx, at("09:00")); err != nil {
		t.Fatal(err)
	}
	count, _ = store.UnreadCount(ctx, userID)
	if count != 1 {
		t.Fatalf("unread = %d at due time, want 1", count)
	}

	// A second tick in the same minute does not duplicate.
	if err := d.DispatchDue(ctx, at("09:00").Add(20*time.Second)); err != nil {
		t.Fatal(err)
	}
	count, _ = store.UnreadCount(ctx, userID)
	if count != 1 {
		t.Fatalf("unread = %d after repeat tick, want 1", count)
	}

	// The next slot fires again.
	if err := d.DispatchDue(ctx, at("13:00")); err != nil {
		t.Fatal(err)
	}
	count, _ = store.UnreadCount(ctx, userID)
	if count != 2 {
		t.Fatalf("unread = %d after second slot, want 2", count)
	}

	notifications, err := store.ListNotifications(ctx, userID, false, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if notifications[0].Kind != "reminder" || notifications[0].Title != "Drink Water" {
		t.Errorf("notification = %+v", notifications[0])
	}
}

func TestDispatchSkipsInactiveAndWrongWeekday(t *testing.T) {
	store := memory.New()
	// Pin creation time to a Friday so the weekly check is deterministic.
	friday := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time { return friday })

	svc := NewService(store)
	d := NewDispatcher(store, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	weekly, err := svc.Create(ctx, userID, CreateRequest{
		Title: "Weekly review", Frequency: FrequencyWeekly, Times: []string{"10:00"},
	})
	if err != nil {
		t.Fatal(err)
	}
	inactive, err := svc.Create(ctx, userID, CreateRequest{Title: "Paused", Times: []string{"10:00"}})
	if err != nil {
		t.Fatal(err)
	}
	off := false
	if _, err := svc.Update(ctx, userID, inactive.ID, UpdateRequest{IsActive: &off}); err != nil {
		t.Fatal(err)
	}

	// Saturday 10:00 is the right minute but the wrong weekday.
	saturday := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	if err := d.DispatchDue(ctx, saturday); err != nil {
		t.Fatal(err)
	}
	count, _ := store.UnreadCount(ctx, userID)
	if count != 0 {
		t.Fatalf("unread = %d, want 0", count)
	}

	// The following Friday fires the weekly reminder only.
	nextFriday := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)
	if err := d.DispatchDue(ctx, nextFriday); err != nil {
		t.Fatal(err)
	}
	count, _ = store.UnreadCount(ctx, userID)
	if count != 1 {
		t.Fatalf("unread = %d, want 1", count)
	}

	fired, err := store.GetReminder(ctx, weekly.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fired.LastFiredAt == nil || !fired.LastFiredAt.Equal(nextFriday) {
		t.Errorf("last fired = %v, want %v", fired.LastFiredAt, nextFriday)
	}
}
