package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(auth.WithUserID(r.Context(), userID))
}

func TestGetMeReturnsEmptyProfile(t *testing.T) {
	h := NewHandler(NewService(memory.New()))
	userID := uuid.New()

	req := withUser(httptest.NewRequest(http.MethodGet, "/v1/patients/me", nil), userID)
	rec := httptest.NewRecorder()
	h.HandleGetMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp PatientProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UserID != userID {
		t.Errorf("user_id = %s, want %s", resp.UserID, userID)
	}
	if resp.Restrictions == nil {
		t.Errorf("restrictions should be an empty array, not null")
	}
}

func TestUpdateMeRoundTrip(t *testing.T) {
	h := NewHandler(NewService(memory.New()))
	userID := uuid.New()

	body := `{
		"gender": "Female",
		"height_cm": 165,
		"weight_kg": 58,
		"activity_level": "lightly active",
		"dietary_goal": "maintenance",
		"restrictions": ["vegetarian"],
		"vata_score": 2, "pitta_score": 5, "kapha_score": 1
	}`
	req := withUser(httptest.NewRequest(http.MethodPut, "/v1/patients/me", bytes.NewBufferString(body)), userID)
	rec := httptest.NewRecorder()
	h.HandleUpdateMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp PatientProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Gender != "female" {
		t.Errorf("gender = %q, want normalized female", resp.Gender)
	}
	if resp.DominantDosha != "pitta" {
		t.Errorf("dominant dosha = %q, want pitta", resp.DominantDosha)
	}

	// Second PUT updates the same row.
	req = withUser(httptest.NewRequest(http.MethodPut, "/v1/patients/me",
		bytes.NewBufferString(`{"gender":"female","weight_kg":57}`)), userID)
	rec = httptest.NewRecorder()
	h.HandleUpdateMe(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("second put status = %d", rec.Code)
	}
}

func TestUpdateMeValidation(t *testing.T) {
	h := NewHandler(NewService(memory.New()))
	userID := uuid.New()

	req := withUser(httptest.NewRequest(http.MethodPut, "/v1/patients/me",
		bytes.NewBufferString(`{"days_available": 9}`)), userID)
	rec := httptest.NewRecorder()
	h.HandleUpdateMe(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListPractitionersFilters(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	user := &storage.User{Email: "dr@example.com", PasswordHash: "x", Role: "practitioner", FullName: "Dr. Rao"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}
	store.CreatePractitioner(ctx, &storage.Practitioner{
		UserID: user.ID, Specialization: "Panchakarma Specialist", Available: true,
	})
	store.CreatePractitioner(ctx, &storage.Practitioner{
		UserID: uuid.New(), Specialization: "General", Available: true,
	})
	store.CreatePractitioner(ctx, &storage.Practitioner{
		UserID: uuid.New(), Specialization: "Specialist", Available: false,
	})

	h := NewHandler(NewService(store))

	req := httptest.NewRequest(http.MethodGet, "/v1/practitioners?specialization=specialist", nil)
	rec := httptest.NewRecorder()
	h.HandleListPractitioners(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp PractitionersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Practitioners) != 1 {
		t.Fatalf("got %d practitioners, want 1 (unavailable filtered out)", len(resp.Practitioners))
	}
	if resp.Practitioners[0].FullName != "Dr. Rao" {
		t.Errorf("full name = %q", resp.Practitioners[0].FullName)
	}
}

func TestUpsertPractitionerRequiresSpecialization(t *testing.T) {
	h := NewHandler(NewService(memory.New()))

	req := withUser(httptest.NewRequest(http.MethodPut, "/v1/practitioners/me",
		bytes.NewBufferString(`{"bio":"hi"}`)), uuid.New())
	rec := httptest.NewRecorder()
	h.HandleUpsertPractitioner(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
