package healthlogs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func newTestHandler() *Handler {
	return NewHandler(NewService(memory.New()))
}

func doJSON(h http.HandlerFunc, method, target string, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestUpsertLogReplacesSameDay(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	rec := doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID,
		`{"date":"2026-08-20","weight_kg":81.5,"mood":"tired"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Second write for the same day updates the same row.
	rec = doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID,
		`{"date":"2026-08-20","weight_kg":81.0,"sleep_hours":7.5,"mood":"rested"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = doJSON(h.HandleListLogs, http.MethodGet, "/v1/health-logs", userID, "")
	var resp LogsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Logs) != 1 {
		t.Fatalf("logs = %d, want 1", len(resp.Logs))
	}
	log := resp.Logs[0]
	if log.WeightKg == nil || *log.WeightKg != 81.0 {
		t.Errorf("weight = %v, want 81.0", log.WeightKg)
	}
	if log.Mood != "rested" {
		t.Errorf("mood = %q, want rested", log.Mood)
	}
}

func TestUpsertLogValidation(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	cases := []struct {
		name string
		body string
	}{
		{"bad date", `{"date":"20-08-2026"}`},
		{"negative weight", `{"weight_kg":-2}`},
		{"too much sleep", `{"sleep_hours":30}`},
		{"energy out of range", `{"energy_level":11}`},
		{"dosha above 100", `{"dosha_vata":120}`},
		{"negative dosha", `{"dosha_kapha":-1}`},
		{"unknown stress level", `{"stress_level":"panicked"}`},
		{"malformed blood pressure", `{"blood_pressure":"high"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestListLogsRange(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	for _, date := range []string{"2026-08-10", "2026-08-15", "2026-08-20"} {
		rec := doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID,
			`{"date":"`+date+`","mood":"ok"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("seed %s: status = %d", date, rec.Code)
		}
	}

	rec := doJSON(h.HandleListLogs, http.MethodGet,
		"/v1/health-logs?from=2026-08-12&to=2026-08-18", userID, "")
	var resp LogsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Logs) != 1 || resp.Logs[0].Date != "2026-08-15" {
		t.Errorf("logs = %+v, want only 2026-08-15", resp.Logs)
	}

	rec = doJSON(h.HandleListLogs, http.MethodGet,
		"/v1/health-logs?from=2026-08-20&to=2026-08-10", userID, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted range status = %d, want 400", rec.Code)
	}
}

func TestUpsertLogAyurvedicMetrics(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	rec := doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID,
		`{"date":"2026-08-20","dosha_vata":60,"dosha_pitta":25,"dosha_kapha":15,"stress_level":"Low","blood_pressure":"118/76"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var log LogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &log); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if log.DoshaVata == nil || *log.DoshaVata != 60 {
		t.Errorf("dosha_vata = %v, want 60", log.DoshaVata)
	}
	if log.DoshaPitta == nil || *log.DoshaPitta != 25 {
		t.Errorf("dosha_pitta = %v, want 25", log.DoshaPitta)
	}
	if log.DoshaKapha == nil || *log.DoshaKapha != 15 {
		t.Errorf("dosha_kapha = %v, want 15", log.DoshaKapha)
	}
	if log.StressLevel != "low" {
		t.Errorf("stress_level = %q, want lowercased low", log.StressLevel)
	}
	if log.BloodPressure != "118/76" {
		t.Errorf("blood_pressure = %q, want 118/76", log.BloodPressure)
	}
}

func TestLogsAreScopedPerUser(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	doJSON(h.HandleUpsertLog, http.MethodPut, "/v1/health-logs", userID, `{"date":"2026-08-20"}`)

	rec := doJSON(h.HandleListLogs, http.MethodGet, "/v1/health-logs", uuid.New(), "")
	var resp LogsResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Logs) != 0 {
		t.Errorf("other user sees %d logs, want 0", len(resp.Logs))
	}
}

func TestSymptoms(t *testing.T) {
	h := newTestHandler()
	userID := uuid.New()

	rec := doJSON(h.HandleCreateSymptom, http.MethodPost, "/v1/symptoms", userID,
		`{"name":"Headache","severity":"High","duration_days":3,"notes":"after lunch"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created SymptomResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Name != "headache" {
		t.Errorf("name = %q, want lowercased headache", created.Name)
	}
	if created.Severity != SeverityHigh {
		t.Errorf("severity = %q, want lowercased high", created.Severity)
	}
	if created.DurationDays == nil || *created.DurationDays != 3 {
		t.Errorf("duration_days = %v, want 3", created.DurationDays)
	}

	// Severity defaults to moderate when omitted.
	rec = doJSON(h.HandleCreateSymptom, http.MethodPost, "/v1/symptoms", userID, `{"name":"nausea"}`)
	var second SymptomResponse
	json.Unmarshal(rec.Body.Bytes(), &second)
	if second.Severity != SeverityModerate {
		t.Errorf("severity = %q, want default moderate", second.Severity)
	}

	rec = doJSON(h.HandleCreateSymptom, http.MethodPost, "/v1/symptoms", userID, `{"name":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty name status = %d, want 400", rec.Code)
	}

	rec = doJSON(h.HandleCreateSymptom, http.MethodPost, "/v1/symptoms", userID,
		`{"name":"fatigue","severity":"extreme"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown severity status = %d, want 400", rec.Code)
	}

	rec = doJSON(h.HandleCreateSymptom, http.MethodPost, "/v1/symptoms", userID,
		`{"name":"fatigue","duration_days":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero duration status = %d, want 400", rec.Code)
	}

	rec = doJSON(h.HandleListSymptoms, http.MethodGet, "/v1/symptoms", userID, "")
	var resp SymptomsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Symptoms) != 2 {
		t.Errorf("symptoms = %d, want 2", len(resp.Symptoms))
	}
}
