package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultAPIBase = "http://localhost:8080"
)

var (
	apiBase    string
	token      string
	client     = &http.Client{Timeout: 30 * time.Second}
	testDate   string
	reminderID string
	reportID   string
)

func main() {
	fmt.Println("=== AyurSutra E2E Smoke Test ===")
	fmt.Println()

	apiBase = getEnv("API_BASE_URL", defaultAPIBase)
	fmt.Printf("API Base: %s\n", apiBase)
	fmt.Println()

	testDate = time.Now().UTC().Format("2006-01-02")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Healthz", testHealthz},
		{"Register", testRegister},
		{"Update Patient Profile", testUpdateProfile},
		{"Upsert Health Log", testUpsertHealthLog},
		{"List Health Logs", testListHealthLogs},
		{"Create Symptom", testCreateSymptom},
		{"Agent Chat (diet plan)", testAgentChat},
		{"List Conversations", testListConversations},
		{"Create Reminder", testCreateReminder},
		{"List Reminders", testListReminders},
		{"Create Report (CSV)", testCreateReportCSV},
		{"Download Report", testDownloadReport},
		{"Dashboard", testDashboard},
		{"Delete Reminder", testDeleteReminder},
		{"Delete Report", testDeleteReport},
	}

	failed := false
	for i, step := range steps {
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			fmt.Printf("❌ FAILED\n")
			fmt.Printf("  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("✅ OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("❌ SMOKE TEST FAILED")
		os.Exit(1)
	}

	fmt.Println("✅ ALL SMOKE TESTS PASSED")
}

func testHealthz() error {
	resp, err := doRequest("GET", "/healthz", nil, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusOK)
}

func testRegister() error {
	email := fmt.Sprintf("smoke+%d@example.com", time.Now().UnixNano())
	payload := map[string]interface{}{
		"email":     email,
		"password":  "smoke-test-password",
		"full_name": "Smoke Tester",
	}

	resp, err := doRequest("POST", "/v1/auth/register", payload, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("empty access_token")
	}
	token = result.AccessToken
	return nil
}

func testUpdateProfile() error {
	payload := map[string]interface{}{
		"gender":         "female",
		"height_cm":      165,
		"weight_kg":      62,
		"activity_level": "moderately_active",
		"dietary_goal":   "maintenance",
	}

	resp, err := doRequest("PUT", "/v1/patients/me", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusOK)
}

func testUpsertHealthLog() error {
	payload := map[string]interface{}{
		"date":         testDate,
		"weight_kg":    62.0,
		"sleep_hours":  7.5,
		"water_litres": 2.0,
		"energy_level": 7,
		"dosha_vata":   55,
		"dosha_pitta":  25,
		"dosha_kapha":  20,
		"stress_level": "low",
		"mood":         "calm",
	}

	resp, err := doRequest("PUT", "/v1/health-logs", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusOK)
}

func testListHealthLogs() error {
	resp, err := doRequest("GET", "/v1/health-logs?from="+testDate+"&to="+testDate, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	var result struct {
		Logs []json.RawMessage `json:"logs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if len(result.Logs) == 0 {
		return fmt.Errorf("no logs returned for %s", testDate)
	}
	return nil
}

func testCreateSymptom() error {
	payload := map[string]interface{}{
		"name":     "headache",
		"severity": "moderate",
	}

	resp, err := doRequest("POST", "/v1/symptoms", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusCreated)
}

func testAgentChat() error {
	payload := map[string]interface{}{
		"message": "Create a diet plan for me, I am 30 years old",
	}

	resp, err := doRequest("POST", "/v1/agent/chat", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	var result struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if result.Type == "" {
		return fmt.Errorf("empty response type")
	}
	return nil
}

func testListConversations() error {
	resp, err := doRequest("GET", "/v1/agent/conversations", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	var result struct {
		Conversations []json.RawMessage `json:"conversations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if len(result.Conversations) == 0 {
		return fmt.Errorf("no conversations after chat")
	}
	return nil
}

func testCreateReminder() error {
	payload := map[string]interface{}{
		"title":     "Drink Water",
		"frequency": "daily",
		"times":     []string{"09:00", "15:00"},
	}

	resp, err := doRequest("POST", "/v1/reminders", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	reminderID = result.ID
	return nil
}

func testListReminders() error {
	resp, err := doRequest("GET", "/v1/reminders", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusOK)
}

func testCreateReportCSV() error {
	payload := map[string]interface{}{
		"from":   testDate,
		"to":     testDate,
		"format": "csv",
	}

	resp, err := doRequest("POST", "/v1/reports", payload, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if result.ID == "" {
		return fmt.Errorf("empty report id")
	}
	reportID = result.ID
	return nil
}

func testDownloadReport() error {
	resp, err := doRequest("GET", "/v1/reports/"+reportID+"/download", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return fmt.Errorf("empty report body")
	}
	return nil
}

func testDashboard() error {
	resp, err := doRequest("GET", "/v1/dashboard", nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusOK)
}

func testDeleteReminder() error {
	resp, err := doRequest("DELETE", "/v1/reminders/"+reminderID, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusNoContent)
}

func testDeleteReport() error {
	resp, err := doRequest("DELETE", "/v1/reports/"+reportID, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectStatus(resp, http.StatusNoContent)
}

// ---- helpers ----

func doRequest(method, path string, payload interface{}, authed bool) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, apiBase+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return client.Do(req)
}

func expectStatus(resp *http.Response, want int) error {
	if resp.StatusCode != want {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
