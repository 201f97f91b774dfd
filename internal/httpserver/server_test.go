package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursutra/backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                       "local",
		Port:                      8080,
		JWTSecret:                 "test_secret",
		JWTIssuer:                 "ayursutra",
		JWTTTLMinutes:             60,
		AIMode:                    "template",
		BlobMode:                  config.BlobModeLocal,
		AppointmentDefaultMinutes: 30,
		ReportsMaxRangeDays:       92,
	}
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	srv, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	return srv.Handler()
}

func TestHealthzIsPublic(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"ok"`)) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRegisterLoginAndAuthorizedRequest(t *testing.T) {
	handler := newTestServer(t)

	register := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
		bytes.NewBufferString(`{"email":"meera@example.com","password":"strongpass1","full_name":"Meera Iyer"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, register)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
	}

	login := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		bytes.NewBufferString(`{"email":"meera@example.com","password":"strongpass1"}`))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, login)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("no access token issued")
	}

	me := httptest.NewRequest(http.MethodGet, "/v1/patients/me", nil)
	me.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, me)
	if rec.Code != http.StatusOK {
		t.Fatalf("patients/me status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRouteWithToken(t *testing.T) {
	handler := newTestServer(t)

	register := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
		bytes.NewBufferString(`{"email":"arjun@example.com","password":"strongpass1","full_name":"Arjun Nair"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, register)
	var token struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(rec.Body.Bytes(), &token)

	req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
