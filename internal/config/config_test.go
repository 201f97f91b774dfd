package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.JWTIssuer != "ayursutra" {
		t.Errorf("JWTIssuer = %q", cfg.JWTIssuer)
	}
	if cfg.JWTTTLMinutes != 10080 {
		t.Errorf("JWTTTLMinutes = %d", cfg.JWTTTLMinutes)
	}
	if cfg.AIMode != "template" {
		t.Errorf("AIMode = %q, want template", cfg.AIMode)
	}
	if cfg.BlobMode != BlobModeLocal {
		t.Errorf("BlobMode = %q, want local", cfg.BlobMode)
	}
	if !cfg.RemindersEnabled {
		t.Errorf("RemindersEnabled = false, want true")
	}
	if cfg.AppointmentDefaultMinutes != 30 {
		t.Errorf("AppointmentDefaultMinutes = %d", cfg.AppointmentDefaultMinutes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("AI_MODE", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REMINDERS_ENABLED", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()

	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.AIMode != "openai" {
		t.Errorf("AIMode = %q, want openai", cfg.AIMode)
	}
	if cfg.RemindersEnabled {
		t.Errorf("RemindersEnabled = true, want false")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestBlobModeFallsBackWithoutS3Creds(t *testing.T) {
	t.Setenv("BLOB_MODE", "s3")

	cfg := Load()
	if cfg.BlobMode != BlobModeLocal {
		t.Errorf("BlobMode = %q, want local fallback", cfg.BlobMode)
	}
}
