package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ayursutra/backend/internal/config"
	"github.com/ayursutra/backend/internal/dbmigrate"
	"github.com/ayursutra/backend/internal/httpserver"
	"github.com/ayursutra/backend/internal/reminders"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)

	if cfg.RunMigrationsOnStartup {
		if cfg.DatabaseURL == "" {
			log.Fatal("FATAL startup migrations: RUN_MIGRATIONS_ON_STARTUP=1 but DATABASE_URL is not set")
		}
		log.Printf("startup migrations: command=up")
		if err := dbmigrate.Run("up", cfg.DatabaseURL, dbmigrate.DefaultMigrationsDir); err != nil {
			log.Fatalf("FATAL startup migrations failed: %v", err)
		}
		log.Printf("startup migrations: completed")
	}

	validateProductionConfig(cfg)

	server, err := httpserver.New(cfg)
	if err != nil {
		log.Fatalf("FATAL server init: %v", err)
	}
	defer server.Close()

	if cfg.RemindersEnabled {
		dispatcher := reminders.NewDispatcher(server.Store(), time.Duration(cfg.RemindersIntervalSeconds)*time.Second)
		if err := dispatcher.Start(); err != nil {
			log.Fatalf("FATAL reminder dispatcher: %v", err)
		}
		defer dispatcher.Stop()
	}

	log.Fatal(server.Start())
}

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed, only masked indicators ("set" / "not set").
func printStartupBanner(cfg *config.Config) {
	log.Println("========== AyurSutra API ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  port             = %d", cfg.Port)

	// ---- Database ----
	log.Println("---- database ----")
	log.Printf("  database_url     = %s", describeDBURL(cfg.DatabaseURL))
	log.Printf("  migrations_on_startup = %t", cfg.RunMigrationsOnStartup)

	// ---- Auth ----
	log.Println("---- auth ----")
	log.Printf("  jwt_secret       = %s", secretStatus(cfg.JWTSecret, "change_me"))
	log.Printf("  jwt_issuer       = %s", cfg.JWTIssuer)
	log.Printf("  jwt_ttl_minutes  = %d", cfg.JWTTTLMinutes)

	// ---- Blob / S3 ----
	log.Println("---- blob ----")
	log.Printf("  blob_mode        = %s", cfg.BlobMode)
	if cfg.BlobMode != config.BlobModeLocal {
		log.Printf("  s3: %s", cfg.S3.DiagnosticsSummary())
	}

	// ---- Reminders ----
	log.Println("---- reminders ----")
	log.Printf("  enabled          = %t", cfg.RemindersEnabled)
	if cfg.RemindersEnabled {
		log.Printf("  interval         = %ds", cfg.RemindersIntervalSeconds)
	}

	// ---- AI ----
	log.Println("---- ai ----")
	log.Printf("  ai_mode          = %s", cfg.AIMode)
	if cfg.AIMode == "openai" {
		log.Printf("  openai_model     = %s", cfg.OpenAIModel)
		log.Printf("  openai_api_key   = %s", setOrNot(cfg.OpenAIAPIKey))
	}

	log.Println("====================================")
}

// validateProductionConfig performs fatal checks that only matter in non-local envs.
func validateProductionConfig(cfg *config.Config) {
	isProd := cfg.Env == "production" || cfg.Env == "staging"

	if cfg.BlobMode == config.BlobModeS3 {
		if missing := cfg.S3.MissingRequired(); len(missing) > 0 {
			log.Fatalf("FATAL blob: BLOB_MODE is 's3' but S3 config is incomplete, missing: %s", strings.Join(missing, ", "))
		}
	}

	// JWT_SECRET must not be default in production
	if isProd && cfg.JWTSecret == "change_me" {
		log.Fatalf("FATAL auth: JWT_SECRET must not be 'change_me' in %s", cfg.Env)
	}

	// DATABASE_URL must be set in production
	if isProd && cfg.DatabaseURL == "" {
		log.Fatalf("FATAL db: no DATABASE_URL configured in %s", cfg.Env)
	}
}

// ---- helpers (no secrets) ----

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func secretStatus(v, insecureDefault string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "not set"
	}
	if v == insecureDefault {
		return fmt.Sprintf("set (DEFAULT, insecure '%s')", insecureDefault)
	}
	return "set (custom)"
}

func describeDBURL(url string) string {
	if url == "" {
		return "not set (will use in-memory storage)"
	}
	return "set"
}
