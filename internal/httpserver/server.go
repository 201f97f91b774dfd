package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/ayursutra/backend/internal/ai"
	"github.com/ayursutra/backend/internal/appointments"
	"github.com/ayursutra/backend/internal/assistant"
	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/blob"
	"github.com/ayursutra/backend/internal/config"
	"github.com/ayursutra/backend/internal/dashboard"
	"github.com/ayursutra/backend/internal/dietplan"
	"github.com/ayursutra/backend/internal/healthlogs"
	"github.com/ayursutra/backend/internal/knowledge"
	"github.com/ayursutra/backend/internal/notifications"
	"github.com/ayursutra/backend/internal/reminders"
	"github.com/ayursutra/backend/internal/reports"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/ayursutra/backend/internal/storage/postgres"
	"github.com/ayursutra/backend/internal/uploads"
	"github.com/ayursutra/backend/internal/users"
	"github.com/ayursutra/backend/internal/workoutplan"
)

// Server wires every feature handler into one ServeMux behind the
// CORS, rate limit and auth middleware chain.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	store          storage.Store
	authMiddleware *auth.Middleware
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStore()
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Store exposes the storage backend so the caller can share it with the
// reminder dispatcher.
func (s *Server) Store() storage.Store {
	return s.store
}

// initStore picks postgres when DATABASE_URL is set, with a fallback to
// the in-memory backend so local development works without a database.
func (s *Server) initStore() {
	if s.config.DatabaseURL == "" {
		log.Println("using in-memory storage")
		s.store = memory.New()
		return
	}

	log.Println("connecting to PostgreSQL...")
	pgStore, err := postgres.New(context.Background(), s.config.DatabaseURL)
	if err != nil {
		log.Printf("WARNING: PostgreSQL connection failed: %v", err)
		log.Println("falling back to in-memory storage")
		s.store = memory.New()
		return
	}

	log.Println("PostgreSQL connected")
	s.store = pgStore
}

func (s *Server) routes() error {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	// Auth
	authService := auth.NewService(s.config, s.store)
	authHandler := auth.NewHandlers(authService, s.store)
	s.authMiddleware = auth.NewMiddleware(authService)

	s.mux.HandleFunc("POST /v1/auth/register", authHandler.HandleRegister)
	s.mux.HandleFunc("POST /v1/auth/login", authHandler.HandleLogin)
	s.mux.HandleFunc("GET /v1/auth/me", authHandler.HandleMe)

	// Profiles and practitioners
	usersHandler := users.NewHandler(users.NewService(s.store))
	s.mux.HandleFunc("GET /v1/patients/me", usersHandler.HandleGetMe)
	s.mux.HandleFunc("PUT /v1/patients/me", usersHandler.HandleUpdateMe)
	s.mux.HandleFunc("GET /v1/practitioners", usersHandler.HandleListPractitioners)
	s.mux.HandleFunc("PUT /v1/practitioners/me", usersHandler.HandleUpsertPractitioner)

	// Appointments
	appointmentsHandler := appointments.NewHandler(appointments.NewService(s.config, s.store))
	s.mux.HandleFunc("POST /v1/appointments", appointmentsHandler.HandleCreate)
	s.mux.HandleFunc("GET /v1/appointments", appointmentsHandler.HandleList)
	s.mux.HandleFunc("PATCH /v1/appointments/{id}/status", appointmentsHandler.HandleUpdateStatus)

	// Health logs and symptoms
	healthHandler := healthlogs.NewHandler(healthlogs.NewService(s.store))
	s.mux.HandleFunc("PUT /v1/health-logs", healthHandler.HandleUpsertLog)
	s.mux.HandleFunc("GET /v1/health-logs", healthHandler.HandleListLogs)
	s.mux.HandleFunc("POST /v1/symptoms", healthHandler.HandleCreateSymptom)
	s.mux.HandleFunc("GET /v1/symptoms", healthHandler.HandleListSymptoms)

	// Agent
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	orchestrator := assistant.NewService(
		assistant.NewClassifier(),
		dietplan.NewEngine(knowledge.Foods, rng),
		workoutplan.NewEngine(knowledge.Exercises, rng),
		ai.NewGenerator(s.config),
	)
	agentHandler := assistant.NewHandler(assistant.NewChatService(orchestrator, s.store))
	s.mux.HandleFunc("POST /v1/agent/chat", agentHandler.HandleChat)
	s.mux.HandleFunc("POST /v1/agent/actions/confirm", agentHandler.HandleConfirmAction)
	s.mux.HandleFunc("GET /v1/agent/conversations", agentHandler.HandleListConversations)
	s.mux.HandleFunc("GET /v1/agent/conversations/{id}/messages", agentHandler.HandleListMessages)

	// Reminders
	remindersHandler := reminders.NewHandler(reminders.NewService(s.store))
	s.mux.HandleFunc("POST /v1/reminders", remindersHandler.HandleCreate)
	s.mux.HandleFunc("GET /v1/reminders", remindersHandler.HandleList)
	s.mux.HandleFunc("PATCH /v1/reminders/{id}", remindersHandler.HandleUpdate)
	s.mux.HandleFunc("DELETE /v1/reminders/{id}", remindersHandler.HandleDelete)

	// Notifications
	notificationsHandler := notifications.NewHandler(s.store)
	s.mux.HandleFunc("GET /v1/notifications", notificationsHandler.HandleList)
	s.mux.HandleFunc("POST /v1/notifications/read", notificationsHandler.HandleMarkRead)

	// Reports
	blobStore, _, err := blob.New(s.config, log.Default())
	if err != nil {
		return fmt.Errorf("init blob store: %w", err)
	}
	reportsService := reports.NewService(s.store, blobStore, s.config.ReportsMaxRangeDays, s.config.S3.PresignTTLSeconds)
	reportsHandler := reports.NewHandler(reportsService)
	s.mux.HandleFunc("POST /v1/reports", reportsHandler.HandleCreate)
	s.mux.HandleFunc("GET /v1/reports", reportsHandler.HandleList)
	s.mux.HandleFunc("GET /v1/reports/{id}/download", reportsHandler.HandleDownload)
	s.mux.HandleFunc("DELETE /v1/reports/{id}", reportsHandler.HandleDelete)

	// Uploads
	uploadsService := uploads.NewService(s.store, blobStore, s.config.UploadsMaxBytes, s.config.S3.PresignTTLSeconds)
	uploadsHandler := uploads.NewHandler(uploadsService)
	s.mux.HandleFunc("POST /v1/uploads", uploadsHandler.HandleCreate)
	s.mux.HandleFunc("GET /v1/uploads", uploadsHandler.HandleList)
	s.mux.HandleFunc("GET /v1/uploads/{id}/download", uploadsHandler.HandleDownload)
	s.mux.HandleFunc("DELETE /v1/uploads/{id}", uploadsHandler.HandleDelete)

	// Dashboard
	dashboardHandler := dashboard.NewHandler(s.store)
	s.mux.HandleFunc("GET /v1/dashboard", dashboardHandler.HandleGet)

	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Handler returns the full middleware chain, outermost first:
// CORS, rate limit, auth, router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	handler = s.authMiddleware.RequireAuth(handler)
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("server listening on http://localhost%s", addr)
	log.Printf("health check: http://localhost%s/healthz", addr)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
