package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	"github.com/mariana/talent-hub/internal/ai"
	"github.com/mariana/talent-hub/internal/config"
	"github.com/mariana/talent-hub/internal/db"
	"github.com/mariana/talent-hub/internal/ingestion"
	"github.com/mariana/talent-hub/internal/notify"
	"github.com/mariana/talent-hub/internal/server/middleware"
	"github.com/mariana/talent-hub/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	bus         *notify.Bus
	analyzer    *ai.Analyzer
	aiClient    ai.Client
	importer    *ingestion.Importer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validator   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string
	AllowedOrigins []string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:        database,
		bus:       notify.NewBus(),
		importer:  ingestion.NewImporter(),
		validator: validator.New(),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// AI analysis is optional: without a key the analyze endpoints return 503
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, ai.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		s.aiClient = client
		s.analyzer = ai.NewAnalyzer(client)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(corsHandler.Handler(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // SSE connections stay open indefinitely
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux with public and authenticated route groups.
func (s *Server) routes() http.Handler {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	admin := func(h http.HandlerFunc) http.Handler {
		return auth(middleware.RequireAdmin(db.RoleAdmin)(h))
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /dynamics/lookup", s.handleDynamicLookup)

	// account
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))

	// users (admin)
	mux.Handle("GET /users", protected(s.handleListUsers))
	mux.Handle("PUT /users/{id}", admin(s.handleUpdateUser))
	mux.Handle("POST /users/{id}/role", admin(s.handleSetUserRole))
	mux.Handle("DELETE /users/{id}", admin(s.handleDeleteUser))

	// jobs
	mux.Handle("GET /jobs", protected(s.handleListJobs))
	mux.Handle("POST /jobs", protected(s.handleCreateJob))
	mux.Handle("POST /jobs/import", protected(s.handleImportJob))
	mux.Handle("GET /jobs/{id}", protected(s.handleGetJob))
	mux.Handle("PUT /jobs/{id}", protected(s.handleUpdateJob))
	mux.Handle("POST /jobs/{id}/archive", protected(s.handleArchiveJob))
	mux.Handle("POST /jobs/{id}/restore", protected(s.handleRestoreJob))
	mux.Handle("DELETE /jobs/{id}", admin(s.handleDeleteJob))

	// candidates in a pipeline
	mux.Handle("GET /jobs/{id}/candidates", protected(s.handleListScoredCandidates))
	mux.Handle("POST /jobs/{id}/analyze-candidates", protected(s.handleAnalyzeJobCandidates))
	mux.Handle("GET /jobs/{id}/decision-summary", protected(s.handleDecisionSummary))
	mux.Handle("GET /jobs/{id}/screening/preview", protected(s.handleScreeningPreview))
	mux.Handle("POST /jobs/{id}/screening/apply", protected(s.handleScreeningApply))
	mux.Handle("POST /jobs/{id}/screening/undo", protected(s.handleScreeningUndo))

	// candidates
	mux.Handle("GET /candidates", protected(s.handleListCandidates))
	mux.Handle("POST /candidates", protected(s.handleCreateCandidate))
	mux.Handle("POST /candidates/bulk-interviews", protected(s.handleBulkInterviews))
	mux.Handle("GET /candidates/{id}", protected(s.handleGetCandidate))
	mux.Handle("PUT /candidates/{id}", protected(s.handleUpdateCandidate))
	mux.Handle("POST /candidates/{id}/status", protected(s.handleCandidateStatus))
	mux.Handle("PUT /candidates/{id}/interview", protected(s.handleSetInterview))
	mux.Handle("DELETE /candidates/{id}/interview", protected(s.handleCancelInterview))
	mux.Handle("GET /candidates/{id}/slot-suggestions", protected(s.handleSlotSuggestions))
	mux.Handle("POST /candidates/{id}/analyze", protected(s.handleAnalyzeCandidate))
	mux.Handle("POST /candidates/{id}/invitation", protected(s.handleInterviewInvitation))
	mux.Handle("POST /candidates/{id}/archive", protected(s.handleArchiveCandidate))
	mux.Handle("POST /candidates/{id}/restore", protected(s.handleRestoreCandidate))
	mux.Handle("DELETE /candidates/{id}", admin(s.handleDeleteCandidate))

	// interviews
	mux.Handle("GET /interviews/booked-times", protected(s.handleBookedTimes))

	// talent pool
	mux.Handle("GET /talents", protected(s.handleListTalents))
	mux.Handle("POST /talents", protected(s.handleCreateTalent))
	mux.Handle("GET /talents/{id}", protected(s.handleGetTalent))
	mux.Handle("PUT /talents/{id}", protected(s.handleUpdateTalent))
	mux.Handle("POST /talents/{id}/send-to-job", protected(s.handleSendTalentToJob))
	mux.Handle("POST /talents/{id}/archive", protected(s.handleArchiveTalent))
	mux.Handle("POST /talents/{id}/restore", protected(s.handleRestoreTalent))
	mux.Handle("DELETE /talents/{id}", admin(s.handleDeleteTalent))

	// group dynamics
	mux.Handle("GET /dynamics", protected(s.handleListDynamics))
	mux.Handle("POST /dynamics", protected(s.handleCreateDynamic))
	mux.Handle("GET /dynamics/{id}", protected(s.handleGetDynamic))
	mux.Handle("PUT /dynamics/{id}", protected(s.handleUpdateDynamic))
	mux.Handle("DELETE /dynamics/{id}", protected(s.handleDeleteDynamic))

	// messages
	mux.Handle("GET /messages", protected(s.handleListMessages))
	mux.Handle("POST /messages", protected(s.handleSendMessage))
	mux.Handle("PATCH /messages/{id}", protected(s.handlePatchMessage))
	mux.Handle("POST /messages/read", protected(s.handleMarkConversationRead))
	mux.Handle("DELETE /messages/conversation", protected(s.handleDeleteConversation))
	mux.Handle("GET /messages/events", protected(s.handleMessageEvents))

	// audit history
	mux.Handle("GET /history", protected(s.handleListHistory))

	// exports
	mux.Handle("GET /export/candidates.csv", protected(s.handleExportCSV))
	mux.Handle("GET /export/candidates.json", protected(s.handleExportJSON))
	mux.Handle("GET /export/candidates.xlsx", protected(s.handleExportXLSX))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.bus.Close()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.aiClient != nil {
		_ = s.aiClient.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword resolves the caller and delegates to the auth handler.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately not
// trusted here.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
