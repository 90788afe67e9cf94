// Package server provides the HTTP REST API for the study cost service.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/config"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/edooconnect/studycost/internal/store"
)

// Server wires the estimation engine, the store, and the report cache
// behind the REST API.
type Server struct {
	httpServer *http.Server
	store      store.Store
	cache      store.ReportCache
	engine     *calculation.Engine
	jwt        *JWTService
	validate   *validator.Validate
	now        func() time.Time
}

// New creates a server instance over the given store and cache.
func New(cfg *config.Config, st store.Store, cache store.ReportCache, tables *refdata.Tables) *Server {
	s := &Server{
		store:    st,
		cache:    cache,
		engine:   calculation.NewEngine(tables),
		jwt:      NewJWTService(cfg.JWTSecret, cfg.JWTExpiration),
		validate: validator.New(),
		now:      time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.Routes())),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Routes builds the API route table.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("PUT /api/simulations/wizard", s.withAuth(s.handleSaveWizard))
	mux.HandleFunc("GET /api/simulations/wizard", s.withAuth(s.handleGetWizard))

	mux.HandleFunc("POST /api/reports/generate", s.withAuth(s.handleGenerateReport))
	mux.HandleFunc("GET /api/reports", s.withAuth(s.handleGetReport))

	mux.HandleFunc("POST /api/payments/upgrade", s.withAuth(s.handleUpgrade))

	return mux
}

// Start begins listening and blocks until an interrupt or SIGTERM.
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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withAuth validates the bearer token and passes the user id through.
func (s *Server) withAuth(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		claims, err := s.jwt.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r, claims.UserID)
	}
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
