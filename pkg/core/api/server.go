// Package api provides the HTTP API server for the homelab dashboard.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	homelabHTTP "github.com/homelab-edu/homelab/pkg/http"
	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/models"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// APIServer serves the dashboard's JSON endpoints. All endpoints are
// read-only; every /api response is wrapped in the
// {success, data, message} envelope.
type APIServer struct {
	router    *mux.Router
	discovery ServiceDiscovery
	sysmon    SystemMonitor
	log       logger.Logger
	srv       *http.Server
}

// NewAPIServer creates a new API server instance with the given options.
func NewAPIServer(options ...func(server *APIServer)) *APIServer {
	s := &APIServer{
		router: mux.NewRouter(),
		log:    logger.NewTestLogger(),
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithDiscoveryService adds the service discovery facade to the server.
func WithDiscoveryService(d ServiceDiscovery) func(server *APIServer) {
	return func(server *APIServer) {
		server.discovery = d
	}
}

// WithSystemMonitor adds the system monitor to the server.
func WithSystemMonitor(m SystemMonitor) func(server *APIServer) {
	return func(server *APIServer) {
		server.sysmon = m
	}
}

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) func(server *APIServer) {
	return func(server *APIServer) {
		server.log = log
	}
}

func (s *APIServer) setupRoutes() {
	s.router.Use(mux.MiddlewareFunc(homelabHTTP.CommonMiddleware))
	s.router.Use(mux.MiddlewareFunc(homelabHTTP.RequestLoggingMiddleware(s.log)))

	s.router.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.getHome).Methods(http.MethodGet)
	s.router.HandleFunc("/api", s.getAPIIndex).Methods(http.MethodGet)

	s.router.HandleFunc("/api/services", s.getServices).Methods(http.MethodGet)
	s.router.HandleFunc("/api/services/categories", s.getServiceCategories).Methods(http.MethodGet)
	s.router.HandleFunc("/api/services/critical", s.getCriticalServices).Methods(http.MethodGet)

	s.router.HandleFunc("/api/cpu", s.getCPU).Methods(http.MethodGet)
	s.router.HandleFunc("/api/memory", s.getMemory).Methods(http.MethodGet)
	s.router.HandleFunc("/api/disk", s.getDisk).Methods(http.MethodGet)
	s.router.HandleFunc("/api/processes", s.getProcesses).Methods(http.MethodGet)
	s.router.HandleFunc("/api/overview", s.getOverview).Methods(http.MethodGet)
	s.router.HandleFunc("/api/education", s.getEducation).Methods(http.MethodGet)
}

// Router exposes the configured router, mainly for tests.
func (s *APIServer) Router() *mux.Router {
	return s.router
}

// Start starts the API server on the specified address.
func (s *APIServer) Start(addr string) error {
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

func (s *APIServer) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "homelab",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *APIServer) getHome(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Welcome to homelab",
		"description": "homelab monitoring system",
		"endpoints": map[string]string{
			"health":   "/health",
			"home":     "/",
			"api_docs": "/api",
		},
	})
}

func (s *APIServer) getAPIIndex(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "homelab API",
		"description": "homelab monitoring system",
		"endpoints": []models.EndpointInfo{
			{Path: "/", Method: http.MethodGet, Description: "Home page"},
			{Path: "/health", Method: http.MethodGet, Description: "Health check"},
			{Path: "/api", Method: http.MethodGet, Description: "API documentation"},
			{Path: "/api/services", Method: http.MethodGet, Description: "All systemd services with educational context"},
			{Path: "/api/services/categories", Method: http.MethodGet, Description: "Services grouped by functional category"},
			{Path: "/api/services/critical", Method: http.MethodGet, Description: "Curated critical services with live status"},
			{Path: "/api/cpu", Method: http.MethodGet, Description: "CPU information and usage"},
			{Path: "/api/memory", Method: http.MethodGet, Description: "Memory usage information"},
			{Path: "/api/disk", Method: http.MethodGet, Description: "Disk usage information"},
			{Path: "/api/processes", Method: http.MethodGet, Description: "Top processes information"},
			{Path: "/api/overview", Method: http.MethodGet, Description: "Complete system overview"},
			{Path: "/api/education", Method: http.MethodGet, Description: "Educational context for monitoring"},
		},
	})
}

func (s *APIServer) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *APIServer) writeSuccess(w http.ResponseWriter, data interface{}, note string) {
	s.writeJSON(w, http.StatusOK, models.APIResponse{
		Success:         true,
		Data:            data,
		EducationalNote: note,
	})
}

func (s *APIServer) writeFailure(w http.ResponseWriter, status int, message string, err error) {
	s.log.Error().Err(err).Str("message", message).Msg("request failed")

	s.writeJSON(w, status, models.APIResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
