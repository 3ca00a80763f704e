package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/ylchen07/jira-api/internal/config"
	"github.com/ylchen07/jira-api/internal/jira"
)

// Server re-exposes a subset of the Jira operations over local HTTP.
type Server struct {
	service *jira.Service
	logger  *slog.Logger
	http    *http.Server
}

// New constructs the HTTP server for the given service and configuration.
func New(service *jira.Service, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service: service,
		logger:  logger,
	}

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return s
}

// Handler returns the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /issues/{key}", s.handleGetIssue)
	mux.HandleFunc("POST /issues", s.handleCreateIssue)
	mux.HandleFunc("PATCH /issues/{key}", s.handleUpdateIssue)
	mux.HandleFunc("PUT /issues/{key}/assignee", s.handleAssignIssue)
	mux.HandleFunc("GET /issues/{key}/transitions", s.handleListTransitions)
	mux.HandleFunc("POST /issues/{key}/transitions", s.handleTransitionIssue)
	mux.HandleFunc("POST /issues/{key}/comments", s.handleAddComment)

	mux.HandleFunc("GET /projects/{key}", s.handleGetProject)
	mux.HandleFunc("GET /projects/{key}/versions", s.handleListVersions)
	mux.HandleFunc("POST /projects/{key}/versions", s.handleCreateVersion)

	mux.HandleFunc("GET /users/search", s.handleSearchUsers)
	mux.HandleFunc("GET /users/{identifier}", s.handleGetUser)

	return s.logRequests(mux)
}

// ListenAndServe blocks serving HTTP until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", slog.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}
