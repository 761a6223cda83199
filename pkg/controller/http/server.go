package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/specter/pkg/cli/config"
	slackCtrl "github.com/secmon-lab/specter/pkg/controller/slack"
	"github.com/secmon-lab/specter/pkg/domain/interfaces"
)

// Slack payloads are small; interaction payloads are the largest at a few KB
const maxRequestBodySize = 1 << 20

// Server represents the HTTP server
type Server struct {
	*http.Server
	router       chi.Router
	slackHandler *slackCtrl.Handler
}

// NewServer creates a new HTTP server exposing the Slack hooks
func NewServer(
	ctx context.Context,
	addr string,
	slackConfig *config.Slack,
	ghostUC interfaces.Ghost,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	slackHandler := slackCtrl.NewHandler(ctx, slackConfig, ghostUC)

	router.Get("/health", handleHealth)

	router.Route("/hooks/slack", func(r chi.Router) {
		r.Use(middleware.RequestSize(maxRequestBodySize))
		r.Post("/event", slackHandler.HandleEvent)
		r.Post("/interaction", slackHandler.HandleInteraction)
		r.Post("/command", slackHandler.HandleCommand)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:       router,
		slackHandler: slackHandler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "specter",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
