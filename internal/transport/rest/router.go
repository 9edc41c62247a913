package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/sambangiadharsh/algomind/internal/config"
	"github.com/sambangiadharsh/algomind/internal/transport/middleware"
)

// tokenValidator validates bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	Validator tokenValidator
	Health    *HealthHandler
	Problems  *ProblemHandler
	Revision  *RevisionHandler
}

// NewRouter builds the HTTP routing table and wraps it with the standard
// middleware chain. Health endpoints are served without authentication;
// API endpoints pass through the auth middleware, and handlers reject
// anonymous requests.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	// Problems.
	mux.HandleFunc("POST /api/v1/problems", deps.Problems.Create)
	mux.HandleFunc("GET /api/v1/problems", deps.Problems.List)
	mux.HandleFunc("GET /api/v1/problems/{id}", deps.Problems.Get)
	mux.HandleFunc("PATCH /api/v1/problems/{id}", deps.Problems.Update)
	mux.HandleFunc("DELETE /api/v1/problems/{id}", deps.Problems.Delete)
	mux.HandleFunc("POST /api/v1/problems/{id}/archive", deps.Problems.Archive)
	mux.HandleFunc("POST /api/v1/problems/{id}/unarchive", deps.Problems.Unarchive)

	// Revision engine.
	mux.HandleFunc("GET /api/v1/revision/today", deps.Revision.Today)
	mux.HandleFunc("POST /api/v1/revision/review", deps.Revision.Review)
	mux.HandleFunc("POST /api/v1/revision/refresh", deps.Revision.Refresh)
	mux.HandleFunc("GET /api/v1/revision/streak", deps.Revision.Streak)
	mux.HandleFunc("GET /api/v1/revision/settings", deps.Revision.GetSettings)
	mux.HandleFunc("PUT /api/v1/revision/settings", deps.Revision.UpdateSettings)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	)

	return chain(mux)
}
