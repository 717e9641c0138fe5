package fetchproxy

import (
	"log/slog"
	"net/http"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/respond"
)

// Transport exposes the proxy over HTTP.
type Transport struct {
	service *Service
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, logger *slog.Logger) *Transport {
	return &Transport{service: service, logger: logger}
}

// RegisterRoutes attaches the API handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/fetch", t.handleFetch)
}

// RegisterHealthRoutes attaches the liveness handler. It is kept apart from
// RegisterRoutes so it can sit outside the API rate limit.
func (t *Transport) RegisterHealthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", t.handleHealth)
}

func (t *Transport) handleFetch(w http.ResponseWriter, r *http.Request) {
	result, err := t.service.Fetch(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		respond.AppError(w, t.logger, err)
		return
	}

	respond.JSON(w, t.logger, http.StatusOK, result)
}

func (t *Transport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, t.logger, http.StatusOK, model.HealthResponse{Status: "ok"})
}
