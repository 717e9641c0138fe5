package inspector

import (
	"log/slog"
	"net/http"

	"github.com/Bahjat/seo-tag-inspector/internal/platform/respond"
)

// Transport exposes server-side inspection over HTTP.
type Transport struct {
	inspector *Inspector
	logger    *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given inspector.
func NewTransport(inspector *Inspector, logger *slog.Logger) *Transport {
	return &Transport{inspector: inspector, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/analyze", t.handleAnalyze)
}

func (t *Transport) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, err := t.inspector.Inspect(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		respond.AppError(w, t.logger, err)
		return
	}

	respond.JSON(w, t.logger, http.StatusOK, result)
}
