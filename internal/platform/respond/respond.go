package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/errs"
)

const unexpectedMessage = "An unexpected error occurred."

// JSON encodes data and writes it with the given status. Encoding happens
// before any header is written so a failure can still produce a 500.
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	JSON(w, logger, status, model.ErrorResponse{Error: message})
}

// AppError writes err using the status for its Kind and its public Message.
// The cause is never written to the client.
func AppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *errs.AppError
	if !errors.As(err, &appErr) {
		Error(w, logger, http.StatusInternalServerError, unexpectedMessage)
		return
	}
	Error(w, logger, StatusFor(appErr.Kind), appErr.Message)
}

// StatusFor maps an error Kind to its HTTP status.
func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.MissingInput:
		return http.StatusBadRequest
	case errs.FetchFailed:
		return http.StatusBadGateway
	case errs.UpstreamUnavailable:
		return http.StatusServiceUnavailable
	case errs.FetchTransport, errs.Timeout, errs.Unknown:
		// 500 Internal Server Error
	}
	return http.StatusInternalServerError
}
