package fetchproxy

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/errs"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/requestid"
)

// Public messages. Causes are logged, never returned to the caller.
const (
	MsgMissingURL  = "Missing url param"
	MsgFetchFailed = "Failed to fetch target site"
)

var errUnsupportedURL = errors.New("url must be absolute http(s)")

// Service validates the target and runs a Fetcher, classifying failures.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService creates a Service backed by the given fetcher.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, logger: logger}
}

// Fetch returns the body and CSP header of targetURL. An empty targetURL
// fails with errs.MissingInput before any network activity; every other
// failure is errs.FetchTransport or errs.Timeout.
func (s *Service) Fetch(ctx context.Context, targetURL string) (model.FetchResult, error) {
	if targetURL == "" {
		return model.FetchResult{}, &errs.AppError{Kind: errs.MissingInput, Message: MsgMissingURL}
	}

	logger := s.logger.With("url", targetURL, "request_id", requestid.FromContext(ctx))

	if err := checkTarget(targetURL); err != nil {
		logger.Error("fetch rejected", "error", err)
		return model.FetchResult{}, &errs.AppError{Kind: errs.FetchTransport, Message: MsgFetchFailed, Cause: err}
	}

	page, err := s.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		kind := errs.FetchTransport
		if isTimeout(ctx, err) {
			kind = errs.Timeout
		}
		appErr := &errs.AppError{Kind: kind, Message: MsgFetchFailed, Cause: err}
		logger.Error("fetch failed", "kind", kind.String(), "error", err)
		return model.FetchResult{}, appErr
	}

	logger.Info("fetch complete",
		"target_status", page.StatusCode,
		"final_url", page.FinalURL,
		"bytes", len(page.HTML),
		"has_csp_header", page.CSP != "",
	)
	return page.Result(), nil
}

func checkTarget(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errUnsupportedURL
	}
	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
