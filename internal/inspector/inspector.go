package inspector

import (
	"context"
	"log/slog"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/errs"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/requestid"
	"github.com/Bahjat/seo-tag-inspector/internal/seo"
)

// MsgNoMarkup is reported when a fetch succeeded but produced no markup.
const MsgNoMarkup = "Failed to fetch or parse the site."

// Fetcher yields the proxy payload for a URL. Both the in-process fetch
// service and the remote proxy client satisfy it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (model.FetchResult, error)
}

// Inspector runs fetch, then analysis.
type Inspector struct {
	fetcher  Fetcher
	analyzer *seo.Analyzer
	logger   *slog.Logger
}

// New returns an Inspector. A nil analyzer selects the default backend.
func New(fetcher Fetcher, analyzer *seo.Analyzer, logger *slog.Logger) *Inspector {
	if analyzer == nil {
		analyzer = seo.NewAnalyzer(nil)
	}
	return &Inspector{fetcher: fetcher, analyzer: analyzer, logger: logger}
}

// Inspect fetches targetURL and analyzes the markup. Fetch errors are
// returned unchanged; an empty body is an errs.FetchFailed error and the
// analyzer is not run.
func (i *Inspector) Inspect(ctx context.Context, targetURL string) (*model.InspectResponse, error) {
	logger := i.logger.With("url", targetURL, "request_id", requestid.FromContext(ctx))

	fetched, err := i.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	if fetched.HTML == "" {
		logger.Error("analysis skipped", "reason", "empty body")
		return nil, &errs.AppError{Kind: errs.FetchFailed, Message: MsgNoMarkup}
	}

	analysis := i.analyzer.Analyze(fetched.HTML, fetched.CSP)

	results := make(map[string]string, len(analysis.Results))
	for k, v := range analysis.Results {
		results[string(k)] = v
	}

	logger.Info("analysis complete",
		"score", analysis.Score,
		"missing", analysis.Missing(),
		"has_csp", analysis.Results[seo.KeyCSP] != "",
	)

	return &model.InspectResponse{
		URL:     targetURL,
		Results: results,
		Score:   analysis.Score,
		Grade:   seo.Grade(analysis.Score),
	}, nil
}
