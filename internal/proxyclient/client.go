package proxyclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/errs"
)

// MsgProxyDown tells the user the proxy has to be started.
const MsgProxyDown = "Failed to fetch or parse the site. Make sure the backend proxy is running."

// Client calls a running proxy's GET /api/fetch endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a Client for the proxy at baseURL (e.g. http://localhost:4000).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch asks the proxy for targetURL. An unreachable proxy yields
// errs.UpstreamUnavailable; an error payload from the proxy yields
// errs.FetchFailed carrying the proxy's message and status.
func (c *Client) Fetch(ctx context.Context, targetURL string) (model.FetchResult, error) {
	endpoint := c.baseURL + "/api/fetch?url=" + url.QueryEscape(targetURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.FetchResult{}, &errs.AppError{Kind: errs.UpstreamUnavailable, Message: MsgProxyDown, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return model.FetchResult{}, &errs.AppError{Kind: errs.UpstreamUnavailable, Message: MsgProxyDown, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return model.FetchResult{}, proxyError(resp)
	}

	var result model.FetchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.FetchResult{}, &errs.AppError{
			Kind:           errs.FetchFailed,
			UpstreamStatus: resp.StatusCode,
			Message:        "The proxy returned an unreadable response.",
			Cause:          err,
		}
	}
	return result, nil
}

var errProxyStatus = errors.New("proxy returned non-200 status")

func proxyError(resp *http.Response) error {
	appErr := &errs.AppError{
		Kind:           errs.FetchFailed,
		UpstreamStatus: resp.StatusCode,
		Message:        http.StatusText(resp.StatusCode),
		Cause:          fmt.Errorf("%w: %d", errProxyStatus, resp.StatusCode),
	}

	var body model.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Error != "" {
		appErr.Message = body.Error
	}
	return appErr
}
