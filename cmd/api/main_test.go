package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Bahjat/seo-tag-inspector/internal/fetchproxy"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/config"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/middleware"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, _ string) (*fetchproxy.Page, error) {
	return &fetchproxy.Page{HTML: "<title>Example</title>", StatusCode: http.StatusOK}, nil
}

func testHandler(burst int) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := fetchproxy.NewService(stubFetcher{}, log)
	limiter := middleware.NewRateLimiter(0.001, burst)
	return newHandler(config.Default(), service, limiter, log)
}

func serve(h http.Handler, target string) int {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec.Code
}

func TestNewHandler_HealthNotRateLimited(t *testing.T) {
	h := testHandler(1)

	for i := range 5 {
		if code := serve(h, "/healthz"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, code, http.StatusOK)
		}
	}
}

func TestNewHandler_APIRateLimited(t *testing.T) {
	h := testHandler(1)
	target := "/api/fetch?url=" + url.QueryEscape("https://example.com")

	if code := serve(h, target); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", code, http.StatusOK)
	}
	if code := serve(h, target); code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want %d", code, http.StatusTooManyRequests)
	}
	if code := serve(h, "/api/analyze?url="+url.QueryEscape("https://example.com")); code != http.StatusTooManyRequests {
		t.Errorf("analyze: status = %d, want %d", code, http.StatusTooManyRequests)
	}
	if code := serve(h, "/healthz"); code != http.StatusOK {
		t.Errorf("healthz after limit: status = %d, want %d", code, http.StatusOK)
	}
}

func TestNewHandler_UnknownRoute(t *testing.T) {
	if code := serve(testHandler(10), "/nope"); code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", code, http.StatusNotFound)
	}
}
