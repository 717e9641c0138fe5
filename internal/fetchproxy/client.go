package fetchproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Bahjat/seo-tag-inspector/internal/model"
	"golang.org/x/net/html/charset"
)

const userAgent = "SEOTagInspector/1.0"

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// Page is a fetched target: its body as text, its CSP header, and where the
// redirect chain ended.
type Page struct {
	HTML       string
	CSP        string
	StatusCode int
	FinalURL   string
}

// Result strips a Page down to the wire payload.
func (p *Page) Result() model.FetchResult {
	return model.FetchResult{HTML: p.HTML, CSP: p.CSP}
}

// Fetcher retrieves a target page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Options tunes the outbound client.
type Options struct {
	Timeout              time.Duration
	MaxRedirects         int
	MaxBodyBytes         int64
	BlockPrivateNetworks bool
}

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client  *http.Client
	maxBody int64
}

// NewHTTPClient returns a Fetcher whose http.Client follows redirects up to
// opts.MaxRedirects, gives up after opts.Timeout and, when
// opts.BlockPrivateNetworks is set, refuses to dial private or reserved
// addresses.
func NewHTTPClient(opts Options) *HTTPClient {
	return &HTTPClient{
		maxBody: opts.MaxBodyBytes,
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext:         newDialer(opts.BlockPrivateNetworks).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: redirectPolicy(opts.MaxRedirects),
		},
	}
}

// redirectPolicy follows http(s) redirects until the chain reaches max.
func redirectPolicy(maxRedirects int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
		}
		if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
			return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
		}
		return nil
	}
}

// Fetch GETs targetURL and reads the whole body as text. Any HTTP status is
// a successful fetch; only transport failures return an error.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := c.readText(resp)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Page{
		HTML:       body,
		CSP:        headerCSP(resp.Header),
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}

// readText reads at most maxBody bytes as text. Bodies are UTF-8 unless a
// BOM or Content-Type charset says otherwise; only bytes that are not valid
// UTF-8 fall back to the charset found by the meta prescan (or windows-1252).
func (c *HTTPClient) readText(resp *http.Response) (string, error) {
	var r io.Reader = resp.Body
	if c.maxBody > 0 {
		r = io.LimitReader(r, c.maxBody)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	enc, _, certain := charset.DetermineEncoding(raw, resp.Header.Get("Content-Type"))
	if !certain && utf8.Valid(trimPartialRune(raw)) {
		return string(raw), nil
	}

	text, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw), nil
	}
	return string(text), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence left at the end of b by
// the body limit.
func trimPartialRune(b []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(b); i++ {
		if !utf8.RuneStart(b[len(b)-i]) {
			continue
		}
		if !utf8.FullRune(b[len(b)-i:]) {
			return b[:len(b)-i]
		}
		return b
	}
	return b
}

// headerCSP joins repeated Content-Security-Policy header lines the way the
// Fetch API's Headers.get does.
func headerCSP(h http.Header) string {
	return strings.TrimSpace(strings.Join(h.Values("Content-Security-Policy"), ", "))
}
