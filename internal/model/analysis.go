package model

// FetchResult is the payload of GET /api/fetch: the raw response body of the
// target page and its content-security-policy response header.
type FetchResult struct {
	HTML string `json:"html"`
	CSP  string `json:"csp"`
}

// InspectResponse is the payload of GET /api/analyze and the CLI's --json output.
type InspectResponse struct {
	URL     string            `json:"url"`
	Results map[string]string `json:"results"`
	Score   int               `json:"score"`
	Grade   string            `json:"grade"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
