package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Request is one call received by the ApiMock.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	Body   map[string]any
}

type stubResponse struct {
	method  string
	pattern string
	status  int
	body    any
}

// ApiMock is an HTTP stand-in for third-party APIs such as Google Sheets.
// Paths are matched segment by segment; "*" matches any single segment.
// Unmatched calls answer 200 with an empty JSON object.
type ApiMock struct {
	mu       sync.Mutex
	server   *httptest.Server
	stubs    []stubResponse
	received []Request
}

// NewApiServer starts a new ApiMock.
func NewApiServer() *ApiMock {
	a := &ApiMock{}
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	return a
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	query := map[string]string{}
	for key, values := range r.URL.Query() {
		query[key] = values[0]
	}

	a.mu.Lock()
	a.received = append(a.received, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  query,
		Body:   body,
	})
	status, response := http.StatusOK, any(map[string]any{})
	// Later stubs win over earlier ones.
	for i := len(a.stubs) - 1; i >= 0; i-- {
		s := a.stubs[i]
		if s.method == r.Method && matchPath(s.pattern, r.URL.Path) {
			status, response = s.status, s.body
			break
		}
	}
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}

// GetUrl returns the base URL of the mock.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse answers calls matching method and path pattern with status and body.
func (a *ApiMock) SetResponse(method, pattern string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stubs = append(a.stubs, stubResponse{method: method, pattern: pattern, status: status, body: body})
}

// Requests returns the received calls matching method and path pattern, oldest first.
func (a *ApiMock) Requests(method, pattern string) []Request {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Request
	for _, r := range a.received {
		if r.Method == method && matchPath(pattern, r.Path) {
			out = append(out, r)
		}
	}
	return out
}

// Reset forgets stubs and received calls.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stubs = nil
	a.received = nil
}

// Close stops the server.
func (a *ApiMock) Close() {
	a.server.Close()
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
