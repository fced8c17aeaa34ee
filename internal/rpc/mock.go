package rpc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
)

// MockNode is an in-process JSON-RPC node for tests. Results maps a method
// name to the value placed in the envelope's result member; methods with no
// entry answer with a -32601 error.
type MockNode struct {
	server *httptest.Server

	mu       sync.Mutex
	results  map[string]any
	status   map[string]int
	requests []RecordedRequest
}

// RecordedRequest is one call seen by a MockNode.
type RecordedRequest struct {
	Request
	Username    string
	Password    string
	ContentType string
}

// NewMockNode starts a mock node and registers its shutdown with t.Cleanup.
func NewMockNode(t testing.TB, results map[string]any) *MockNode {
	t.Helper()

	m := &MockNode{
		results: results,
		status:  make(map[string]int),
	}
	if m.results == nil {
		m.results = make(map[string]any)
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

// SetResult replaces the result returned for method.
func (m *MockNode) SetResult(method string, result any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[method] = result
}

// SetStatus makes method answer with the given HTTP status.
func (m *MockNode) SetStatus(method string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[method] = code
}

// Requests returns a copy of every request received so far.
func (m *MockNode) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Connection returns a Connection pointing at the mock node.
func (m *MockNode) Connection(creds Credentials) Connection {
	u, _ := url.Parse(m.server.URL)
	port, _ := strconv.Atoi(u.Port())
	return Connection{
		Credentials: creds,
		URL:         u.Scheme + "://" + u.Hostname(),
		Port:        port,
	}
}

// Close stops the server early; later calls fail at the transport level.
func (m *MockNode) Close() {
	m.server.Close()
}

func (m *MockNode) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	user, pass, _ := r.BasicAuth()

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Request:     req,
		Username:    user,
		Password:    pass,
		ContentType: r.Header.Get("Content-Type"),
	})
	result, ok := m.results[req.Method]
	code, hasCode := m.status[req.Method]
	m.mu.Unlock()

	resp := map[string]any{"id": req.ID, "result": nil, "error": nil}
	if ok {
		resp["result"] = result
	} else {
		resp["error"] = map[string]any{"code": -32601, "message": "Method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	if hasCode {
		w.WriteHeader(code)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
