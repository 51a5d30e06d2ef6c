package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/kethil/tempursarihubstore-sub000/internal/httpclient"
)

// MockHTTPClient implements a mock HTTP client for testing
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	requests []*httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

// NewMockHTTPClient creates a new mock HTTP client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for a given URL suffix
func (m *MockHTTPClient) RegisterResponse(url string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[url] = resp
}

// Requests returns every request sent through the client
func (m *MockHTTPClient) Requests() []*httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*httpclient.Request{}, m.requests...)
}

// Send implements the httpclient.Client interface
func (m *MockHTTPClient) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matchedResponse MockResponse
	var found bool
	for route, resp := range m.routes {
		if strings.HasSuffix(req.URL, route) {
			matchedResponse = resp
			found = true
			break
		}
	}

	if !found {
		return nil, httpclient.NewError(http.StatusNotFound, []byte("Not Found"))
	}

	if matchedResponse.StatusCode >= 400 {
		return nil, httpclient.NewError(matchedResponse.StatusCode, matchedResponse.Body)
	}

	return &httpclient.Response{
		StatusCode: matchedResponse.StatusCode,
		Body:       matchedResponse.Body,
		Headers:    matchedResponse.Headers,
	}, nil
}

// Clear removes all registered responses and recorded requests
func (m *MockHTTPClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = make(map[string]MockResponse)
	m.requests = nil
}
