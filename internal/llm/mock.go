package llm

import (
	"context"
	"errors"
	"sync"
)

// MockResponse is a canned response for the Mock provider.
type MockResponse struct {
	Text string
	Err  error
}

// Mock is a deterministic Provider for tests. It returns canned responses
// in FIFO order and records every request it receives.
type Mock struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMock creates a Mock with the given canned responses.
func NewMock(responses ...MockResponse) *Mock {
	return &Mock{responses: responses}
}

// Generate returns the next canned response, or an error once the queue
// is empty.
func (m *Mock) Generate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.responses) == 0 {
		return "", errors.New("llm: mock queue empty")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

func (m *Mock) ModelID() string { return "mock" }

// CallCount returns the number of Generate calls made so far.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
