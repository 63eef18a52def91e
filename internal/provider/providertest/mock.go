// Package providertest provides test helpers for the provider package.
package providertest

import (
	"context"
	"sync"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// MockProvider is a configurable test double for provider.Provider.
// Set CompleteFunc to control behavior; an unset func panics on call.
// Safe for concurrent use.
type MockProvider struct {
	CompleteFunc func(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResponse, error)

	mu            sync.Mutex
	completeCalls int
	requests      []provider.CompletionRequest
}

// Complete delegates to CompleteFunc and records the request.
func (m *MockProvider) Complete(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResponse, error) {
	m.mu.Lock()
	m.completeCalls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.CompleteFunc(ctx, req)
}

// ModelName implements provider.Provider.
func (m *MockProvider) ModelName() string { return "mock-model" }

// CompleteCalls returns how many times Complete has been invoked.
func (m *MockProvider) CompleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completeCalls
}

// Requests returns a copy of all recorded completion requests.
func (m *MockProvider) Requests() []provider.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]provider.CompletionRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// ScriptedProvider returns canned responses in order and fails once the
// script is exhausted.
type ScriptedProvider struct {
	mu        sync.Mutex
	responses []provider.CompletionResponse
	errs      []error
	idx       int
}

// NewScripted creates a ScriptedProvider from alternating responses.
// A nil error at position i pairs with responses[i].
func NewScripted(responses []provider.CompletionResponse, errs []error) *ScriptedProvider {
	return &ScriptedProvider{responses: responses, errs: errs}
}

// Complete returns the next scripted response or error.
func (s *ScriptedProvider) Complete(_ context.Context, _ provider.CompletionRequest) (provider.CompletionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.idx
	s.idx++
	if i < len(s.errs) && s.errs[i] != nil {
		return provider.CompletionResponse{}, s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return provider.CompletionResponse{}, provider.ErrProviderDown
}

// ModelName implements provider.Provider.
func (s *ScriptedProvider) ModelName() string { return "scripted-model" }

// Interface guards.
var (
	_ provider.Provider = (*MockProvider)(nil)
	_ provider.Provider = (*ScriptedProvider)(nil)
)
