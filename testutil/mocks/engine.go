// MockEngine is a scripted streaming-engine implementation for tests.
//
// It supports fixed sample sequences, construction and iteration error
// injection, and call recording.
package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/types"
)

// ConstructCall records one Construct invocation.
type ConstructCall struct {
	Location string
	Options  engine.Options
}

// MockEngine implements engine.Engine with scripted behavior.
type MockEngine struct {
	mu sync.RWMutex

	name     string
	backends []types.BackendTag

	samples      []engine.Sample
	constructErr error
	failAfter    int // inject pullErr after this many samples; -1 disables
	pullErr      error

	calls []ConstructCall
}

// NewMockEngine creates a mock engine named "mock" serving every backend.
func NewMockEngine() *MockEngine {
	return &MockEngine{
		name:      "mock",
		backends:  types.Backends(),
		failAfter: -1,
	}
}

// WithName overrides the engine name.
func (m *MockEngine) WithName(name string) *MockEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	return m
}

// WithBackends overrides the served backend set.
func (m *MockEngine) WithBackends(backends ...types.BackendTag) *MockEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backends = backends
	return m
}

// WithSamples scripts the sample sequence every stream yields.
func (m *MockEngine) WithSamples(samples ...[]byte) *MockEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = m.samples[:0]
	for _, s := range samples {
		m.samples = append(m.samples, engine.Sample(s))
	}
	return m
}

// WithConstructError makes Construct fail with err.
func (m *MockEngine) WithConstructError(err error) *MockEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.constructErr = err
	return m
}

// WithPullError makes every stream fail with err after n successful pulls.
func (m *MockEngine) WithPullError(n int, err error) *MockEngine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAfter = n
	m.pullErr = err
	return m
}

// Name implements engine.Engine.
func (m *MockEngine) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// Backends implements engine.Engine.
func (m *MockEngine) Backends() []types.BackendTag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.backends
}

// Construct implements engine.Engine.
func (m *MockEngine) Construct(_ context.Context, location string, opts engine.Options) (engine.StreamHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ConstructCall{Location: location, Options: opts})
	if m.constructErr != nil {
		return nil, m.constructErr
	}
	return &mockStream{
		samples:   append([]engine.Sample(nil), m.samples...),
		failAfter: m.failAfter,
		pullErr:   m.pullErr,
	}, nil
}

// Calls returns a copy of all recorded Construct invocations.
func (m *MockEngine) Calls() []ConstructCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ConstructCall(nil), m.calls...)
}

// LastCall returns the most recent Construct invocation.
func (m *MockEngine) LastCall() (ConstructCall, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return ConstructCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// mockStream replays the scripted samples, honoring context cancellation
// and injected pull errors.
type mockStream struct {
	mu        sync.Mutex
	samples   []engine.Sample
	pos       int
	failAfter int
	pullErr   error
	closed    bool
}

func (s *mockStream) Next(ctx context.Context) (engine.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, io.EOF
	}
	if s.failAfter >= 0 && s.pos >= s.failAfter {
		return nil, s.pullErr
	}
	if s.pos >= len(s.samples) {
		return nil, io.EOF
	}
	sample := s.samples[s.pos]
	s.pos++
	return sample, nil
}

func (s *mockStream) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	return nil
}

func (s *mockStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
