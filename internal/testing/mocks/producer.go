// Package mocks provides shared test doubles for shapediff packages.
package mocks

import (
	"context"
	"sync"
	"sync/atomic"
)

// Producer implements producer.Producer for testing. It returns canned
// documents instead of spawning real processes. Use NewProducer() to
// create instances with a fluent builder API.
type Producer struct {
	name    string
	outputs map[string]string // text -> canned raw output
	output  string            // fallback raw output for any text

	// PrepareFunc is called by Prepare. If nil, Prepare returns nil.
	PrepareFunc func(ctx context.Context) error

	// RunFunc is called by Run. If nil, Run serves the canned outputs.
	RunFunc func(ctx context.Context, fontPath, text string, size float64) (string, error)

	// Invocation tracking (thread-safe)
	prepareCount int32
	runCount     int32
	mu           sync.Mutex
	runTexts     []string
}

// NewProducer creates a new mock producer with the given role name.
func NewProducer(name string) *Producer {
	return &Producer{
		name:    name,
		outputs: make(map[string]string),
	}
}

// WithOutput sets the raw output returned for every text.
func (m *Producer) WithOutput(raw string) *Producer {
	m.output = raw
	return m
}

// WithOutputFor sets the raw output returned for a specific text.
func (m *Producer) WithOutputFor(text, raw string) *Producer {
	m.outputs[text] = raw
	return m
}

// WithPrepareFunc sets the function called by Prepare.
func (m *Producer) WithPrepareFunc(fn func(ctx context.Context) error) *Producer {
	m.PrepareFunc = fn
	return m
}

// WithRunFunc sets the function called by Run.
func (m *Producer) WithRunFunc(fn func(ctx context.Context, fontPath, text string, size float64) (string, error)) *Producer {
	m.RunFunc = fn
	return m
}

// producer.Producer interface implementation

func (m *Producer) Name() string { return m.name }

func (m *Producer) Prepare(ctx context.Context) error {
	atomic.AddInt32(&m.prepareCount, 1)
	if m.PrepareFunc != nil {
		return m.PrepareFunc(ctx)
	}
	return nil
}

func (m *Producer) Run(ctx context.Context, fontPath, text string, size float64) (string, error) {
	atomic.AddInt32(&m.runCount, 1)
	m.mu.Lock()
	m.runTexts = append(m.runTexts, text)
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, fontPath, text, size)
	}
	if raw, ok := m.outputs[text]; ok {
		return raw, nil
	}
	return m.output, nil
}

// Test inspection methods

// PrepareCount returns the number of times Prepare was called.
func (m *Producer) PrepareCount() int32 {
	return atomic.LoadInt32(&m.prepareCount)
}

// RunCount returns the number of times Run was called.
func (m *Producer) RunCount() int32 {
	return atomic.LoadInt32(&m.runCount)
}

// RunTexts returns the texts Run was invoked with, in order.
func (m *Producer) RunTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.runTexts))
	copy(result, m.runTexts)
	return result
}
