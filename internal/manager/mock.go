package manager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jakoblorz/go-envmodules/internal/models"
)

// Call is one recorded invocation of MockRunner
type Call struct {
	Action models.Action
	Module string
}

// MockOutput is the scripted response for a call
type MockOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// MockRunner implements Runner for testing. It records every call in order
// and answers from scripted outputs keyed by "action module".
type MockRunner struct {
	mu      *sync.Mutex
	state   *mockState
	ctx     context.Context
	Default MockOutput

	// Delay makes every call sleep, to surface overlapping invocations
	Delay time.Duration
}

type mockState struct {
	calls    []Call
	outputs  map[string][]MockOutput
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

// NewMockRunner creates an empty MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		mu: &sync.Mutex{},
		state: &mockState{
			outputs: make(map[string][]MockOutput),
		},
		ctx: context.Background(),
	}
}

func callKey(action models.Action, module string) string {
	if module == "" {
		return string(action)
	}
	return string(action) + " " + module
}

// SetOutput queues an output for action/module. Queued outputs are used in
// order; the last one repeats once the queue is drained.
func (m *MockRunner) SetOutput(action models.Action, module string, out MockOutput) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := callKey(action, module)
	m.state.outputs[key] = append(m.state.outputs[key], out)
}

// WithContext returns a runner sharing this mock's recorded state
func (m *MockRunner) WithContext(ctx context.Context) Runner {
	return &MockRunner{
		mu:      m.mu,
		state:   m.state,
		ctx:     ctx,
		Default: m.Default,
		Delay:   m.Delay,
	}
}

// Run records the call and returns the scripted output
func (m *MockRunner) Run(action models.Action, module string) (*models.CommandResult, error) {
	if err := Validate(action, module); err != nil {
		return nil, err
	}

	inFlight := m.state.inFlight.Add(1)
	defer m.state.inFlight.Add(-1)
	for {
		seen := m.state.maxSeen.Load()
		if inFlight <= seen || m.state.maxSeen.CompareAndSwap(seen, inFlight) {
			break
		}
	}

	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.calls = append(m.state.calls, Call{Action: action, Module: module})

	out := m.Default
	key := callKey(action, module)
	if queued := m.state.outputs[key]; len(queued) > 0 {
		out = queued[0]
		if len(queued) > 1 {
			m.state.outputs[key] = queued[1:]
		}
	}

	return &models.CommandResult{
		Action:   action,
		Module:   module,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
		Duration: m.Delay,
	}, nil
}

// Calls returns the recorded calls in order
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]Call, len(m.state.calls))
	copy(calls, m.state.calls)
	return calls
}

// CallCount returns how many calls were recorded
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.calls)
}

// MaxConcurrent returns the highest number of calls seen in flight at once
func (m *MockRunner) MaxConcurrent() int {
	return int(m.state.maxSeen.Load())
}

// Reset forgets recorded calls, keeping scripted outputs
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.calls = nil
}
