package git

import "context"

// MockLogSource is a test double for LogSource.
// It allows tests to provide predefined log output without needing a git executable.
type MockLogSource struct {
	Output []byte
	Err    error
	Calls  int
}

// NewMockLogSource creates a new MockLogSource with the given output.
func NewMockLogSource(output []byte, err error) *MockLogSource {
	return &MockLogSource{Output: output, Err: err}
}

// CommitDates returns the predefined output or error.
func (m *MockLogSource) CommitDates(_ context.Context, _ string) ([]byte, error) {
	m.Calls++
	return m.Output, m.Err
}

// Compile-time interface conformance check.
var _ LogSource = (*MockLogSource)(nil)
