package brew

import (
	"context"
	"strings"

	"github.com/indaco/brewstamp/internal/core"
)

// MockClient is a mock implementation of core.BrewClient for testing.
type MockClient struct {
	Binary string
	Args   []string

	CheckAvailableFn func(ctx context.Context) (string, error)
	ConfigFn         func(ctx context.Context) (string, error)

	// ConfigCalls counts Config invocations.
	ConfigCalls int
}

// Verify MockClient implements core.BrewClient.
var _ core.BrewClient = (*MockClient)(nil)

// CheckAvailable implements core.BrewClient.
func (m *MockClient) CheckAvailable(ctx context.Context) (string, error) {
	if m.CheckAvailableFn != nil {
		return m.CheckAvailableFn(ctx)
	}
	return "/opt/homebrew/bin/" + m.binary(), nil
}

// Config implements core.BrewClient.
func (m *MockClient) Config(ctx context.Context) (string, error) {
	m.ConfigCalls++
	if m.ConfigFn != nil {
		return m.ConfigFn(ctx)
	}
	return "", nil
}

// CommandLine implements core.BrewClient.
func (m *MockClient) CommandLine() string {
	args := m.Args
	if len(args) == 0 {
		args = core.DefaultArgs()
	}
	return strings.Join(append([]string{m.binary()}, args...), " ")
}

func (m *MockClient) binary() string {
	if m.Binary == "" {
		return core.DefaultBinary
	}
	return m.Binary
}

// MockFactory returns a factory that always hands out m, recording the
// binary and args it was asked for.
func MockFactory(m *MockClient) core.BrewClientFactory {
	return func(binary string, args []string) core.BrewClient {
		m.Binary = binary
		m.Args = args
		return m
	}
}
