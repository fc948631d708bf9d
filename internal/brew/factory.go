package brew

import "github.com/indaco/brewstamp/internal/core"

// Verify Client implements core.BrewClient.
var _ core.BrewClient = (*Client)(nil)

// NewFactory returns a core.BrewClientFactory producing real clients.
func NewFactory() core.BrewClientFactory {
	return func(binary string, args []string) core.BrewClient {
		return NewClient(WithBinary(binary), WithArgs(args...))
	}
}
