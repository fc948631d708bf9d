package core

import "os"

// File permissions.
const (
	// PermOwnerRW is used for config files: owner read/write only.
	PermOwnerRW os.FileMode = 0o600
)

// Defaults for the brew invocation and the line being parsed.
const (
	DefaultBinary   = "brew"
	DefaultLabel    = "Core tap JSON"
	DefaultTimezone = "UTC"
)

// DefaultArgs returns the subcommand used to print the brew configuration.
func DefaultArgs() []string {
	return []string{"config"}
}
