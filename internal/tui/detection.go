package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"BUILDKITE",
	"JENKINS_HOME",
	"TF_BUILD",
}

// isTerminal is replaceable in tests.
var isTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// IsInteractive reports whether spinners and prompts may be shown:
// stdout is a terminal and no CI environment is detected.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
