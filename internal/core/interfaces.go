package core

import (
	"context"
	"os/exec"
)

// CommandFactory builds an *exec.Cmd. exec.CommandContext satisfies it.
type CommandFactory func(ctx context.Context, name string, arg ...string) *exec.Cmd

// PathLooker resolves a binary name against PATH. exec.LookPath satisfies it.
type PathLooker func(file string) (string, error)

// BrewClient is the package-manager access used by the commands.
type BrewClient interface {
	// CheckAvailable returns the resolved path of the binary.
	CheckAvailable(ctx context.Context) (string, error)
	// Config returns the text printed by the config subcommand.
	Config(ctx context.Context) (string, error)
	// CommandLine returns the command as shown to users.
	CommandLine() string
}

// BrewClientFactory builds a BrewClient for a binary and its arguments.
type BrewClientFactory func(binary string, args []string) BrewClient

// Marshaler abstracts serialization for testability.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
