package brew

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/logging"
	"go.uber.org/zap"
)

// Client runs the package-manager binary.
type Client struct {
	binary      string
	args        []string
	lookPath    core.PathLooker
	execCommand core.CommandFactory
}

// Option configures a Client.
type Option func(*Client)

// WithBinary sets the binary name looked up and executed.
func WithBinary(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.binary = name
		}
	}
}

// WithArgs sets the subcommand arguments passed to the binary.
func WithArgs(args ...string) Option {
	return func(c *Client) {
		if len(args) > 0 {
			c.args = append([]string(nil), args...)
		}
	}
}

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn core.PathLooker) Option {
	return func(c *Client) {
		c.lookPath = fn
	}
}

// WithExecCommand replaces exec.CommandContext.
func WithExecCommand(fn core.CommandFactory) Option {
	return func(c *Client) {
		c.execCommand = fn
	}
}

// NewClient returns a Client for "brew config" unless overridden by opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		binary:      core.DefaultBinary,
		args:        core.DefaultArgs(),
		lookPath:    exec.LookPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the configured binary name.
func (c *Client) Binary() string {
	return c.binary
}

// CommandLine returns the binary and its arguments joined by spaces, as used
// in error messages.
func (c *Client) CommandLine() string {
	return strings.Join(append([]string{c.binary}, c.args...), " ")
}

// CheckAvailable verifies the binary resolves on PATH and returns its path.
func (c *Client) CheckAvailable(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := c.lookPath(c.binary)
	if err != nil {
		return "", core.CommandNotFound(c.binary, err)
	}

	logging.L().Debug("resolved binary", zap.String("binary", c.binary), zap.String("path", path))
	return path, nil
}

// Config runs the config subcommand and returns its stdout as text.
func (c *Client) Config(ctx context.Context) (string, error) {
	command := c.CommandLine()

	cmd := c.execCommand(ctx, c.binary, c.args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.L().Debug("running command", zap.String("command", command))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", core.CommandRunFailed(command, strings.TrimSpace(stderr.String()), err)
		}
		// Spawn failure: missing binary, permissions, cancelled context.
		return "", core.CommandRunFailed(command, "", err)
	}

	logging.L().Debug("captured output", zap.Int("bytes", stdout.Len()))
	return DecodeOutput(stdout.Bytes())
}

// DecodeOutput converts captured bytes to a string, rejecting invalid UTF-8.
func DecodeOutput(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", core.StringFormat(nil)
	}
	return string(data), nil
}
