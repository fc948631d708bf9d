// Package testutils holds helpers shared by brewstamp tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// CaptureStdout runs fn with os.Stdout redirected and returns what it wrote.
func CaptureStdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		_, copyErr = io.Copy(&buf, r)
		close(done)
	}()

	func() {
		defer func() { os.Stdout = orig }()
		fn()
	}()

	_ = w.Close()
	<-done
	_ = r.Close()

	return buf.String(), copyErr
}

// BuildCLIForTests wraps commands in a root command without exiting on error.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "brewstamp",
		Commands: commands,
		ExitErrHandler: func(context.Context, *cli.Command, error) {
			// errors are returned from Run instead
		},
	}
}

// RunCLITest runs app with args and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string) {
	t.Helper()
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("CLI run failed: %v", err)
	}
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// Chdir changes into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}
