package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/indaco/brewstamp/internal/brew"
	"github.com/indaco/brewstamp/internal/cli"
	"github.com/indaco/brewstamp/internal/config"
	"github.com/indaco/brewstamp/internal/logging"
	"github.com/indaco/brewstamp/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the command tree for args.
func runCLI(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.Sync()

	cfg, err := config.LoadConfigFn(cli.ConfigPath(args))
	if err != nil {
		return err
	}

	app := cli.New(cfg, brew.NewFactory())
	return app.Run(ctx, args)
}

// reportError prints err and, for known failures, what to try next.
func reportError(w io.Writer, err error) {
	printer.FprintError(w, err)
	if hint := brew.HintFor(err); hint != nil {
		_, _ = io.WriteString(w, "\n")
		printer.FprintHint(w, hint.Message, hint.Suggestions)
	}
}
