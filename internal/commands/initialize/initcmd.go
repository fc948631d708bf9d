package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/brewstamp/internal/config"
	"github.com/indaco/brewstamp/internal/printer"
	"github.com/indaco/brewstamp/internal/tui"
	"github.com/urfave/cli/v3"
)

// Replaceable in tests.
var (
	isInteractive = tui.IsInteractive
	confirmFn     = tui.Confirm
)

// ErrAborted is returned when the user declines to overwrite a config file.
var ErrAborted = errors.New("init aborted")

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a " + config.DefaultConfigFile + " with default settings",
		UsageText: "brewstamp init [--path file] [--yes]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Where to write the config file",
				Value: config.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Overwrite an existing file without asking",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(cmd.String("path"), cmd.Bool("yes"))
		},
	}
}

func runInitCmd(path string, yes bool) error {
	if _, err := os.Stat(path); err == nil && !yes {
		if !isInteractive() {
			return fmt.Errorf("%s already exists (use --yes to overwrite)", path)
		}
		ok, err := confirmFn("Overwrite "+path+"?", "The existing configuration will be replaced with defaults.")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			return ErrAborted
		}
	}

	if err := config.SaveConfigFn(config.Default(), path); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Wrote %s", path))
	return nil
}
