package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/brewstamp/internal/commands/doctor"
	"github.com/indaco/brewstamp/internal/commands/initialize"
	"github.com/indaco/brewstamp/internal/commands/stamp"
	"github.com/indaco/brewstamp/internal/config"
	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/logging"
	"github.com/indaco/brewstamp/internal/output"
	"github.com/indaco/brewstamp/internal/printer"
	"github.com/indaco/brewstamp/internal/tui"
	"github.com/indaco/brewstamp/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds the root command. Without a subcommand it prints the
// last-updated timestamp.
func New(cfg *config.Config, newClient core.BrewClientFactory) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "brewstamp",
		Version:               version.GetVersion(),
		Usage:                 "Print when Homebrew last refreshed its core tap metadata",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to a brewstamp config file",
				DefaultText: config.DefaultConfigFile,
			},
			&urfavecli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (" + strings.Join(output.ValidFormats, ", ") + ")",
				DefaultText: cfg.Format,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log each step to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			tui.SetTheme(cfg.Theme)
			if cmd.Bool("verbose") {
				logging.EnableVerbose()
			}
			if cmd.IsSet("format") && !output.IsValidFormat(cmd.String("format")) {
				return ctx, fmt.Errorf("invalid format %q: must be one of %v", cmd.String("format"), output.ValidFormats)
			}
			return ctx, nil
		},
		Action: stamp.Action(cfg, newClient),
		Commands: []*urfavecli.Command{
			stamp.Run(cfg, newClient),
			doctor.Run(cfg, newClient),
			initialize.Run(),
		},
	}
}

// ConfigPath returns the value of --config/-c from raw arguments so the
// configuration can be loaded before the command tree is built.
func ConfigPath(args []string) string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}
