package stamp

import (
	"context"
	"fmt"

	"github.com/indaco/brewstamp/internal/config"
	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/extract"
	"github.com/indaco/brewstamp/internal/output"
	"github.com/indaco/brewstamp/internal/tui"
	"github.com/urfave/cli/v3"
)

// spin wraps the blocking config call; replaceable in tests.
var spin = tui.Spin

// Run returns the "last-updated" command. The root command uses Action
// directly so that a bare invocation prints the timestamp.
func Run(cfg *config.Config, newClient core.BrewClientFactory) *cli.Command {
	return &cli.Command{
		Name:      "last-updated",
		Aliases:   []string{"stamp"},
		Usage:     "Print when the core tap JSON was last refreshed",
		UsageText: "brewstamp [last-updated] [--format text|raw|json|toml]",
		Action:    Action(cfg, newClient),
	}
}

// Action builds the action that checks the binary, reads its config and
// prints the extracted timestamp.
func Action(cfg *config.Config, newClient core.BrewClientFactory) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		format, err := ResolveFormat(cmd, cfg)
		if err != nil {
			return err
		}

		extractor, err := extract.New(cfg.Label, cfg.Timezone)
		if err != nil {
			return err
		}

		result, err := LastUpdated(ctx, newClient(cfg.Binary, cfg.Args), extractor)
		if err != nil {
			return err
		}

		rendered, err := output.Render(format, result)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	}
}

// LastUpdated looks up the binary, captures its config output and extracts the
// timestamp. The config subcommand is not run when the lookup fails.
func LastUpdated(ctx context.Context, client core.BrewClient, extractor *extract.Extractor) (output.Result, error) {
	if _, err := client.CheckAvailable(ctx); err != nil {
		return output.Result{}, err
	}

	var text string
	err := spin(ctx, fmt.Sprintf("Running %s...", client.CommandLine()), func() error {
		var runErr error
		text, runErr = client.Config(ctx)
		return runErr
	})
	if err != nil {
		return output.Result{}, err
	}

	_, timestamp, err := extractor.Extract(text)
	if err != nil {
		return output.Result{}, err
	}

	return output.Result{Label: extractor.Label(), Timestamp: timestamp}, nil
}

// ResolveFormat returns the --format flag when set, the configured format
// otherwise.
func ResolveFormat(cmd *cli.Command, cfg *config.Config) (output.Format, error) {
	name := cfg.Format
	if cmd.IsSet("format") {
		name = cmd.String("format")
	}
	if name == "" {
		return output.FormatText, nil
	}
	if !output.IsValidFormat(name) {
		return "", fmt.Errorf("invalid format %q: must be one of %v", name, output.ValidFormats)
	}
	return output.Format(name), nil
}
