package doctor

import (
	"context"
	"fmt"

	"github.com/indaco/brewstamp/internal/config"
	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/extract"
	"github.com/indaco/brewstamp/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config, newClient core.BrewClientFactory) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"check"},
		Usage:     "Run each step separately and report where it fails",
		UsageText: "brewstamp doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cfg, newClient)
		},
	}
}

// step is one diagnostic check. It returns a detail shown next to the mark.
type step struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// StepError reports which step failed. The cause was already printed on the
// step line and stays reachable through Unwrap.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("doctor: step %q failed", e.Step)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func runDoctorCmd(ctx context.Context, cfg *config.Config, newClient core.BrewClientFactory) error {
	client := newClient(cfg.Binary, cfg.Args)

	var (
		extractor *extract.Extractor
		text      string
		line      string
	)

	steps := []step{
		{"Patterns", func(context.Context) (string, error) {
			var err error
			extractor, err = extract.New(cfg.Label, cfg.Timezone)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("label %q, timezone %q", cfg.Label, cfg.Timezone), nil
		}},
		{"Binary", func(ctx context.Context) (string, error) {
			return client.CheckAvailable(ctx)
		}},
		{"Command", func(ctx context.Context) (string, error) {
			var err error
			text, err = client.Config(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s (%d bytes)", client.CommandLine(), len(text)), nil
		}},
		{"Label line", func(context.Context) (string, error) {
			var err error
			line, err = extractor.Line(text)
			return line, err
		}},
		{"Timestamp", func(context.Context) (string, error) {
			return extractor.Timestamp(line)
		}},
	}

	for _, s := range steps {
		detail, err := s.run(ctx)
		if err != nil {
			fmt.Println(printer.Step(false, s.name, err.Error()))
			return &StepError{Step: s.name, Err: err}
		}
		fmt.Println(printer.Step(true, s.name, detail))
	}

	return nil
}
