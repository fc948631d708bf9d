package brew

import (
	"errors"
	"regexp"

	"github.com/indaco/brewstamp/internal/core"
)

// Hint is a user-facing explanation of a failure with follow-up suggestions.
type Hint struct {
	Message     string
	Suggestions []string
}

// stderrHint matches text brew wrote to stderr before failing.
type stderrHint struct {
	pattern *regexp.Regexp
	hint    Hint
}

// stderrHints are checked in order; the first match wins.
var stderrHints = []stderrHint{
	{
		pattern: regexp.MustCompile(`(?i)permission denied`),
		hint: Hint{
			Message: "Homebrew cannot access its own directories",
			Suggestions: []string{
				"Check ownership of the Homebrew prefix: ls -ld $(brew --prefix)",
				"Run brewstamp as the user that installed Homebrew",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)running Homebrew as root|Don't run this as root`),
		hint: Hint{
			Message: "Homebrew refuses to run as root",
			Suggestions: []string{
				"Run brewstamp as a regular user",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)unknown command|invalid usage`),
		hint: Hint{
			Message: "The configured subcommand is not understood by this Homebrew",
			Suggestions: []string{
				"Check the args setting in .brewstamp.yaml (default: [config])",
			},
		},
	},
}

// kindHints apply when no stderr pattern matched.
var kindHints = map[core.ErrorKind]Hint{
	core.KindCommandNotFound: {
		Message: "Homebrew is not installed or not on PATH",
		Suggestions: []string{
			"Install Homebrew from https://brew.sh",
			"Set binary in .brewstamp.yaml or BREWSTAMP_BINARY to the full path of brew",
		},
	},
	core.KindCommandRunFailed: {
		Message: "brew config did not complete",
		Suggestions: []string{
			"Run brew config directly to see the full output",
			"Run brew doctor to diagnose the installation",
		},
	},
	core.KindStringFormat: {
		Message: "brew config printed text that is not valid UTF-8",
		Suggestions: []string{
			"Check LANG and LC_ALL are set to a UTF-8 locale",
		},
	},
	core.KindPatternNotFound: {
		Message: "brew config did not report when the core tap was last updated",
		Suggestions: []string{
			"Run brew update to download the core tap JSON",
			"Run brewstamp doctor to see which step failed",
			"Adjust label or timezone in .brewstamp.yaml if your Homebrew prints a different format",
		},
	},
	core.KindInvalidPattern: {
		Message: "The configured timezone is not a valid regular expression",
		Suggestions: []string{
			"Use a literal token such as UTC or a pattern such as \\w+",
		},
	},
}

// HintFor returns guidance for err, or nil if err is not a brewstamp error.
func HintFor(err error) *Hint {
	var e *core.Error
	if !errors.As(err, &e) {
		return nil
	}

	if e.Kind == core.KindCommandRunFailed && e.Detail != "" {
		for _, h := range stderrHints {
			if h.pattern.MatchString(e.Detail) {
				hint := h.hint
				return &hint
			}
		}
	}

	if hint, ok := kindHints[e.Kind]; ok {
		return &hint
	}
	return nil
}
