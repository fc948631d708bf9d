package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/extract"
	"github.com/indaco/brewstamp/internal/output"
	"github.com/indaco/brewstamp/internal/tui"
)

// Validate checks that every field holds a usable value.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Binary) == "" {
		errs = append(errs, errors.New("binary must not be empty"))
	}
	if strings.TrimSpace(c.Label) == "" {
		errs = append(errs, errors.New("label must not be empty"))
	}
	datePattern := extract.DatePattern(c.Timezone)
	if _, err := regexp.Compile(datePattern); err != nil {
		errs = append(errs, fmt.Errorf("timezone %q: %w", c.Timezone, core.InvalidPattern(datePattern, err)))
	}
	if !output.IsValidFormat(c.Format) {
		errs = append(errs, fmt.Errorf("format %q is not one of %s", c.Format, strings.Join(output.ValidFormats, ", ")))
	}
	if !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("theme %q is not one of %s", c.Theme, strings.Join(tui.ValidThemes, ", ")))
	}
	if slices.Contains(c.Args, "") {
		errs = append(errs, errors.New("args must not contain empty values"))
	}

	return errors.Join(errs...)
}
