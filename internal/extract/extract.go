package extract

import (
	"regexp"

	"github.com/indaco/brewstamp/internal/core"
	"github.com/indaco/brewstamp/internal/logging"
	"go.uber.org/zap"
)

// datePrefix matches "12 Jan 03:04 " and is completed with the timezone token.
const datePrefix = `\d{2}\s+\w+\s\d{2}:\d{2}\s`

// Extractor holds the compiled line and date patterns.
type Extractor struct {
	label       string
	linePattern *regexp.Regexp
	datePattern *regexp.Regexp
}

// New compiles the patterns for label and timezone. The label is matched
// literally; timezone is a regexp fragment such as "UTC" or `\w+`.
func New(label, timezone string) (*Extractor, error) {
	if label == "" {
		label = core.DefaultLabel
	}
	if timezone == "" {
		timezone = core.DefaultTimezone
	}

	lineExpr := LinePattern(label)
	lineRe, err := regexp.Compile(lineExpr)
	if err != nil {
		return nil, core.InvalidPattern(lineExpr, err)
	}

	dateExpr := DatePattern(timezone)
	dateRe, err := regexp.Compile(dateExpr)
	if err != nil {
		return nil, core.InvalidPattern(dateExpr, err)
	}

	return &Extractor{label: label, linePattern: lineRe, datePattern: dateRe}, nil
}

// LinePattern returns the multi-line expression matching the label line.
func LinePattern(label string) string {
	return `(?m)^` + regexp.QuoteMeta(label) + `:[ \t]*(.+)$`
}

// DatePattern returns the expression matching the timestamp shape. The
// timezone fragment is grouped so alternations stay inside the token.
func DatePattern(timezone string) string {
	return datePrefix + "(?:" + timezone + ")"
}

// Label returns the label this extractor searches for.
func (e *Extractor) Label() string {
	return e.label
}

// Line returns the first full line starting with the label.
func (e *Extractor) Line(text string) (string, error) {
	loc := e.linePattern.FindStringIndex(text)
	if loc == nil {
		return "", core.PatternNotFound(e.linePattern.String())
	}
	line := text[loc[0]:loc[1]]
	logging.L().Debug("matched label line", zap.String("line", line))
	return line, nil
}

// Timestamp returns the first date-shaped substring of line.
func (e *Extractor) Timestamp(line string) (string, error) {
	loc := e.datePattern.FindStringIndex(line)
	if loc == nil {
		return "", core.PatternNotFound(e.datePattern.String())
	}
	return line[loc[0]:loc[1]], nil
}

// Extract runs Line then Timestamp and returns both.
func (e *Extractor) Extract(text string) (line, timestamp string, err error) {
	line, err = e.Line(text)
	if err != nil {
		return "", "", err
	}
	timestamp, err = e.Timestamp(line)
	if err != nil {
		return line, "", err
	}
	return line, timestamp, nil
}
