package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/indaco/brewstamp/internal/core"
)

func mustNew(t *testing.T, label, tz string) *Extractor {
	t.Helper()
	e, err := New(label, tz)
	if err != nil {
		t.Fatalf("New(%q, %q): %v", label, tz, err)
	}
	return e
}

func TestExtract_Success(t *testing.T) {
	tests := []struct {
		name     string
		tz       string
		text     string
		wantLine string
		wantTS   string
	}{
		{
			name:     "path before date",
			text:     "Core tap JSON: /some/path 12 Jan 03:04 UTC",
			wantLine: "Core tap JSON: /some/path 12 Jan 03:04 UTC",
			wantTS:   "12 Jan 03:04 UTC",
		},
		{
			name: "label line among others",
			text: "HOMEBREW_VERSION: 4.4.0\n" +
				"Core tap JSON: 05 Mar 21:17 UTC\n" +
				"HOMEBREW_PREFIX: /opt/homebrew\n",
			wantLine: "Core tap JSON: 05 Mar 21:17 UTC",
			wantTS:   "05 Mar 21:17 UTC",
		},
		{
			name:     "first label line wins",
			text:     "Core tap JSON: 01 Feb 10:00 UTC\nCore tap JSON: 02 Feb 11:00 UTC\n",
			wantLine: "Core tap JSON: 01 Feb 10:00 UTC",
			wantTS:   "01 Feb 10:00 UTC",
		},
		{
			name:     "first date in line wins",
			text:     "Core tap JSON: 01 Feb 10:00 UTC 02 Feb 11:00 UTC",
			wantLine: "Core tap JSON: 01 Feb 10:00 UTC 02 Feb 11:00 UTC",
			wantTS:   "01 Feb 10:00 UTC",
		},
		{
			name:     "alternation stays inside the timezone token",
			tz:       "UTC|GMT",
			text:     "Core tap JSON: 12 Jan 03:04 GMT\n",
			wantLine: "Core tap JSON: 12 Jan 03:04 GMT",
			wantTS:   "12 Jan 03:04 GMT",
		},
		{
			name:     "alternation with empty branch prefers UTC",
			tz:       "UTC|",
			text:     "Core tap JSON: 12 Jan 03:04 UTC\n",
			wantLine: "Core tap JSON: 12 Jan 03:04 UTC",
			wantTS:   "12 Jan 03:04 UTC",
		},
		{
			name:     "permissive timezone token",
			tz:       `\w+`,
			text:     "Core tap JSON: 12 Jan 03:04 CET\n",
			wantLine: "Core tap JSON: 12 Jan 03:04 CET",
			wantTS:   "12 Jan 03:04 CET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustNew(t, "", tt.tz)

			line, ts, err := e.Extract(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if line != tt.wantLine {
				t.Errorf("line: expected %q, got %q", tt.wantLine, line)
			}
			if ts != tt.wantTS {
				t.Errorf("timestamp: expected %q, got %q", tt.wantTS, ts)
			}
		})
	}
}

func TestLine_NotFound(t *testing.T) {
	e := mustNew(t, "", "")

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no label", "HOMEBREW_VERSION: 4.4.0\nHOMEBREW_PREFIX: /opt/homebrew\n"},
		{"label not at line start", "x Core tap JSON: 12 Jan 03:04 UTC\n"},
		{"label without value", "Core tap JSON:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Line(tt.text)
			if !errors.Is(err, core.ErrPatternNotFound) {
				t.Fatalf("expected ErrPatternNotFound, got %v", err)
			}
			want := "pattern not found " + LinePattern(core.DefaultLabel)
			if err.Error() != want {
				t.Errorf("expected %q, got %q", want, err.Error())
			}
		})
	}
}

func TestTimestamp_NotFound(t *testing.T) {
	e := mustNew(t, "", "")

	_, _, err := e.Extract("Core tap JSON: /some/path never\n")
	if !errors.Is(err, core.ErrPatternNotFound) {
		t.Fatalf("expected ErrPatternNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), DatePattern("UTC")) {
		t.Errorf("expected error to reference the date pattern, got %q", err.Error())
	}
}

func TestTimestamp_LiteralTimezone(t *testing.T) {
	e := mustNew(t, "", "UTC")

	if _, err := e.Timestamp("Core tap JSON: 12 Jan 03:04 CET"); !errors.Is(err, core.ErrPatternNotFound) {
		t.Errorf("expected CET to be rejected by the UTC token, got %v", err)
	}
}

func TestTimestamp_AlternationNeedsDateShape(t *testing.T) {
	e := mustNew(t, "", "UTC|GMT")

	_, err := e.Timestamp("Core tap JSON: GMT mirror, no date")
	if !errors.Is(err, core.ErrPatternNotFound) {
		t.Fatalf("expected a bare timezone token not to match, got %v", err)
	}
}

func TestDatePattern_GroupsTimezone(t *testing.T) {
	if got, want := DatePattern("UTC|GMT"), `\d{2}\s+\w+\s\d{2}:\d{2}\s(?:UTC|GMT)`; got != want {
		t.Errorf("DatePattern = %q, want %q", got, want)
	}
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New("", "(UTC")
	if !errors.Is(err, core.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
	if !strings.Contains(err.Error(), "(UTC") {
		t.Errorf("expected error to name the pattern, got %q", err.Error())
	}
}

func TestNew_LabelIsLiteral(t *testing.T) {
	e := mustNew(t, "Tap (core)", "")

	if e.Label() != "Tap (core)" {
		t.Errorf("unexpected label %q", e.Label())
	}
	line, err := e.Line("Tap (core): 12 Jan 03:04 UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "Tap (core): 12 Jan 03:04 UTC" {
		t.Errorf("unexpected line %q", line)
	}
}
