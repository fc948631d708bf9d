package output

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

var sample = Result{Label: "Core tap JSON", Timestamp: "12 Jan 03:04 UTC"}

func TestRender(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, `"12 Jan 03:04 UTC"`},
		{"", `"12 Jan 03:04 UTC"`},
		{FormatRaw, "12 Jan 03:04 UTC"},
		{FormatJSON, `{"label":"Core tap JSON","timestamp":"12 Jan 03:04 UTC"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Render(tt.format, sample)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_TOML(t *testing.T) {
	got, err := Render(FormatTOML, sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("expected trailing newline to be trimmed, got %q", got)
	}

	var decoded Result
	if err := toml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid toml: %v\n%s", err, got)
	}
	if decoded != sample {
		t.Errorf("expected %+v, got %+v", sample, decoded)
	}
}

func TestRender_JSONEscapes(t *testing.T) {
	got, err := Render(FormatJSON, Result{Label: `Tap "core"`, Timestamp: "12 Jan 03:04 UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"label":"Tap \"core\""`) {
		t.Errorf("expected escaped label, got %s", got)
	}
}

func TestRender_Unknown(t *testing.T) {
	if _, err := Render("xml", sample); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, name := range ValidFormats {
		if !IsValidFormat(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	if IsValidFormat("yaml") {
		t.Error("expected yaml to be invalid")
	}
}
