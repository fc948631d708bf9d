package output

import (
	"fmt"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Format selects how a Result is rendered.
type Format string

const (
	// FormatText prints the timestamp Go-quoted.
	FormatText Format = "text"
	// FormatRaw prints the bare timestamp.
	FormatRaw Format = "raw"
	// FormatJSON prints a JSON object.
	FormatJSON Format = "json"
	// FormatTOML prints a TOML document.
	FormatTOML Format = "toml"
)

// ValidFormats lists the accepted format names.
var ValidFormats = []string{
	string(FormatText),
	string(FormatRaw),
	string(FormatJSON),
	string(FormatTOML),
}

// IsValidFormat reports whether name is a known format.
func IsValidFormat(name string) bool {
	return slices.Contains(ValidFormats, name)
}

// Result is what a successful run produced.
type Result struct {
	Label     string `toml:"label"`
	Timestamp string `toml:"timestamp"`
}

// Render returns r formatted as f, without a trailing newline.
func Render(f Format, r Result) (string, error) {
	switch f {
	case FormatText, "":
		return fmt.Sprintf("%q", r.Timestamp), nil
	case FormatRaw:
		return r.Timestamp, nil
	case FormatJSON:
		return renderJSON(r)
	case FormatTOML:
		return renderTOML(r)
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func renderJSON(r Result) (string, error) {
	out, err := sjson.Set(`{}`, "label", r.Label)
	if err != nil {
		return "", fmt.Errorf("failed to encode label: %w", err)
	}
	out, err = sjson.Set(out, "timestamp", r.Timestamp)
	if err != nil {
		return "", fmt.Errorf("failed to encode timestamp: %w", err)
	}
	return out, nil
}

func renderTOML(r Result) (string, error) {
	data, err := toml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode toml: %w", err)
	}
	return string(trimNewline(data)), nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
