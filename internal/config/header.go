package config

import (
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/brewstamp/internal/output"
	"github.com/indaco/brewstamp/internal/tui"
)

// FileHeader is the comment block written above a saved configuration.
var FileHeader = `# brewstamp configuration file
#
# binary:   package-manager executable looked up on PATH (env ` + EnvBinary + ` overrides)
# args:     subcommand printing the configuration
# label:    prefix of the line holding the timestamp
# timezone: regexp fragment for the trailing timezone token, e.g. UTC or 'UTC|GMT'
# format:   ` + strings.Join(output.ValidFormats, " | ") + `
# theme:    ` + strings.Join(tui.ValidThemes, " | ") + `

`

// commentedMarshaler emits YAML preceded by a comment header.
type commentedMarshaler struct {
	header string
}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(m.header), data...), nil
}
