package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/indaco/brewstamp/internal/core"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".brewstamp.yaml"

// EnvBinary overrides the binary name from any config file.
const EnvBinary = "BREWSTAMP_BINARY"

// Config is the main configuration structure for brewstamp.
type Config struct {
	Binary   string   `yaml:"binary"`
	Args     []string `yaml:"args,omitempty"`
	Label    string   `yaml:"label"`
	Timezone string   `yaml:"timezone"`
	Format   string   `yaml:"format,omitempty"`
	Theme    string   `yaml:"theme,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Binary:   core.DefaultBinary,
		Args:     core.DefaultArgs(),
		Label:    core.DefaultLabel,
		Timezone: core.DefaultTimezone,
		Format:   "text",
		Theme:    "brewstamp",
	}
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// SaveTo writes cfg as YAML to configFile, truncating any existing file.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

var defaultConfigSaver = NewConfigSaver(&commentedMarshaler{header: FileHeader}, nil, nil)

// Package-level hooks, replaceable in tests. SaveConfigFn writes the
// commented file produced by init.
var (
	LoadConfigFn = Load
	SaveConfigFn = func(cfg *Config, path string) error {
		return defaultConfigSaver.SaveTo(cfg, path)
	}
)

// Load reads configFile (DefaultConfigFile when empty) on top of Default.
// A missing default file is not an error; a missing explicit file is.
func Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(configFile))
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
	case os.IsNotExist(err) && !explicit:
		// fall back to defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	if env := os.Getenv(EnvBinary); env != "" {
		cfg.Binary = env
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Binary == "" {
		c.Binary = def.Binary
	}
	if len(c.Args) == 0 {
		c.Args = def.Args
	}
	if c.Label == "" {
		c.Label = def.Label
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
