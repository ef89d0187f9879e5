package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "varfind.yaml"

// Environment variables that override the config file.
const (
	EnvRoot        = "VARFIND_ROOT"
	EnvInput       = "VARFIND_INPUT"
	EnvConcurrency = "VARFIND_CONCURRENCY"
)

// ColumnConfig pairs an input column with the table its results go to.
type ColumnConfig struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
}

type ProjectConfig struct {
	Root              string         `yaml:"root,omitempty"`
	Pattern           string         `yaml:"pattern,omitempty"`
	ExcludeExtensions []string       `yaml:"exclude_extensions,omitempty"`
	ExcludePaths      []string       `yaml:"exclude_paths,omitempty"`
	Input             string         `yaml:"input,omitempty"`
	Columns           []ColumnConfig `yaml:"columns,omitempty"`
	Concurrency       int            `yaml:"concurrency,omitempty"`
	Matcher           string         `yaml:"matcher,omitempty"`
	ErrorPolicy       string         `yaml:"error_policy,omitempty"`
	Delimiter         string         `yaml:"delimiter,omitempty"`
	MaxLineBytes      int            `yaml:"max_line_bytes,omitempty"`
}

// Load reads varfind.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", path, err, varfind.ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *ProjectConfig) validate() error {
	var errs []error
	for i, col := range c.Columns {
		if col.Name == "" {
			errs = append(errs, fmt.Errorf("columns[%d]: name is required: %w", i, varfind.ErrInvalidConfig))
		}
		if col.Output == "" {
			errs = append(errs, fmt.Errorf("columns[%d]: output is required: %w", i, varfind.ErrInvalidConfig))
		}
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency cannot be negative: %w", varfind.ErrInvalidConfig))
	}
	if c.MaxLineBytes < 0 {
		errs = append(errs, fmt.Errorf("max_line_bytes cannot be negative: %w", varfind.ErrInvalidConfig))
	}
	if _, err := ParseDelimiter(c.Delimiter); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides fields from VARFIND_* variables found by lookup
// (typically os.LookupEnv). Empty values are ignored.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRoot); ok && v != "" {
		c.Root = v
	}
	if v, ok := lookup(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup(EnvConcurrency); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s=%q: want a non-negative integer: %w", EnvConcurrency, v, varfind.ErrInvalidConfig)
		}
		c.Concurrency = n
	}
	return nil
}

// ParseDelimiter converts a configured delimiter into a rune.
// "" means varfind.DefaultDelimiter; "tab" and `\t` mean a tab character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return varfind.DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q: want a single character other than quote or newline: %w", s, varfind.ErrInvalidConfig)
	}
	return r, nil
}
