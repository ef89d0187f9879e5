package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/varfind/pkg/varfind"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `root: ./src
pattern: "*.go"
exclude_extensions: [.dat, .bin]
exclude_paths:
  - vendor
  - .git
input: variables.csv
columns:
  - name: Name
    output: by_name.csv
  - name: ID
    output: by_id.yaml
concurrency: 4
matcher: naive
error_policy: halt
delimiter: ";"
max_line_bytes: 67108864
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "./src", cfg.Root)
	assert.Equal(t, "*.go", cfg.Pattern)
	assert.Equal(t, []string{".dat", ".bin"}, cfg.ExcludeExtensions)
	assert.Equal(t, []string{"vendor", ".git"}, cfg.ExcludePaths)
	assert.Equal(t, "variables.csv", cfg.Input)
	assert.Equal(t, []ColumnConfig{{Name: "Name", Output: "by_name.csv"}, {Name: "ID", Output: "by_id.yaml"}}, cfg.Columns)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, "naive", cfg.Matcher)
	assert.Equal(t, "halt", cfg.ErrorPolicy)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, 64<<20, cfg.MaxLineBytes)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input: vars.csv\n"))
	require.NoError(t, err)

	assert.Equal(t, "vars.csv", cfg.Input)
	assert.Empty(t, cfg.Root)
	assert.Empty(t, cfg.Columns)
	assert.Zero(t, cfg.Concurrency)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"syntax", "{{invalid", ""},
		{"unknown key", "roots: ./src\n", "roots"},
		{"column without output", "columns:\n  - name: Name\n", "output is required"},
		{"negative concurrency", "concurrency: -2\n", "negative"},
		{"negative max line", "max_line_bytes: -1\n", "max_line_bytes"},
		{"bad delimiter", "delimiter: ab\n", "invalid delimiter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, varfind.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Nil(t, cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvRoot:        "/srv/code",
		EnvInput:       "",
		EnvConcurrency: "8",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &ProjectConfig{Root: "./src", Input: "vars.csv", Concurrency: 2}
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "/srv/code", cfg.Root)
	assert.Equal(t, "vars.csv", cfg.Input, "empty values do not override")
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestApplyEnv_InvalidConcurrency(t *testing.T) {
	cfg := &ProjectConfig{}
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvConcurrency {
			return "many", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, varfind.ErrInvalidConfig)
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{"§", '§', false},
		{"ab", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, varfind.ErrInvalidConfig, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
