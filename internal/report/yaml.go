package report

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// yamlRow is one occurrence in the YAML table.
type yamlRow struct {
	Variable string `yaml:"variable"`
	File     string `yaml:"file"`
	Line     int    `yaml:"line"`
}

func encodeYAML(w io.Writer, triples []varfind.Triple) error {
	rows := make([]yamlRow, len(triples))
	for i, t := range triples {
		rows[i] = yamlRow{Variable: t.Variable, File: t.FilePath, Line: t.Line}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// ReadYAML parses a YAML table written by Writer back into triples.
// Failures are returned as SourceRead errors.
func ReadYAML(path string) ([]varfind.Triple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, varfind.NewError(varfind.KindSourceRead, path, err)
	}

	var rows []yamlRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, varfind.NewError(varfind.KindSourceRead, path, fmt.Errorf("failed to parse YAML: %w", err))
	}

	triples := make([]varfind.Triple, len(rows))
	for i, r := range rows {
		triples[i] = varfind.Triple{Variable: r.Variable, FilePath: r.File, Line: r.Line}
	}
	return triples, nil
}

// Read parses a table in the format implied by its extension.
func Read(path string) ([]varfind.Triple, error) {
	if FormatForPath(path) == FormatYAML {
		return ReadYAML(path)
	}
	return ReadCSV(path)
}
