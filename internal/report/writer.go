package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// Format is an output table encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// StdoutDestination makes Write print the table instead of creating a file.
const StdoutDestination = "-"

// FormatForPath picks the format from the file extension.
// Anything other than .yaml or .yml is CSV.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Writer writes ResultMaps to files.
type Writer struct {
	stdout io.Writer
}

var _ varfind.ResultWriter = (*Writer)(nil)

// NewWriter creates a writer that sends StdoutDestination to os.Stdout.
func NewWriter() *Writer {
	return NewWriterTo(os.Stdout)
}

// NewWriterTo creates a writer that sends StdoutDestination to w.
func NewWriterTo(w io.Writer) *Writer {
	return &Writer{stdout: w}
}

// Write creates or truncates destination and writes results to it.
// Failures are returned as SinkWrite errors; results are not modified.
func (w *Writer) Write(results *varfind.ResultMap, destination string) error {
	if destination == StdoutDestination {
		if err := Encode(w.stdout, results, FormatCSV); err != nil {
			return varfind.NewError(varfind.KindSinkWrite, destination, err)
		}
		return nil
	}

	f, err := os.Create(destination)
	if err != nil {
		return varfind.NewError(varfind.KindSinkWrite, destination, err)
	}

	err = Encode(f, results, FormatForPath(destination))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return varfind.NewError(varfind.KindSinkWrite, destination, err)
	}
	return nil
}

// Encode writes results to w in the given format.
func Encode(w io.Writer, results *varfind.ResultMap, format Format) error {
	switch format {
	case FormatCSV, "":
		return encodeCSV(w, results.Triples())
	case FormatYAML:
		return encodeYAML(w, results.Triples())
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
