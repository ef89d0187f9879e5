package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vvka-141/varfind/internal/textio"
	"github.com/vvka-141/varfind/pkg/varfind"
)

var csvHeader = []string{varfind.HeaderVariable, varfind.HeaderFilePath, varfind.HeaderLineNumber}

func encodeCSV(w io.Writer, triples []varfind.Triple) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, 3)
	for _, t := range triples {
		row[0] = t.Variable
		row[1] = t.FilePath
		row[2] = strconv.Itoa(t.Line)
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// ReadCSV parses an output table written by Writer back into triples.
// Failures are returned as SourceRead errors.
func ReadCSV(path string) ([]varfind.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, varfind.NewError(varfind.KindSourceRead, path, err)
	}
	defer f.Close()

	triples, err := decodeCSV(textio.NewReader(f))
	if err != nil {
		return nil, varfind.NewError(varfind.KindSourceRead, path, err)
	}
	return triples, nil
}

func decodeCSV(r io.Reader) ([]varfind.Triple, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = len(csvHeader)

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected header %q, want %q", header, csvHeader)
		}
	}

	var triples []varfind.Triple
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return triples, nil
		}
		if err != nil {
			return nil, err
		}

		line, err := strconv.Atoi(record[2])
		if err != nil {
			row, _ := csvReader.FieldPos(2)
			return nil, fmt.Errorf("line %d: invalid line number %q", row, record[2])
		}
		triples = append(triples, varfind.Triple{Variable: record[0], FilePath: record[1], Line: line})
	}
}
