package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/vvka-141/varfind/internal/files/filesystem"
	"github.com/vvka-141/varfind/internal/textio"
	"github.com/vvka-141/varfind/pkg/varfind"
)

// Loader reads target columns from CSV-like files.
// It is stateless and safe for concurrent use.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
	delimiter  rune
}

var _ varfind.TargetLoader = (*Loader)(nil)

// NewLoader creates a loader over the OS filesystem using varfind.DefaultDelimiter.
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem())
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{
		fsProvider: fsProvider,
		delimiter:  varfind.DefaultDelimiter,
	}
}

// WithDelimiter returns a copy of l that splits fields on d.
func (l *Loader) WithDelimiter(d rune) *Loader {
	clone := *l
	clone.delimiter = d
	return &clone
}

// Load returns the unique non-empty values found under column in the table at path.
// Values are kept exactly as written. On failure the targets read so far are
// returned alongside a SourceRead error.
func (l *Loader) Load(path, column string) (varfind.TargetSet, error) {
	targets := varfind.NewTargetSet()

	rc, err := l.fsProvider.OpenFile(path)
	if err != nil {
		return targets, sourceError(path, err)
	}
	defer rc.Close()

	r := csv.NewReader(textio.NewReader(rc))
	r.Comma = l.delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return targets, sourceError(path, errors.New("missing header row"))
	}
	if err != nil {
		return targets, sourceError(path, err)
	}

	idx := -1
	for i, name := range header {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return targets, sourceError(path, fmt.Errorf("column %q not found in header %q", column, header))
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return targets, sourceError(path, err)
		}
		if idx < len(record) {
			targets.Add(record[idx])
		}
	}

	return targets, nil
}

func sourceError(path string, err error) error {
	return varfind.NewError(varfind.KindSourceRead, path, err)
}
