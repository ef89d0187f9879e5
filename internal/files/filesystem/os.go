package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File interface for OS filesystem
type osFile struct {
	path    string
	relPath string
	entry   fs.DirEntry
}

func (f *osFile) Path() string         { return f.path }
func (f *osFile) RelativePath() string { return f.relPath }

func (f *osFile) Name() string {
	if f.entry != nil {
		return f.entry.Name()
	}
	return filepath.Base(f.path)
}

func (f *osFile) IsDir() bool {
	return f.entry != nil && f.entry.IsDir()
}

func (f *osFile) IsSymlink() bool {
	return f.entry != nil && f.entry.Type()&fs.ModeSymlink != 0
}

func (f *osFile) IsRegular() bool {
	return f.entry != nil && f.entry.Type().IsRegular()
}

// osDirectory implements Directory interface for OS filesystem
type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) Walk(fn WalkFunc) error {
	root := d.path
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// A trailing separator makes WalkDir resolve a linked root.
		root += string(filepath.Separator)
	}

	return filepath.WalkDir(root, func(walked string, entry fs.DirEntry, walkErr error) error {
		relPath, relErr := filepath.Rel(root, walked)
		if relErr != nil {
			relPath = walked
		}
		path := joinGiven(d.path, relPath)

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
				}
			}()

			file := &osFile{
				path:    path,
				relPath: relPath,
				entry:   entry,
			}

			callbackErr = fn(file, walkErr)
		}()

		return callbackErr
	})
}

// joinGiven appends rel to base without cleaning base, so "./src/" stays
// "./src/" in every reported path.
func joinGiven(base, rel string) string {
	switch {
	case rel == ".":
		return base
	case os.IsPathSeparator(base[len(base)-1]):
		return base + rel
	default:
		return base + string(filepath.Separator) + rel
	}
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open keeps path as given so walked paths read the way the caller wrote them.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	return &osDirectory{path: path}, nil
}

func (p *OSFileSystem) OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}
