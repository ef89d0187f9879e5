package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// SkipDir is returned by a WalkFunc to skip the directory it was called for.
var SkipDir = fs.SkipDir

// File represents a file or directory met during a walk.
type File interface {
	// Path returns the walk root joined with the relative path
	Path() string

	// RelativePath returns the path relative to the walk root ("." for the root)
	RelativePath() string

	// Name returns the base name
	Name() string

	// IsDir reports whether the entry is a directory
	IsDir() bool

	// IsSymlink reports whether the entry itself is a symbolic link
	IsSymlink() bool

	// IsRegular reports whether the entry is a plain file: not a directory,
	// symlink, FIFO, socket or device
	IsRegular() bool
}

// WalkFunc is called for every entry of a walk in depth-first pre-order.
// When err is non-nil the entry could not be read; file still carries its path.
// Returning SkipDir for a directory skips its contents; any other non-nil
// error stops the walk and is returned by Walk.
type WalkFunc func(file File, err error) error

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the path the directory was opened with
	Path() string

	// Walk traverses the directory tree, parents before children.
	// Symbolic links to directories are reported but not followed.
	Walk(fn WalkFunc) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenFile opens a file for streaming reads
	OpenFile(path string) (io.ReadCloser, error)

	// Stat returns file information for the given path, following symbolic links
	Stat(path string) (FileInfo, error)
}
