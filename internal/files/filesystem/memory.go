package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
	// openErr, when set, is returned on open; for a directory it is
	// reported by Walk instead of descending.
	openErr error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Name() string         { return f.info.name }
func (f *memoryFile) IsDir() bool          { return f.info.isDir }
func (f *memoryFile) IsSymlink() bool      { return false }
func (f *memoryFile) IsRegular() bool      { return f.info.mode.IsRegular() }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn WalkFunc) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Segment-wise order yields depth-first pre-order with siblings sorted.
	sort.Slice(entries, func(i, j int) bool {
		return lessBySegments(entries[i].absPath, entries[j].absPath)
	})

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.absPath, skipped) {
			continue
		}

		var callbackErr error
		call := func(err error) {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(entry, err)
		}

		call(nil)
		if callbackErr == SkipDir && entry.IsDir() {
			skipped = append(skipped, entry.absPath)
			continue
		}
		if callbackErr == SkipDir {
			// SkipDir on a file skips the rest of its directory.
			skipped = append(skipped, path.Dir(entry.absPath))
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}

		if entry.IsDir() && entry.openErr != nil {
			skipped = append(skipped, entry.absPath)
			call(entry.openErr)
			if callbackErr != nil && callbackErr != SkipDir {
				return callbackErr
			}
		}
	}

	return nil
}

func underAny(p string, dirs []string) bool {
	for _, d := range dirs {
		if p == d || d == "/" || strings.HasPrefix(p, d+"/") {
			return true
		}
	}
	return false
}

func lessBySegments(a, b string) bool {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	mfs.files[root] = newMemoryDir(root, ".")
	return mfs
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	if mfs.root == "/" {
		return strings.TrimPrefix(absPath, "/")
	}
	return strings.TrimPrefix(absPath, mfs.root+"/")
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileBytes(filePath, []byte(content))
}

// AddFileBytes adds a file with raw content, which need not be valid UTF-8
func (mfs *MemoryFileSystem) AddFileBytes(filePath string, content []byte) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddSpecial adds a non-regular entry such as a FIFO or device.
// Opening it returns an error; a real FIFO would block instead.
func (mfs *MemoryFileSystem) AddSpecial(filePath string, mode fs.FileMode) {
	absPath := mfs.resolve(filePath)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		openErr: fmt.Errorf("open %s: special file would block", filePath),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    mode | 0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newMemoryDir(absPath, mfs.relative(absPath))
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailOpen makes opening p return err. For a directory, Walk reports err
// after visiting it and does not descend.
func (mfs *MemoryFileSystem) FailOpen(p string, err error) {
	absPath := mfs.resolve(p)
	if f, ok := mfs.files[absPath]; ok {
		f.openErr = err
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root || !strings.HasPrefix(dir, mfs.root) {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	if absPath == mfs.root && file.openErr != nil {
		return nil, fmt.Errorf("failed to access path: %w", file.openErr)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	absPath := mfs.resolve(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.openErr != nil {
		return nil, file.openErr
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return io.NopCloser(bytes.NewReader(file.content)), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}

	return file.info, nil
}
