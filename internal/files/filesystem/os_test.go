package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open_KeepsGivenPath(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	given := dir + string(filepath.Separator)
	d, err := fs.Open(given)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", given, err)
	}

	if d.Path() != given {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), given)
	}
}

func TestOSFileSystem_WalkReportsRootAsGiven(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "sub", "a.txt"), []byte("a"), 0644))
	chdir(t, dir)

	sep := string(filepath.Separator)
	tests := []struct {
		root string
		want []string
	}{
		{"src", []string{"src", "src" + sep + "sub", "src" + sep + "sub" + sep + "a.txt"}},
		{"." + sep + "src" + sep, []string{"." + sep + "src" + sep, "." + sep + "src" + sep + "sub", "." + sep + "src" + sep + "sub" + sep + "a.txt"}},
		{".", []string{".", "." + sep + "src", "." + sep + "src" + sep + "sub", "." + sep + "src" + sep + "sub" + sep + "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			d, err := NewOSFileSystem().Open(tt.root)
			require.NoError(t, err)

			var paths []string
			err = d.Walk(func(f File, err error) error {
				require.NoError(t, err)
				paths = append(paths, f.Path())
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestOSFileSystem_IsRegular(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	regular := map[string]bool{}
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		regular[f.RelativePath()] = f.IsRegular()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{".": false, "a.txt": true, "sub": false}, regular)
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("content"), 0644))

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "skip"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "skip", "c.txt"), []byte("c"), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var files []string
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if f.IsDir() && f.Name() == "skip" {
			return SkipDir
		}
		if !f.IsDir() {
			files = append(files, f.RelativePath())
			assert.Equal(t, filepath.Join(dir, f.RelativePath()), f.Path())
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", filepath.Join("sub", "b.txt")}, files)
}

func TestOSFileSystem_WalkReportsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "x.txt"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var sawLink bool
	var rels []string
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		rels = append(rels, f.RelativePath())
		if f.Name() == "link" {
			sawLink = true
			assert.True(t, f.IsSymlink())
			assert.False(t, f.IsDir())
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, sawLink)
	assert.NotContains(t, rels, filepath.Join("link", "x.txt"), "symlinked directories are not followed")
}

func TestOSFileSystem_OpenFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("userId=1"), 0644))

	rc, err := NewOSFileSystem().OpenFile(filePath)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "userId=1", string(data))
}

func TestOSFileSystem_Stat_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))

	info, err := NewOSFileSystem().Stat(filepath.Join(dir, "link"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOSFileSystem_WalkFollowsLinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "x.txt"), []byte("x"), 0644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	d, err := NewOSFileSystem().Open(link)
	require.NoError(t, err)

	var paths []string
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		paths = append(paths, f.Path())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{link, filepath.Join(link, "x.txt")}, paths)
}
