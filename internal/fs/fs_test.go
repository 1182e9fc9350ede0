package fs

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutputRootDefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	root, err := NewOutputRoot("")
	require.NoError(t, err)
	assert.Equal(t, wd, root.Dir())
}

func TestNewOutputRootRejectsInvalidPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewOutputRoot(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrPath)

	_, err = NewOutputRoot(file)
	assert.ErrorIs(t, err, ErrPath)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestOutputRootTarget(t *testing.T) {
	root := &OutputRoot{dir: "/out"}
	assert.Equal(t, filepath.Join("/out", "src"), root.Target("work/src"))
	assert.Equal(t, filepath.Join("/out", "src"), root.Target("work/src/"))
	assert.Equal(t, filepath.Join("/out", "main.cpp"), root.Target("main.cpp"))
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = EnsureDir(dir)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.NoError(t, EnsureDir(dir))
	assert.NoError(t, RequireDir(dir))
}

func TestEnsureDirFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.Error(t, EnsureDir(file))
	assert.Error(t, EnsureDir(filepath.Join(file, "sub")))
}

func TestCopyFilePreservesBytes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	content := []byte("line one\r\nline two\x00\nno newline")
	require.NoError(t, os.WriteFile(src, content, 0600))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFile(filepath.Join(dir, "missing"), dst, []byte("hello\n")))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}
