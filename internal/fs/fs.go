package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrPath indicates a missing input, or an output location that is not a directory.
var ErrPath = errors.New("invalid path")

// OutputRoot is the existing directory every mirrored target is placed under.
type OutputRoot struct {
	dir string
}

// NewOutputRoot validates dir as an output root. An empty dir means the
// current working directory.
func NewOutputRoot(dir string) (*OutputRoot, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = wd
	}
	if err := RequireDir(dir); err != nil {
		return nil, err
	}
	return &OutputRoot{dir: dir}, nil
}

// Dir returns the output root directory.
func (r *OutputRoot) Dir() string {
	return r.dir
}

// Target returns the location for an input inside the root, keyed by the
// input's base name.
func (r *OutputRoot) Target(input string) string {
	return filepath.Join(r.dir, filepath.Base(filepath.Clean(input)))
}

// RequireExists returns the file info for path, or ErrPath if it does not exist.
func RequireExists(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrPath, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return info, nil
}

// RequireDir returns ErrPath unless path exists and is a directory.
func RequireDir(path string) error {
	info, err := RequireExists(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPath, path)
	}
	return nil
}

// EnsureDir creates dir and any missing parents. A directory that already
// exists, including one created concurrently by another process, is not an
// error.
func EnsureDir(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrExist) {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return nil
		}
	}
	return fmt.Errorf("could not create directory '%s': %w", dir, err)
}

// CopyFile copies src to dst byte for byte, keeping the source permissions.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}

// WriteFile writes data to dst, using the permissions of src when it can be
// read.
func WriteFile(src, dst string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(dst, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
