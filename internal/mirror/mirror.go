package mirror

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/sokinpui/cgraparse/internal/fs"
	"github.com/sokinpui/cgraparse/internal/tags"
	"github.com/sokinpui/cgraparse/model"
)

// Reporter is called once for every visited file, after it was handled.
type Reporter func(model.Event)

// Mirror reproduces input files and trees under an output location, passing
// every file through the tag interpreter.
type Mirror struct {
	interp     *tags.Interpreter
	extensions []string
	report     Reporter
}

// New creates a Mirror. When extensions is non-empty, only files with one of
// those extensions are interpreted; all others are copied verbatim.
func New(interp *tags.Interpreter, extensions []string) *Mirror {
	return &Mirror{interp: interp, extensions: extensions}
}

// SetReporter sets a function to be called for every visited file.
func (m *Mirror) SetReporter(r Reporter) {
	m.report = r
}

// File interprets input and writes, copies, or skips target accordingly.
func (m *Mirror) File(input, target string) (model.Event, error) {
	ev := model.Event{Source: input, Target: target, Action: model.ActionCopied}

	if !hasAllowedExtension(input, m.extensions) {
		if err := fs.CopyFile(input, target); err != nil {
			return ev, err
		}
		m.emit(ev)
		return ev, nil
	}

	content, err := os.ReadFile(input)
	if err != nil {
		return ev, fmt.Errorf("read %s: %w", input, err)
	}

	res, err := m.interp.Interpret(input, content)
	if err != nil {
		return ev, err
	}
	ev.Warning = res.UnclosedWarning(input)

	switch res.Outcome {
	case tags.Deleted:
		ev.Action = model.ActionDeleted
	case tags.Rewritten:
		ev.Action = model.ActionModified
		if err := fs.WriteFile(input, target, res.Bytes()); err != nil {
			return ev, err
		}
	default:
		if err := fs.CopyFile(input, target); err != nil {
			return ev, err
		}
	}

	m.emit(ev)
	return ev, nil
}

// Tree mirrors every directory and file below root into targetRoot and
// returns the number of files visited and modified. Directories are created
// even when empty. Symbolic links to directories are not followed, and
// neither is targetRoot itself when it lies inside root.
func (m *Mirror) Tree(root, targetRoot string) (model.Tally, error) {
	tally := model.Tally{Input: root, Target: targetRoot}

	if err := fs.EnsureDir(targetRoot); err != nil {
		return tally, err
	}
	absTarget, err := filepath.Abs(targetRoot)
	if err != nil {
		return tally, fmt.Errorf("resolve %s: %w", targetRoot, err)
	}

	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetRoot, rel)

		if d.IsDir() {
			if rel != "." && isSamePath(path, absTarget) {
				return filepath.SkipDir
			}
			return fs.EnsureDir(target)
		}
		if d.Type()&iofs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		ev, err := m.File(path, target)
		if err != nil {
			return err
		}
		tally.Files++
		if ev.Modified() {
			tally.Modified++
		}
		return nil
	})
	return tally, err
}

func (m *Mirror) emit(ev model.Event) {
	if m.report != nil {
		m.report(ev)
	}
}

func isSamePath(path, abs string) bool {
	p, err := filepath.Abs(path)
	return err == nil && p == abs
}

func hasAllowedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, allowedExt := range extensions {
		if ext == allowedExt {
			return true
		}
	}
	return false
}
