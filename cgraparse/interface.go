package cgraparse

import (
	"fmt"

	"github.com/sokinpui/cgraparse/cli"
	"github.com/sokinpui/cgraparse/internal/fs"
	"github.com/sokinpui/cgraparse/internal/tags"
	"github.com/sokinpui/cgraparse/model"
)

// Errors returned by Apply, for use with errors.Is.
var (
	ErrInvalidNesting = tags.ErrInvalidNesting
	ErrUnmatchedEnd   = tags.ErrUnmatchedEnd
	ErrInvalidPrefix  = tags.ErrInvalidPrefix
	ErrPath           = fs.ErrPath
)

// Summary describes the files handled by a run.
type Summary = model.Summary

// Config for using cgraparse as a library.
type Config struct {
	// Only interpret files with these extensions (e.g., "cpp", ".hpp").
	Extensions []string
	// Tag prefix; defaults to "CGRA_".
	Prefix string
}

// Apply mirrors inputs into output, rewriting files according to their
// tags, and returns what was done. Nothing is printed.
func Apply(inputs []string, output string, config Config) (Summary, error) {
	cliCfg := &cli.Config{
		Inputs:     inputs,
		Output:     output,
		Extensions: normalizeExtensions(config.Extensions),
		Prefix:     config.Prefix,
	}

	app, err := New(cliCfg)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to initialize cgraparse app: %w", err)
	}
	return app.Execute()
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if len(ext) > 0 && ext[0] != '.' {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
