package cgraparse

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sokinpui/cgraparse/cli"
	"github.com/sokinpui/cgraparse/internal/fs"
	"github.com/sokinpui/cgraparse/internal/mirror"
	"github.com/sokinpui/cgraparse/internal/source"
	"github.com/sokinpui/cgraparse/internal/tags"
	"github.com/sokinpui/cgraparse/model"
)

// ProgressUpdate is called for every file once it has been handled.
type ProgressUpdate func(model.Event)

// TallyUpdate is called when a directory input has been fully mirrored.
type TallyUpdate func(model.Tally)

// App orchestrates the entire application logic.
type App struct {
	cfg              *cli.Config
	interp           *tags.Interpreter
	mirror           *mirror.Mirror
	sourceProvider   *source.SourceProvider
	stdout           io.Writer
	progressCallback ProgressUpdate
	tallyCallback    TallyUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	vocab, err := tags.NewVocabulary(cfg.Prefix)
	if err != nil {
		return nil, err
	}
	interp := tags.New(vocab)

	return &App{
		cfg:            cfg,
		interp:         interp,
		mirror:         mirror.New(interp, cfg.Extensions),
		sourceProvider: source.New(),
		stdout:         os.Stdout,
	}, nil
}

// SetProgressCallback sets a function to be called for every handled file.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// SetTallyCallback sets a function to be called after each directory input.
func (a *App) SetTallyCallback(cb TallyUpdate) {
	a.tallyCallback = cb
}

// Execute executes the main application logic based on parsed flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	if a.cfg.Filter {
		return a.filterContent()
	}
	return a.processInputs()
}

// processInputs mirrors every input under the output root, in argument
// order. The first error aborts the run.
func (a *App) processInputs() (model.Summary, error) {
	var summary model.Summary

	root, err := fs.NewOutputRoot(a.cfg.Output)
	if err != nil {
		return summary, err
	}

	a.mirror.SetReporter(func(ev model.Event) {
		summary.Add(ev)
		if a.progressCallback != nil {
			a.progressCallback(ev)
		}
	})
	defer a.mirror.SetReporter(nil)

	for _, input := range a.cfg.Inputs {
		info, err := fs.RequireExists(input)
		if err != nil {
			return summary, err
		}

		target := root.Target(input)
		if !info.IsDir() {
			if _, err := a.mirror.File(input, target); err != nil {
				return summary, err
			}
			continue
		}

		tally, err := a.mirror.Tree(input, target)
		if err != nil {
			return summary, err
		}
		summary.Tallies = append(summary.Tallies, tally)
		if a.tallyCallback != nil {
			a.tallyCallback(tally)
		}
	}

	if len(summary.Modified) == 0 && len(summary.Deleted) == 0 {
		summary.Message = "No tags found. Files were copied unchanged."
	}
	return summary, nil
}

// filterContent interprets content from stdin or the clipboard and prints
// the result.
func (a *App) filterContent() (model.Summary, error) {
	content, name, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	res, err := a.interp.Interpret(name, []byte(content))
	if err != nil {
		return model.Summary{}, err
	}

	ev := model.Event{
		Source:  name,
		Target:  name,
		Action:  model.ActionCopied,
		Warning: res.UnclosedWarning(name),
	}
	switch res.Outcome {
	case tags.Deleted:
		ev.Action = model.ActionDeleted
	case tags.Rewritten:
		ev.Action = model.ActionModified
		_, err = a.stdout.Write(res.Bytes())
	default:
		_, err = io.WriteString(a.stdout, content)
	}
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to write output: %w", err)
	}

	var summary model.Summary
	summary.Add(ev)
	return summary, nil
}
