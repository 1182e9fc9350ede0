package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/cgraparse/cgraparse"
	"github.com/sokinpui/cgraparse/cli"
	"github.com/sokinpui/cgraparse/internal/tui"
	"github.com/sokinpui/cgraparse/internal/ui"
	"github.com/sokinpui/cgraparse/model"
)

func main() {
	cfg, err := cli.ParseFlags()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		// pflag prints usage for flag errors; the error is repeated last so it stays visible.
		ui.Error("%v", err)
		os.Exit(1)
	}

	app, err := cgraparse.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if cfg.Interactive {
		if err := tui.Run(app); err != nil {
			if !errors.Is(err, tui.ErrCancelled) {
				ui.Error("Error: %v", err)
			}
			os.Exit(1)
		}
		return
	}

	if !cfg.Quiet && !cfg.Filter {
		app.SetProgressCallback(func(ev model.Event) {
			if ev.Modified() {
				ui.PrintModified(ev.Target)
			}
		})
	}
	app.SetTallyCallback(ui.PrintTally)

	summary, err := app.Execute()
	if err != nil {
		var detailed *cgraparse.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", detailed.Stack)
		}
		ui.Error("Error: %v", err)
		os.Exit(1)
	}
	ui.PrintResult(summary)
}
