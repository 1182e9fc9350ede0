package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/cgraparse/internal/tags"
)

// Config holds all the command-line flag values.
type Config struct {
	Inputs      []string
	Output      string
	Extensions  []string
	Prefix      string
	Interactive bool
	Filter      bool
	Quiet       bool
}

// ParseFlags defines and parses the process command-line flags using pflag.
func ParseFlags() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse parses args (without the program name) into a Config.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	flags := pflag.NewFlagSet("cgraparse", pflag.ContinueOnError)

	// Define flags
	flags.StringVarP(&cfg.Output, "output", "o", "", "Output directory for all processed files (default: current directory).")
	flags.StringSliceVarP(&cfg.Extensions, "extension", "e", []string{}, "Only interpret files with these extensions; others are copied as-is (e.g., 'cpp', 'hpp').")
	flags.StringVarP(&cfg.Prefix, "prefix", "p", tags.DefaultPrefix, "Prefix shared by all tags.")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Do not print a line for every modified file.")

	// Alternative run modes
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Show a spinner and a styled summary while processing.")
	flags.BoolVarP(&cfg.Filter, "filter", "f", false, "Process stdin (or the clipboard) and print the result to stdout.")

	flags.Usage = func() {
		fmt.Println("Usage: cgraparse [flags] <input>...")
		fmt.Println("\nMirror files and directories into the output directory, applying CGRA tags.")
		fmt.Println("\nExample: cgraparse -o ../student work/src")
		fmt.Println("\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.Inputs = flags.Args()

	// Validate flag combinations
	if cfg.Prefix == "" {
		return nil, fmt.Errorf("error: --prefix must not be empty")
	}
	if _, err := tags.NewVocabulary(cfg.Prefix); err != nil {
		return nil, fmt.Errorf("error: --prefix: %w", err)
	}
	if cfg.Filter && cfg.Interactive {
		return nil, fmt.Errorf("error: --filter and --interactive are mutually exclusive")
	}
	if !cfg.Filter && len(cfg.Inputs) == 0 {
		flags.Usage()
		return nil, fmt.Errorf("error: at least one input path is required")
	}

	// Normalize extensions
	for i, ext := range cfg.Extensions {
		if len(ext) > 0 && ext[0] != '.' {
			cfg.Extensions[i] = "." + ext
		}
	}

	return cfg, nil
}
