package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/sokinpui/cgraparse/model"
)

var (
	HeaderColor   = color.New(color.FgBlue, color.Bold)
	InfoColor     = color.New(color.FgCyan)
	SuccessColor  = color.New(color.FgGreen)
	WarningColor  = color.New(color.FgYellow)
	ErrorColor    = color.New(color.FgRed)
	PathColor     = color.New(color.FgYellow)
	ModifiedColor = color.New(color.FgMagenta)
)

// Stdout receives the machine readable report lines; Stderr everything else.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(Stderr, "  "+format+"\n", a...)
}

// --- Report lines ---

// PrintModified prints the line for a target that was rewritten or deleted.
func PrintModified(path string) {
	fmt.Fprintf(Stdout, "%s %s\n", ModifiedColor.Sprint("(modified)"), path)
}

// PrintTally prints the two summary lines for a directory input.
func PrintTally(t model.Tally) {
	fmt.Fprintf(Stdout, "Copied %d total files\n", t.Files)
	fmt.Fprintf(Stdout, "Modified %d out of %d files\n", t.Modified, t.Files)
}

// PrintResult reports warnings and the outcome of a run on Stderr, keeping
// Stdout for the report lines and filter output.
func PrintResult(summary model.Summary) {
	if len(summary.Warnings) > 0 {
		Warning("%d warning(s):", len(summary.Warnings))
		for _, w := range summary.Warnings {
			Path("%s", w)
		}
	}
	if summary.Message != "" {
		Info("%s", summary.Message)
		return
	}
	Success("Done: %d modified, %d deleted, %d copied unchanged.",
		len(summary.Modified), len(summary.Deleted), len(summary.Copied))
}
