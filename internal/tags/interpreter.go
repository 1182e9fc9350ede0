package tags

import (
	"fmt"
	"strings"
)

// Outcome is what the caller should do with the interpreted file.
type Outcome int

const (
	// Unchanged means no tag was seen; copy the original bytes.
	Unchanged Outcome = iota
	// Rewritten means at least one tag was seen; write Result.Lines.
	Rewritten
	// Deleted means the file must not be written at all.
	Deleted
)

func (o Outcome) String() string {
	switch o {
	case Rewritten:
		return "rewritten"
	case Deleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// Result is the outcome of interpreting one file.
type Result struct {
	Outcome Outcome
	// Lines holds the output lines, each with its line terminator, when
	// Outcome is Rewritten.
	Lines []string
	// Unclosed is the block still open at end of input, Idle otherwise.
	Unclosed Mode
	// UnclosedLine is the 1-based line on which Unclosed was opened.
	UnclosedLine int
}

// Modified reports whether any tag was recognized.
func (r Result) Modified() bool {
	return r.Outcome != Unchanged
}

// UnclosedWarning describes the block left open at end of input, or returns
// "" when every block was closed.
func (r Result) UnclosedWarning(name string) string {
	if r.Unclosed == Idle {
		return ""
	}
	return fmt.Sprintf("%s:%d: %s block is never closed", name, r.UnclosedLine, r.Unclosed)
}

// Bytes joins the output lines.
func (r Result) Bytes() []byte {
	return []byte(strings.Join(r.Lines, ""))
}

// Interpreter rewrites file contents according to the tags of a Vocabulary.
// It holds no per-file state and may be reused across files.
type Interpreter struct {
	vocab Vocabulary
}

// New creates an Interpreter for the given vocabulary.
func New(vocab Vocabulary) *Interpreter {
	return &Interpreter{vocab: vocab}
}

// Interpret splits content into lines and interprets them. The name is only
// used in error messages.
func (in *Interpreter) Interpret(name string, content []byte) (Result, error) {
	return in.InterpretLines(name, SplitLines(string(content)))
}

// InterpretLines runs the tag state machine over lines in a single pass.
// Each line is expected to carry its own terminator, as produced by SplitLines.
func (in *Interpreter) InterpretLines(name string, lines []string) (Result, error) {
	var (
		mode     = Idle
		opened   int
		modified bool
		out      = make([]string, 0, len(lines))
	)

	for i, line := range lines {
		lineNo := i + 1
		ctl, block := in.vocab.classify(line)

		switch ctl {
		case deleteFile:
			return Result{Outcome: Deleted}, nil

		case removeLine:
			modified = true

		case beginBlock:
			if mode != Idle && mode != block {
				return Result{}, &TagError{
					File:   name,
					Line:   lineNo,
					Tag:    in.vocab.begin(block),
					Active: in.vocab.begin(mode),
					Err:    ErrInvalidNesting,
				}
			}
			mode = block
			opened = lineNo
			modified = true

		case endBlock:
			if mode != block {
				return Result{}, &TagError{
					File:   name,
					Line:   lineNo,
					Tag:    in.vocab.end(block),
					Active: in.vocab.begin(mode),
					Err:    ErrUnmatchedEnd,
				}
			}
			mode = Idle

		default:
			switch mode {
			case InRemove:
			case InComment:
				out = append(out, Comment(line))
			case InUncomment:
				uncommented := Uncomment(line)
				if !strings.HasSuffix(uncommented, "\n") {
					uncommented += "\n"
				}
				out = append(out, uncommented)
			default:
				out = append(out, line)
			}
		}
	}

	if !modified {
		return Result{Outcome: Unchanged}, nil
	}
	res := Result{Outcome: Rewritten, Lines: out}
	if mode != Idle {
		res.Unclosed = mode
		res.UnclosedLine = opened
	}
	return res, nil
}

// SplitLines splits s after every "\n", keeping the terminators. A final
// line without a terminator is kept as is.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
