package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sokinpui/cgraparse/internal/ui"
)

// Names used in place of a file path when reporting tag errors.
const (
	StdinName     = "<stdin>"
	ClipboardName = "<clipboard>"
)

// SourceProvider determines and retrieves the content for filter mode.
type SourceProvider struct {
	stdin         *os.File
	readClipboard func() (string, error)
}

// New creates a new SourceProvider.
func New() *SourceProvider {
	return &SourceProvider{stdin: os.Stdin, readClipboard: clipboard.ReadAll}
}

// NewWithStdin creates a SourceProvider reading from the given file instead
// of the process stdin.
func NewWithStdin(stdin *os.File) *SourceProvider {
	return &SourceProvider{stdin: stdin, readClipboard: clipboard.ReadAll}
}

// GetContent retrieves content from stdin (if piped) or the clipboard, along
// with a name describing where it came from.
func (sp *SourceProvider) GetContent() (string, string, error) {
	if sp.isPiped() {
		ui.Header("--- Reading from stdin ---")
		content, err := io.ReadAll(sp.stdin)
		if err != nil {
			return "", StdinName, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), StdinName, nil
	}

	ui.Header("--- Reading from clipboard ---")
	content, err := sp.readClipboard()
	if err != nil {
		return "", ClipboardName, fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		ui.Warning("Clipboard is empty. Nothing to process.")
		return "", ClipboardName, nil
	}
	return content, ClipboardName, nil
}

func (sp *SourceProvider) isPiped() bool {
	stat, err := sp.stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
