package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentFromPipedStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte("a\nCGRA_REMOVE\n"), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	sp := &SourceProvider{
		stdin: f,
		readClipboard: func() (string, error) {
			t.Fatal("clipboard must not be read when stdin is piped")
			return "", nil
		},
	}

	content, name, err := sp.GetContent()
	require.NoError(t, err)
	assert.Equal(t, StdinName, name)
	assert.Equal(t, "a\nCGRA_REMOVE\n", content)
}

func TestGetContentFromClipboard(t *testing.T) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		t.Skipf("no terminal available: %v", err)
	}
	t.Cleanup(func() { _ = tty.Close() })

	sp := &SourceProvider{stdin: tty, readClipboard: func() (string, error) { return "x\n", nil }}
	content, name, err := sp.GetContent()
	require.NoError(t, err)
	assert.Equal(t, ClipboardName, name)
	assert.Equal(t, "x\n", content)

	sp.readClipboard = func() (string, error) { return "  \n", nil }
	content, _, err = sp.GetContent()
	require.NoError(t, err)
	assert.Empty(t, content)

	sp.readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	_, _, err = sp.GetContent()
	assert.ErrorContains(t, err, "failed to read from clipboard")
}
